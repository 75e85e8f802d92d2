package schedulers

import (
	"process-scheduler/internal/core"
	"process-scheduler/internal/responses"
	"process-scheduler/internal/util"
)

// GenerateResponse turns a simulation result into the api response.
func GenerateResponse(algorithm Algorithm, result core.Result) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		processDetails = append(processDetails, generateProcessDetails(p))
	}
	gantt := make([]responses.GanttSegment, 0, len(result.Gantt))
	for _, s := range result.Gantt {
		gantt = append(gantt, responses.GanttSegment{
			Job:   util.JobName(s.Job),
			Start: s.Start,
			Stop:  s.Stop,
		})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	var utilization, throughput float64
	if result.Cpu.TotalTime > 0 {
		utilization = float64(result.Cpu.UtilizationTime) / float64(result.Cpu.TotalTime)
		throughput = float64(len(processDetails)) / float64(result.Cpu.TotalTime)
	}
	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		GanttChart:            gantt,
		Details:               processDetails,
	}
}

func generateProcessDetails(p core.ProcessResult) responses.ProcessResponse {
	return responses.ProcessResponse{
		Job:            util.JobName(p.Job),
		ArrivalTime:    p.At,
		BurstTime:      p.Bt,
		FinishTime:     p.Ft,
		TurnAroundTime: p.Tat,
		WaitingTime:    p.Wat,
		ResponseTime:   p.Rt,
	}
}
