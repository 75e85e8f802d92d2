package util

import (
	"strconv"
	"strings"

	"process-scheduler/internal/responses"
)

// CalculateAverage returns the unrounded means of the per-process times.
// An empty slice yields zeros.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}
	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int

	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}

// JobName labels the process at a 0-based input position: A, B, ..., Z, 10, 11, ...
func JobName(index int) string {
	return strings.ToUpper(strconv.FormatInt(int64(index+10), 36))
}
