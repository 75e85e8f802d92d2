package schedulers

import "process-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in order of
// arrival, breaking ties by input position.
func ScheduleFirstComeFirstServe(arrivalTime, burstTime []int) core.Result {
	sim := core.NewSimulation(core.NewProcesses(arrivalTime, burstTime, nil))
	for !sim.Done() {
		ready := sim.Ready()
		if len(ready) == 0 {
			sim.IdleUntilNextArrival()
			continue
		}
		next := core.Pick(ready, func(a, b int) bool {
			return byArrival(sim, a, b)
		})
		sim.Run(next, sim.Remaining(next))
	}
	return sim.Result()
}

// byArrival orders by arrival time, then by input position.
func byArrival(sim *core.Simulation, a, b int) bool {
	pa, pb := sim.Process(a), sim.Process(b)
	if pa.ArrivalTime != pb.ArrivalTime {
		return pa.ArrivalTime < pb.ArrivalTime
	}
	return a < b
}
