package schedulers

import "process-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: whenever the cpu is free it picks
// the arrived process with the smallest burst and runs it to completion.
func ScheduleShortestJobFirst(arrivalTime, burstTime []int) core.Result {
	sim := core.NewSimulation(core.NewProcesses(arrivalTime, burstTime, nil))
	for !sim.Done() {
		ready := sim.Ready()
		if len(ready) == 0 {
			sim.IdleUntilNextArrival()
			continue
		}
		next := core.Pick(ready, func(a, b int) bool {
			return shorterJob(sim, a, b)
		})
		sim.Run(next, sim.Remaining(next))
	}
	return sim.Result()
}

func shorterJob(sim *core.Simulation, a, b int) bool {
	if ra, rb := sim.Remaining(a), sim.Remaining(b); ra != rb {
		return ra < rb
	}
	return byArrival(sim, a, b)
}
