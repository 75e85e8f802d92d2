package schedulers

import "process-scheduler/internal/core"

// ScheduleNonPreemptivePriority picks the arrived process with the lowest
// priority value and runs it to completion. Later arrivals never interrupt it.
func ScheduleNonPreemptivePriority(arrivalTime, burstTime, priorities []int) core.Result {
	sim := core.NewSimulation(core.NewProcesses(arrivalTime, burstTime, priorities))
	for !sim.Done() {
		ready := sim.Ready()
		if len(ready) == 0 {
			sim.IdleUntilNextArrival()
			continue
		}
		next := core.Pick(ready, func(a, b int) bool {
			return higherPriority(sim, a, b)
		})
		sim.Run(next, sim.Remaining(next))
	}
	return sim.Result()
}

// higherPriority orders by priority value (lower first), then arrival, then
// input position.
func higherPriority(sim *core.Simulation, a, b int) bool {
	if pa, pb := sim.Process(a).Priority, sim.Process(b).Priority; pa != pb {
		return pa < pb
	}
	return byArrival(sim, a, b)
}
