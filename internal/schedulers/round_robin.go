package schedulers

import "process-scheduler/internal/core"

// ScheduleRoundRobin gives each process at most timeQuantum units per turn.
// Processes that arrive during a slice are queued before the preempted one.
func ScheduleRoundRobin(arrivalTime, burstTime []int, timeQuantum int) core.Result {
	if timeQuantum < 1 {
		// a non-positive quantum would never make progress
		timeQuantum = 1
	}
	sim := core.NewSimulation(core.NewProcesses(arrivalTime, burstTime, nil))
	queue := core.NewReadyQueue(sim.Len())
	admit := func() {
		for _, i := range queue.Admit(sim) {
			queue.AddToEnd(i)
		}
	}

	admit()
	for !sim.Done() {
		current, ok := queue.RemoveFromTop()
		if !ok {
			sim.IdleUntilNextArrival()
			admit()
			continue
		}
		finished := sim.Run(current, timeQuantum)
		admit()
		if !finished {
			queue.AddToEnd(current)
		}
	}
	return sim.Result()
}
