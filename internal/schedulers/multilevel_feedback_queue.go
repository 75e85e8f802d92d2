package schedulers

import "process-scheduler/internal/core"

// ScheduleMultilevelFeedbackQueue runs one round robin queue per entry of
// levels followed by a final fcfs queue. New processes enter the first level
// and a process that uses its whole slice without finishing moves one level
// down. A slice is never cut short by a later arrival.
func ScheduleMultilevelFeedbackQueue(arrivalTime, burstTime []int, levels []int) core.Result {
	sim := core.NewSimulation(core.NewProcesses(arrivalTime, burstTime, nil))
	// we have len(levels) round robin queues and one fcfs queue
	queues := make([]*core.ReadyQueue, len(levels)+1)
	for l := range queues {
		queues[l] = core.NewReadyQueue(sim.Len())
	}
	admit := func() {
		for _, i := range queues[0].Admit(sim) {
			queues[0].AddToEnd(i)
		}
	}

	admit()
	for !sim.Done() {
		level, current, ok := nextFromLevels(queues)
		if !ok {
			sim.IdleUntilNextArrival()
			admit()
			continue
		}
		slice := sim.Remaining(current)
		if level < len(levels) && levels[level] > 0 {
			slice = levels[level]
		}
		finished := sim.Run(current, slice)
		admit()
		if !finished {
			queues[nextLevel(level, len(queues))].AddToEnd(current)
		}
	}
	return sim.Result()
}

func nextFromLevels(queues []*core.ReadyQueue) (int, int, bool) {
	for level, q := range queues {
		if i, ok := q.RemoveFromTop(); ok {
			return level, i, true
		}
	}
	return 0, 0, false
}

func nextLevel(level, count int) int {
	if level+1 < count {
		return level + 1
	}
	return level
}
