package schedulers

import "process-scheduler/internal/core"

// SchedulePreemptivePriority re-evaluates the ready set every time unit. The
// process that ran in the previous unit keeps the cpu unless an arrived
// process has a strictly lower priority value.
func SchedulePreemptivePriority(arrivalTime, burstTime, priorities []int) core.Result {
	sim := core.NewSimulation(core.NewProcesses(arrivalTime, burstTime, priorities))
	running := -1
	for !sim.Done() {
		ready := sim.Ready()
		if len(ready) == 0 {
			sim.IdleUntilNextArrival()
			running = -1
			continue
		}
		next := core.Pick(ready, func(a, b int) bool {
			return higherPriority(sim, a, b)
		})
		if running >= 0 && !sim.Finished(running) &&
			sim.Process(running).Priority <= sim.Process(next).Priority {
			next = running
		}
		if sim.Run(next, 1) {
			running = -1
		} else {
			running = next
		}
	}
	return sim.Result()
}
