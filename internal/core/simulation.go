package core

import "sort"

// Process is a read-only input record. Job is the 0-based position of the
// process in the input arrays.
type Process struct {
	Job         int
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// NewProcesses zips the parallel input arrays. A missing priority is 0.
func NewProcesses(arrivalTime, burstTime, priorities []int) []Process {
	processes := make([]Process, len(arrivalTime))
	for i := range arrivalTime {
		processes[i] = Process{Job: i, ArrivalTime: arrivalTime[i]}
		if i < len(burstTime) {
			processes[i].BurstTime = burstTime[i]
		}
		if i < len(priorities) {
			processes[i].Priority = priorities[i]
		}
	}
	return processes
}

type ProcessResult struct {
	Job int
	At  int
	Bt  int
	Ft  int
	Tat int
	Wat int
	Rt  int
}

type Result struct {
	Gantt     []Segment
	Processes []ProcessResult
	Cpu       CpuMetric
}

// Simulation is the mutable state of a single solve call. It must not be
// reused across calls.
type Simulation struct {
	processes []Process
	remaining []int
	finish    []int
	start     []int
	finished  []bool
	done      int
	clock     int
	cpu       Cpu
}

func NewSimulation(processes []Process) *Simulation {
	s := &Simulation{
		processes: processes,
		remaining: make([]int, len(processes)),
		finish:    make([]int, len(processes)),
		start:     make([]int, len(processes)),
		finished:  make([]bool, len(processes)),
	}
	for i, p := range processes {
		s.remaining[i] = p.BurstTime
		s.start[i] = -1
	}
	return s
}

func (s *Simulation) Clock() int { return s.clock }

func (s *Simulation) Len() int { return len(s.processes) }

func (s *Simulation) Process(i int) Process { return s.processes[i] }

func (s *Simulation) Remaining(i int) int { return s.remaining[i] }

func (s *Simulation) Finished(i int) bool { return s.finished[i] }

func (s *Simulation) Done() bool { return s.done == len(s.processes) }

// Arrived reports whether process i is eligible at the current clock.
func (s *Simulation) Arrived(i int) bool {
	return s.processes[i].ArrivalTime <= s.clock
}

// Ready returns the arrived, unfinished processes in input order.
func (s *Simulation) Ready() []int {
	ready := make([]int, 0, len(s.processes))
	for i := range s.processes {
		if !s.finished[i] && s.Arrived(i) {
			ready = append(ready, i)
		}
	}
	return ready
}

// IdleUntilNextArrival moves the clock forward to the earliest arrival of an
// unfinished process. It returns false when there is nothing left to wait for.
func (s *Simulation) IdleUntilNextArrival() bool {
	next, found := 0, false
	for i, p := range s.processes {
		if s.finished[i] || p.ArrivalTime <= s.clock {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	if found {
		s.clock = next
	}
	return found
}

// Run executes process i for at most units time units starting at the current
// clock and reports whether it finished.
func (s *Simulation) Run(i, units int) bool {
	if units > s.remaining[i] {
		units = s.remaining[i]
	}
	if units < 0 {
		units = 0
	}
	if units > 0 && s.start[i] < 0 {
		s.start[i] = s.clock
	}
	s.cpu.Execute(i, s.clock, units)
	s.clock += units
	s.remaining[i] -= units
	if s.remaining[i] <= 0 && !s.finished[i] {
		s.remaining[i] = 0
		s.finished[i] = true
		s.finish[i] = s.clock
		if s.start[i] < 0 {
			s.start[i] = s.clock
		}
		s.done++
	}
	return s.finished[i]
}

// Result collects the gantt chart and the per-process metrics. Rows are
// ordered by arrival time, then by input position.
func (s *Simulation) Result() Result {
	rows := make([]ProcessResult, len(s.processes))
	for i, p := range s.processes {
		tat := s.finish[i] - p.ArrivalTime
		rows[i] = ProcessResult{
			Job: p.Job,
			At:  p.ArrivalTime,
			Bt:  p.BurstTime,
			Ft:  s.finish[i],
			Tat: tat,
			Wat: tat - p.BurstTime,
			Rt:  s.start[i] - p.ArrivalTime,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].At != rows[j].At {
			return rows[i].At < rows[j].At
		}
		return rows[i].Job < rows[j].Job
	})
	return Result{
		Gantt:     s.cpu.Segments(),
		Processes: rows,
		Cpu:       s.cpu.Metric(),
	}
}

// Pick returns the element of ready that is smallest under less. Equal
// elements keep their order in ready.
func Pick(ready []int, less func(a, b int) bool) int {
	best := ready[0]
	for _, i := range ready[1:] {
		if less(i, best) {
			best = i
		}
	}
	return best
}
