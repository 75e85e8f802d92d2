package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"process-scheduler/internal/core"
)

type Algorithm string

const (
	ShortestJobFirst        Algorithm = "SJF"
	RoundRobin              Algorithm = "RR"
	NonPreemptivePriority   Algorithm = "NPP"
	PreemptivePriority      Algorithm = "PP"
	FirstComeFirstServe     Algorithm = "FCFS"
	MultilevelFeedbackQueue Algorithm = "MLFQ"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		RoundRobin,
		ShortestJobFirst,
		NonPreemptivePriority,
		PreemptivePriority,
		FirstComeFirstServe,
		MultilevelFeedbackQueue,
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := solvers[algorithm]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return algorithm, nil
}

// Name is the human readable label of the algorithm.
func (a Algorithm) Name() string {
	switch a {
	case ShortestJobFirst:
		return "Non Preemptive SJF"
	case RoundRobin:
		return "Round-Robin, RR"
	case NonPreemptivePriority:
		return "Non Preemptive Priority"
	case PreemptivePriority:
		return "Preemptive Priority"
	case FirstComeFirstServe:
		return "First Come First Serve"
	case MultilevelFeedbackQueue:
		return "Multilevel Feedback Queue"
	}
	return string(a)
}

// RequiresTimeQuantum reports whether the algorithm reads the time quantum.
func (a Algorithm) RequiresTimeQuantum() bool {
	return a == RoundRobin || a == MultilevelFeedbackQueue
}

// UsesPriorities reports whether the algorithm reads the priorities.
func (a Algorithm) UsesPriorities() bool {
	return a == NonPreemptivePriority || a == PreemptivePriority
}

type input struct {
	arrivalTime []int
	burstTime   []int
	timeQuantum int
	priorities  []int
	levels      []int
}

type Option func(*input)

// WithFeedbackLevels sets the per-level quanta of the multilevel feedback
// queue. Without it the levels are the time quantum and twice the time quantum.
func WithFeedbackLevels(levels []int) Option {
	return func(in *input) {
		in.levels = levels
	}
}

var solvers = map[Algorithm]func(in input) core.Result{
	ShortestJobFirst: func(in input) core.Result {
		return ScheduleShortestJobFirst(in.arrivalTime, in.burstTime)
	},
	RoundRobin: func(in input) core.Result {
		return ScheduleRoundRobin(in.arrivalTime, in.burstTime, in.timeQuantum)
	},
	NonPreemptivePriority: func(in input) core.Result {
		return ScheduleNonPreemptivePriority(in.arrivalTime, in.burstTime, in.priorities)
	},
	PreemptivePriority: func(in input) core.Result {
		return SchedulePreemptivePriority(in.arrivalTime, in.burstTime, in.priorities)
	},
	FirstComeFirstServe: func(in input) core.Result {
		return ScheduleFirstComeFirstServe(in.arrivalTime, in.burstTime)
	},
	MultilevelFeedbackQueue: func(in input) core.Result {
		levels := in.levels
		if len(levels) == 0 {
			levels = []int{in.timeQuantum, 2 * in.timeQuantum}
		}
		return ScheduleMultilevelFeedbackQueue(in.arrivalTime, in.burstTime, levels)
	},
}

// Solve forwards the input to the scheduler registered for algorithm. The
// input is assumed to be validated already.
func Solve(algorithm Algorithm, arrivalTime, burstTime []int, timeQuantum int, priorities []int, opts ...Option) (core.Result, error) {
	solve, ok := solvers[algorithm]
	if !ok {
		return core.Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
	}
	in := input{
		arrivalTime: arrivalTime,
		burstTime:   burstTime,
		timeQuantum: timeQuantum,
		priorities:  priorities,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return solve(in), nil
}
