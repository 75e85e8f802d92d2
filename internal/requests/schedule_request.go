package requests

import (
	"errors"
	"fmt"
)

var ErrInvalidRequest = errors.New("invalid request")

type ScheduleRequest struct {
	ArrivalTimes []int `json:"arrival_times"`
	BurstTimes   []int `json:"burst_times"`
	TimeQuantum  int   `json:"time_quantum"`
	Priorities   []int `json:"priorities"`
}

// Rules selects the checks that depend on the chosen algorithm.
type Rules struct {
	RequiresTimeQuantum bool
	UsesPriorities      bool
	MaxProcesses        int
}

// Validate rejects malformed input in the same order the input form reports
// it. Empty priorities are replaced with zeros when priorities are used.
func (r *ScheduleRequest) Validate(rules Rules) error {
	if len(r.ArrivalTimes) == 0 || len(r.BurstTimes) == 0 {
		return fmt.Errorf("%w: arrival times and burst times are required", ErrInvalidRequest)
	}
	for _, bt := range r.BurstTimes {
		if bt == 0 {
			return fmt.Errorf("%w: 0 burst time is invalid", ErrInvalidRequest)
		}
	}
	if len(r.ArrivalTimes) != len(r.BurstTimes) {
		return fmt.Errorf("%w: number of the arrival times and burst times do not match", ErrInvalidRequest)
	}
	if rules.MaxProcesses > 0 && len(r.ArrivalTimes) > rules.MaxProcesses {
		return fmt.Errorf("%w: at most %d processes are allowed", ErrInvalidRequest, rules.MaxProcesses)
	}
	if rules.RequiresTimeQuantum && r.TimeQuantum <= 0 {
		return fmt.Errorf("%w: time quantum must be a positive integer", ErrInvalidRequest)
	}
	for i := range r.ArrivalTimes {
		if r.ArrivalTimes[i] < 0 || r.BurstTimes[i] < 0 {
			return fmt.Errorf("%w: negative numbers are invalid", ErrInvalidRequest)
		}
	}
	if rules.UsesPriorities {
		if len(r.Priorities) == 0 {
			r.Priorities = make([]int, len(r.ArrivalTimes))
		} else if len(r.Priorities) != len(r.ArrivalTimes) {
			return fmt.Errorf("%w: arrival times, burst times and priorities should have equal length", ErrInvalidRequest)
		}
	}
	return nil
}
