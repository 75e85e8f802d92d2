package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"process-scheduler/internal/responses"
)

func TestGanttCellsMarksIdle(t *testing.T) {
	jobs, times := GanttCells([]responses.GanttSegment{
		{Job: "A", Start: 0, Stop: 2},
		{Job: "B", Start: 2, Stop: 4},
		{Job: "C", Start: 10, Stop: 13},
	})
	if diff := cmp.Diff([]string{"A", "B", IdleMarker, "C"}, jobs); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 4, 10, 13}, times); diff != "" {
		t.Errorf("times mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	response := responses.ScheduleResponse{
		GanttChart: []responses.GanttSegment{
			{Job: "A", Start: 0, Stop: 7},
			{Job: "C", Start: 7, Stop: 8},
			{Job: "B", Start: 8, Stop: 12},
		},
		Details: []responses.ProcessResponse{
			{Job: "A", ArrivalTime: 0, BurstTime: 7, FinishTime: 7, TurnAroundTime: 7, WaitingTime: 0},
			{Job: "B", ArrivalTime: 1, BurstTime: 4, FinishTime: 12, TurnAroundTime: 11, WaitingTime: 7},
			{Job: "C", ArrivalTime: 2, BurstTime: 1, FinishTime: 8, TurnAroundTime: 6, WaitingTime: 4},
		},
	}
	var buf bytes.Buffer
	Write(&buf, "Non Preemptive SJF", response)
	out := buf.String()

	for _, want := range []string{
		"Non Preemptive SJF",
		"|   A   |   C   |   B   |",
		"0\t7\t8\t12",
		"24 / 3 = 8.00",
		"11 / 3 = 3.67",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestAverageCellEmpty(t *testing.T) {
	if got := averageCell(0, 0); got != "-" {
		t.Errorf("averageCell(0, 0) = %q, want -", got)
	}
}
