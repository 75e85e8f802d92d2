package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"process-scheduler/internal/responses"
)

// IdleMarker fills a gap in the gantt strip where the cpu had nothing to run.
const IdleMarker = "_"

// Write prints the title, the gantt strip and the schedule table of response.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.GanttChart)
	outputSchedule(w, response.Details)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// GanttCells flattens the chart into job labels and the time marks between
// them, inserting IdleMarker wherever two segments do not touch.
func GanttCells(gantt []responses.GanttSegment) (jobs []string, times []int) {
	for i, s := range gantt {
		switch {
		case i == 0:
			jobs = append(jobs, s.Job)
			times = append(times, s.Start, s.Stop)
		case times[len(times)-1] == s.Start:
			jobs = append(jobs, s.Job)
			times = append(times, s.Stop)
		default:
			jobs = append(jobs, IdleMarker, s.Job)
			times = append(times, s.Start, s.Stop)
		}
	}
	return jobs, times
}

func outputGantt(w io.Writer, gantt []responses.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	jobs, times := GanttCells(gantt)
	_, _ = fmt.Fprint(w, "|")
	for _, job := range jobs {
		padding := strings.Repeat(" ", (8-len(job))/2)
		_, _ = fmt.Fprint(w, padding, job, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, t := range times {
		if i == len(times)-1 {
			_, _ = fmt.Fprint(w, t)
			break
		}
		_, _ = fmt.Fprint(w, t, "\t")
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, details []responses.ProcessResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival Time", "Burst Time", "Finish Time", "Turnaround Time", "Waiting Time"})

	var totalTAT, totalWAT int
	for _, p := range details {
		totalTAT += p.TurnAroundTime
		totalWAT += p.WaitingTime
		table.Append([]string{
			p.Job,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.FinishTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "Average",
		averageCell(totalTAT, len(details)),
		averageCell(totalWAT, len(details))})
	table.Render()
}

// averageCell renders "sum / n = avg" with the average rounded to 2 places.
func averageCell(sum, n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d / %d = %.2f", sum, n, float64(sum)/float64(n))
}
