package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"

	"process-scheduler/config"
	"process-scheduler/internal/responses"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, NewSchedulerHandlerImpl(&config.SchedulerConfig{
		MaxProcesses:                             8,
		RoundRobinTimeQuantum:                    3,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{2, 4},
	}))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test(%s) error = %v", path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestRoundRobinUsesConfiguredQuantum(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/rr", `{"arrival_times":[0,0,0],"burst_times":[5,3,8]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got responses.ScheduleResponse
	decode(t, resp, &got)

	want := []responses.GanttSegment{
		{Job: "A", Start: 0, Stop: 3},
		{Job: "B", Start: 3, Stop: 6},
		{Job: "C", Start: 6, Stop: 9},
		{Job: "A", Start: 9, Stop: 11},
		{Job: "C", Start: 11, Stop: 16},
	}
	if diff := cmp.Diff(want, got.GanttChart); diff != "" {
		t.Errorf("gantt mismatch (-want +got):\n%s", diff)
	}
	if got.Algorithm != "RR" || got.TotalTime != 16 {
		t.Errorf("algorithm/total = %s/%d, want RR/16", got.Algorithm, got.TotalTime)
	}
}

func TestPreemptivePriority(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/pp", `{"arrival_times":[0,1],"burst_times":[5,5],"priorities":[2,1]}`)
	var got responses.ScheduleResponse
	decode(t, resp, &got)

	want := []responses.ProcessResponse{
		{Job: "A", ArrivalTime: 0, BurstTime: 5, FinishTime: 10, TurnAroundTime: 10, WaitingTime: 5, ResponseTime: 0},
		{Job: "B", ArrivalTime: 1, BurstTime: 5, FinishTime: 6, TurnAroundTime: 5, WaitingTime: 0, ResponseTime: 0},
	}
	if diff := cmp.Diff(want, got.Details); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
	if got.AverageTurnAroundTime != 7.5 || got.AverageWaitingTime != 2.5 {
		t.Errorf("averages = %v/%v, want 7.5/2.5", got.AverageTurnAroundTime, got.AverageWaitingTime)
	}
}

func TestNonPreemptivePriorityDefaultsPriorities(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/npp", `{"arrival_times":[1,0],"burst_times":[2,2]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got responses.ScheduleResponse
	decode(t, resp, &got)
	if len(got.GanttChart) != 2 || got.GanttChart[0].Job != "B" {
		t.Errorf("gantt = %+v, want B first", got.GanttChart)
	}
}

func TestInvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		wantErr string
	}{
		{"malformed json", "/api/v1/sjf", `{"arrival_times":`, "invalid request format"},
		{"zero burst", "/api/v1/sjf", `{"arrival_times":[0],"burst_times":[0]}`, "0 burst time is invalid"},
		{"length mismatch", "/api/v1/fcfs", `{"arrival_times":[0,1],"burst_times":[1]}`, "do not match"},
		{"negative quantum", "/api/v1/rr", `{"arrival_times":[0],"burst_times":[1],"time_quantum":-2}`, "time quantum"},
		{"priority mismatch", "/api/v1/pp", `{"arrival_times":[0],"burst_times":[1],"priorities":[1,2]}`, "equal length"},
		{"too many processes", "/api/v1/mlfq", `{"arrival_times":[0,0,0,0,0,0,0,0,0],"burst_times":[1,1,1,1,1,1,1,1,1]}`, "at most 8"},
	}
	app := newTestApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.path, tt.body)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			var got map[string]string
			decode(t, resp, &got)
			if !strings.Contains(got["error"], tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", got["error"], tt.wantErr)
			}
		})
	}
}

func TestAllAlgorithms(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/all", `{"arrival_times":[0,1,2],"burst_times":[7,4,1]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got map[string]responses.ScheduleResponse
	decode(t, resp, &got)

	for _, algorithm := range []string{"SJF", "RR", "NPP", "PP", "FCFS", "MLFQ"} {
		r, ok := got[algorithm]
		if !ok {
			t.Errorf("missing %s in response", algorithm)
			continue
		}
		if r.TotalTime != 12 || len(r.Details) != 3 {
			t.Errorf("%s: total/details = %d/%d, want 12/3", algorithm, r.TotalTime, len(r.Details))
		}
	}
}

func TestListAlgorithms(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil)
	resp, err := newTestApp().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var got []struct {
		Value               string `json:"value"`
		RequiresTimeQuantum bool   `json:"requires_time_quantum"`
	}
	decode(t, resp, &got)
	if len(got) != 6 || got[0].Value != "RR" || !got[0].RequiresTimeQuantum {
		t.Errorf("algorithms = %+v", got)
	}
}
