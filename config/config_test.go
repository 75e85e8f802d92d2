package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSchedulerConfigDefaults(t *testing.T) {
	got, err := LoadSchedulerConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	want := &SchedulerConfig{
		Port:                                     9095,
		MaxProcesses:                             64,
		RoundRobinTimeQuantum:                    2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{5, 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadSchedulerConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSchedulerConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`port: 8080
scheduler:
  round_robin:
    time_quantum: 4
  multilevel_feedback_queue:
    levels_time_quantum: [1, 2, 3]
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCHEDULER_MAX_PROCESSES", "10")

	got, err := LoadSchedulerConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := &SchedulerConfig{
		Port:                                     8080,
		MaxProcesses:                             10,
		RoundRobinTimeQuantum:                    4,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{1, 2, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadSchedulerConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSchedulerConfigBrokenFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSchedulerConfig(dir); err == nil {
		t.Error("expected an error for a malformed config file")
	}
}
