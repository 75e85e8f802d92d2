package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	MaxProcesses                             int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file falls back to
// the defaults; a broken one stops the process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from dir. Every key can be overridden
// by an environment variable such as SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func LoadSchedulerConfig(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.max_processes", 64)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})

	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer("SCHEDULER.", "", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading scheduler config: %w", err)
		}
		log.Println("config.yaml not found in", dir, "using defaults")
	}

	c := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		MaxProcesses:                             v.GetInt("scheduler.max_processes"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
	}
	return c, nil
}
