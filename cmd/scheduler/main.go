package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"process-scheduler/config"
	"process-scheduler/internal/report"
	"process-scheduler/internal/requests"
	"process-scheduler/internal/schedulers"
)

func main() {
	schedulerConfig := config.GetSchedulerConfig()

	algorithmName := flag.String("algorithm", "all", "one of sjf, rr, npp, pp, fcfs, mlfq or all")
	timeQuantum := flag.Int("quantum", schedulerConfig.RoundRobinTimeQuantum, "time quantum for rr and mlfq")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] processes.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v: error opening scheduling file", err)
	}
	defer f.Close()

	request, err := requests.LoadCSV(f)
	if err != nil {
		log.Fatal(err)
	}
	request.TimeQuantum = *timeQuantum

	algorithms := schedulers.Algorithms()
	if !strings.EqualFold(*algorithmName, "all") {
		algorithm, err := schedulers.ParseAlgorithm(*algorithmName)
		if err != nil {
			log.Fatal(err)
		}
		algorithms = []schedulers.Algorithm{algorithm}
	}

	for _, algorithm := range algorithms {
		r := request
		r.Priorities = append([]int(nil), request.Priorities...)
		if err := r.Validate(requests.Rules{
			RequiresTimeQuantum: algorithm.RequiresTimeQuantum(),
			UsesPriorities:      algorithm.UsesPriorities(),
			MaxProcesses:        schedulerConfig.MaxProcesses,
		}); err != nil {
			log.Fatal(err)
		}
		result, err := schedulers.Solve(algorithm, r.ArrivalTimes, r.BurstTimes, r.TimeQuantum, r.Priorities,
			schedulers.WithFeedbackLevels(schedulerConfig.MultilevelFeedbackQueueLevelsTimeQuantum))
		if err != nil {
			log.Fatal(err)
		}
		report.Write(os.Stdout, algorithm.Name(), schedulers.GenerateResponse(algorithm, result))
	}
}
