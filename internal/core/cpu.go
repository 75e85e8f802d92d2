package core

// Segment is one maximal interval [Start, Stop) during which Job held the cpu.
type Segment struct {
	Job   int
	Start int
	Stop  int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is the single simulated core. It keeps the gantt timeline and the
// utilization counters of one simulation run.
type Cpu struct {
	segments []Segment
	metric   CpuMetric
}

// Execute runs job on the cpu during [start, start+units). A run that touches
// the previous segment of the same job extends it instead of opening a new one.
func (c *Cpu) Execute(job, start, units int) {
	if units <= 0 {
		return
	}
	stop := start + units
	if n := len(c.segments); n > 0 {
		last := &c.segments[n-1]
		if start > last.Stop {
			c.metric.IdleTime += start - last.Stop
		}
		if last.Job == job && last.Stop == start {
			last.Stop = stop
			c.metric.UtilizationTime += units
			c.metric.TotalTime = stop
			return
		}
	} else if start > 0 {
		// the cpu is idle until the first arrival
		c.metric.IdleTime += start
	}
	c.segments = append(c.segments, Segment{Job: job, Start: start, Stop: stop})
	c.metric.UtilizationTime += units
	c.metric.TotalTime = stop
}

func (c *Cpu) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
