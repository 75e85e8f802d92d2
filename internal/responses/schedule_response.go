package responses

type GanttSegment struct {
	Job   string `json:"job"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
}

type ProcessResponse struct {
	Job            string `json:"job"`
	ArrivalTime    int    `json:"at"`
	BurstTime      int    `json:"bt"`
	FinishTime     int    `json:"ft"`
	TurnAroundTime int    `json:"tat"`
	WaitingTime    int    `json:"wat"`
	ResponseTime   int    `json:"rt"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	GanttChart            []GanttSegment    `json:"gantt_chart"`
	Details               []ProcessResponse `json:"details"`
}
