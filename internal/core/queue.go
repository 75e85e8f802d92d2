package core

import "sort"

// ReadyQueue is the FIFO used by the quantum based schedulers. It also
// remembers which processes were already admitted so an arrival is queued once.
type ReadyQueue struct {
	queue    []int
	admitted []bool
}

func NewReadyQueue(size int) *ReadyQueue {
	return &ReadyQueue{queue: make([]int, 0, size), admitted: make([]bool, size)}
}

func (q *ReadyQueue) Len() int { return len(q.queue) }

func (q *ReadyQueue) AddToEnd(i int) {
	q.queue = append(q.queue, i)
}

func (q *ReadyQueue) RemoveFromTop() (int, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	item := q.queue[0]
	q.queue = q.queue[1:]
	return item, true
}

// Admit returns the processes that have arrived by the simulation clock and
// were not admitted before, ordered by arrival time then input position.
// The returned processes are marked admitted but not queued.
func (q *ReadyQueue) Admit(s *Simulation) []int {
	var arrived []int
	for i := range q.admitted {
		if !q.admitted[i] && !s.Finished(i) && s.Arrived(i) {
			q.admitted[i] = true
			arrived = append(arrived, i)
		}
	}
	sort.SliceStable(arrived, func(a, b int) bool {
		return s.Process(arrived[a]).ArrivalTime < s.Process(arrived[b]).ArrivalTime
	})
	return arrived
}
