package des

import "container/heap"

// EventKind distinguishes arrivals from departures
type EventKind int

const (
	Arrival EventKind = iota
	Departure
)

func (k EventKind) String() string {
	switch k {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return "unknown"
	}
}

// Event is a scheduled occurrence on the simulated timeline.
// Server is only meaningful for departures.
type Event struct {
	Time   float64
	Kind   EventKind
	Server int
	seq    uint64
}

// eventQueue orders events by time, then kind (arrivals first), then
// scheduling order, so equal timestamps always pop the same way.
type eventQueue struct {
	events eventHeap
	next   uint64
}

func newEventQueue() *eventQueue {
	q := &eventQueue{events: make(eventHeap, 0, 16)}
	heap.Init(&q.events)
	return q
}

// Schedule adds an event
func (q *eventQueue) Schedule(e Event) {
	e.seq = q.next
	q.next++
	heap.Push(&q.events, e)
}

// Pop removes and returns the earliest event
func (q *eventQueue) Pop() (Event, bool) {
	if q.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.events).(Event), true
}

// Peek returns the earliest event without removing it
func (q *eventQueue) Peek() (Event, bool) {
	if q.Len() == 0 {
		return Event{}, false
	}
	return q.events[0], true
}

// Len reports the number of pending events
func (q *eventQueue) Len() int {
	return q.events.Len()
}

type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	if h[i].Kind != h[j].Kind {
		return h[i].Kind < h[j].Kind
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
