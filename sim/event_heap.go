package sim

import "container/heap"

// EventHeap is the simulator's pending-event queue. Pops come out in
// airtime order; two events at the same instant resolve by type priority
// (a PPDU leaves the air before the next one starts) and then by the order
// they were scheduled, so a seeded run replays identically.
type EventHeap struct {
	events []Event
}

func NewEventHeap() *EventHeap {
	return &EventHeap{events: make([]Event, 0)}
}

// before reports whether a must execute ahead of b.
func before(a, b Event) bool {
	switch {
	case a.Timestamp() != b.Timestamp():
		return a.Timestamp() < b.Timestamp()
	case a.Priority() != b.Priority():
		return a.Priority() < b.Priority()
	default:
		return a.EventID() < b.EventID()
	}
}

func (h *EventHeap) Len() int           { return len(h.events) }
func (h *EventHeap) Less(i, j int) bool { return before(h.events[i], h.events[j]) }
func (h *EventHeap) Swap(i, j int)      { h.events[i], h.events[j] = h.events[j], h.events[i] }

func (h *EventHeap) Push(x any) {
	h.events = append(h.events, x.(Event))
}

func (h *EventHeap) Pop() any {
	last := len(h.events) - 1
	ev := h.events[last]
	h.events[last] = nil
	h.events = h.events[:last]
	return ev
}

// Schedule queues ev.
func (h *EventHeap) Schedule(ev Event) {
	heap.Push(h, ev)
}

// PopNext dequeues the earliest event, or returns nil on an empty queue.
func (h *EventHeap) PopNext() Event {
	if len(h.events) == 0 {
		return nil
	}
	return heap.Pop(h).(Event)
}

// Peek returns the earliest event without dequeuing it, or nil.
func (h *EventHeap) Peek() Event {
	if len(h.events) == 0 {
		return nil
	}
	return h.events[0]
}
