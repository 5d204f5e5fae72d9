package blit

// EventQueue is a single-producer, single-consumer FIFO owned by the pipeline.
// Every tick it is filled from a device and drained completely, so events are
// never carried into the next tick.
type EventQueue[T any] struct {
	items []T
	spare []T
}

// Push appends ev to the back of the queue.
func (q *EventQueue[T]) Push(ev T) {
	q.items = append(q.items, ev)
}

// Len returns the number of pending events.
func (q *EventQueue[T]) Len() int {
	return len(q.items)
}

// Drain returns all pending events in arrival order and empties the queue.
// The returned slice is reused and is only valid until the next Drain.
func (q *EventQueue[T]) Drain() []T {
	out := q.items
	q.items = q.spare[:0]
	q.spare = out
	return out
}
