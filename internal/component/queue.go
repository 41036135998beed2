package component

// fifo is the backing store for the queue components.
type fifo[T any] struct {
	items []T
}

// Push appends v to the back of the queue.
func (q *fifo[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the front element.
func (q *fifo[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, true
}

// Peek returns the front element without removing it.
func (q *fifo[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

func (q *fifo[T]) Len() int { return len(q.items) }

// Clear drops every element.
func (q *fifo[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Items returns a copy of the queued elements, front first.
func (q *fifo[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}
