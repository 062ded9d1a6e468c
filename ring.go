package acsearch

// ring keeps the last cap(values) items pushed to it.
type ring[T any] struct {
	values []T
	pos    int // index of the oldest item, once the ring is full
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ring[T]{values: make([]T, 0, capacity)}
}

// push adds an item, evicting the oldest one if the ring is full.
func (r *ring[T]) push(item T) {
	if len(r.values) < cap(r.values) {
		r.values = append(r.values, item)
		return
	}
	r.values[r.pos] = item
	r.pos = (r.pos + 1) % len(r.values)
}

func (r *ring[T]) len() int {
	return len(r.values)
}

// back returns the item pushed k pushes ago; back(0) is the latest item.
func (r *ring[T]) back(k int) (T, bool) {
	n := len(r.values)
	if k < 0 || k >= n {
		var zero T
		return zero, false
	}
	// logical index of the item, counted from the oldest one
	i := n - 1 - k
	return r.values[(r.pos+i)%n], true
}
