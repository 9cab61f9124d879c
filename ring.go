package turbolz

// ring is a fixed-capacity circular byte buffer addressed from its oldest element.
// Capacity must be a power of 2; all wraparound goes through mask.
type ring struct {
	data []byte // Backing storage, len(data) == capacity.
	mask int    // capacity - 1.
	head int    // Storage slot of the oldest element.
	size int    // Number of live elements, 0..capacity.
}

// newRing returns an empty ring of the given power-of-2 capacity.
func newRing(capacity int) ring {
	return ring{
		data: make([]byte, capacity),
		mask: capacity - 1,
	}
}

func (r *ring) len() int   { return r.size }
func (r *ring) full() bool { return r.size == len(r.data) }

// push appends b, overwriting the oldest element when full.
func (r *ring) push(b byte) {
	r.data[(r.head+r.size)&r.mask] = b
	if r.full() {
		r.head = (r.head + 1) & r.mask
		return
	}

	r.size++
}

// at returns the byte at offset i from the oldest element.
// Offsets wrap through the storage, so any i is valid.
func (r *ring) at(i int) byte {
	return r.data[(r.head+i)&r.mask]
}

// pop removes and returns the oldest element. The ring must not be empty.
func (r *ring) pop() byte {
	b := r.data[r.head]
	r.discard(1)

	return b
}

// discard drops the n oldest elements.
func (r *ring) discard(n int) {
	if n > r.size {
		n = r.size
	}
	r.head = (r.head + n) & r.mask
	r.size -= n
}

// reset empties the ring and zeroes its storage.
func (r *ring) reset() {
	clear(r.data)
	r.head = 0
	r.size = 0
}
