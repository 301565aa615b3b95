package relay

import "sync"

// errorRing is a thread-safe ring buffer holding the failures recorded since
// the last successful reload.
type errorRing struct {
	mu   sync.Mutex
	buf  []error
	next int
	full bool
}

// newErrorRing creates an error ring with the given capacity.
// A capacity of 0 disables the ring.
func newErrorRing(capacity int) *errorRing {
	if capacity <= 0 {
		return nil
	}
	return &errorRing{
		buf: make([]error, capacity),
	}
}

// push records an error, evicting the oldest entry when full.
func (r *errorRing) push(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = err
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// clear drops all recorded errors.
func (r *errorRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.buf {
		r.buf[i] = nil
	}
	r.next = 0
	r.full = false
}

// all returns the recorded errors, oldest first.
func (r *errorRing) all() []error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	count := r.next
	start := 0
	if r.full {
		count = len(r.buf)
		start = r.next
	}
	if count == 0 {
		return nil
	}

	out := make([]error, count)
	for i := 0; i < count; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}
