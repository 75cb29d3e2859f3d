package scroll

import "sync"

// Frames schedules work for the next rendered frame
type Frames interface {
	RequestFrame(fn func())
}

// FrameQueue is a [Frames] driven by the owner of the render loop: callers
// queue callbacks with RequestFrame and the render loop calls Flush once per
// frame, before drawing.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()
}

func (q *FrameQueue) RequestFrame(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fn)
}

// Flush runs the callbacks queued before the call. Callbacks queued while
// flushing are kept for the next frame
func (q *FrameQueue) Flush() {
	q.mu.Lock()
	fns := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Pending returns the number of callbacks waiting for the next frame
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
