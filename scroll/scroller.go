package scroll

import "sync"

// Scroller is anything whose scroll position can be read, written and
// observed. Both the native scroll container and the overlay scrollbar
// implement it, which lets a [Synchronizer] work without knowing either
// concrete widget
type Scroller interface {
	// ScrollPosition returns the current scroll position
	ScrollPosition() Position
	// SetScrollPosition scrolls to pos. When immediate is true the position
	// is applied, and scroll listeners notified, before the call returns.
	// Otherwise the scroller may animate towards pos over several frames
	SetScrollPosition(pos Position, immediate bool)
	// OnScroll registers fn to be called with the new position every time
	// the scroll position changes. The returned function removes fn and is
	// safe to call more than once
	OnScroll(fn func(Position)) (unsubscribe func())
	// Destroy releases every listener. The scroller is unusable afterwards
	Destroy()
}

// Emitter is a registry of scroll listeners. The zero value is ready to use
type Emitter struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]func(Position)
	order     []uint64
}

// Subscribe adds fn to the registry. Listeners are called in subscription
// order
func (e *Emitter) Subscribe(fn func(Position)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[uint64]func(Position))
	}
	e.next += 1
	id := e.next
	e.listeners[id] = fn
	e.order = append(e.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.remove(id)
		})
	}
}

func (e *Emitter) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.listeners[id]; !ok {
		return
	}
	delete(e.listeners, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Emit calls every listener with pos. Listeners may unsubscribe from within
// the callback
func (e *Emitter) Emit(pos Position) {
	e.mu.Lock()
	fns := make([]func(Position), 0, len(e.order))
	for _, id := range e.order {
		fns = append(fns, e.listeners[id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(pos)
	}
}

// Len returns the number of active listeners
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

// Reset drops every listener
func (e *Emitter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = nil
	e.order = nil
}
