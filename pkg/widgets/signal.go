package widgets

import "github.com/go-ember/ember/pkg/ui"

// ClickEvent is delivered to click listeners.
type ClickEvent struct {
	// Widget is the originating widget.
	Widget ui.Widget
}

type clickListener struct {
	id int
	fn func(*ClickEvent)
}

// ClickSignal delivers click events to externally attached listeners.
// Emission is synchronous and reentrant safe: a listener may itself trigger
// further input processing, including connecting or disconnecting listeners.
type ClickSignal struct {
	listeners []clickListener
	nextID    int
}

// Connect attaches a listener and returns a function that detaches it.
// Disconnecting twice is a no-op.
func (s *ClickSignal) Connect(fn func(*ClickEvent)) (disconnect func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, clickListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers ev to every listener attached when the emission began.
func (s *ClickSignal) Emit(ev *ClickEvent) {
	attached := make([]clickListener, len(s.listeners))
	copy(attached, s.listeners)
	for _, l := range attached {
		l.fn(ev)
	}
}
