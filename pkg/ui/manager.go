package ui

import (
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/events"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
)

// queued is one pending message on the manager's queue.
type queued struct {
	target Widget
	msg    events.Message
}

// Manager owns a widget tree and routes input messages into it.
//
// The manager is single threaded: callers feed it pointer and key input from
// one event loop, and every resulting state transition completes before the
// feeding call returns.
type Manager struct {
	root    Widget
	theme   theme.Theme
	focus   Widget
	capture Widget
	hover   Widget
	pointer graphics.Offset

	queue    []queued
	repaints []Widget
}

// NewManager creates a manager with the default theme and no tree.
func NewManager() *Manager {
	return &Manager{theme: theme.Default()}
}

// Root returns the managed tree's root widget.
func (m *Manager) Root() Widget {
	return m.root
}

// SetRoot installs the tree rooted at root, attaching every widget in it.
func (m *Manager) SetRoot(root Widget) {
	m.root = root
	if root != nil {
		m.adopt(root)
	}
}

// Theme returns the manager's theme.
func (m *Manager) Theme() theme.Theme {
	return m.theme
}

// SetTheme replaces the manager's theme. Passing nil restores the default.
func (m *Manager) SetTheme(t theme.Theme) {
	if t == nil {
		t = theme.Default()
	}
	m.theme = t
}

// adopt attaches w's subtree to this manager.
func (m *Manager) adopt(w Widget) {
	w.Base().manager = m
	for _, c := range w.Base().children {
		m.adopt(c)
	}
}

// orphan detaches w's subtree and drops any manager references into it.
func (m *Manager) orphan(w Widget) {
	m.dropReferences(w)
	w.Base().manager = nil
	for _, c := range w.Base().children {
		m.orphan(c)
	}
}

// dropReferences clears focus/capture/hover if they point at w.
func (m *Manager) dropReferences(w Widget) {
	if m.focus == w {
		m.focus = nil
	}
	if m.capture == w {
		m.capture = nil
	}
	if m.hover == w {
		m.hover = nil
	}
}

// Focus returns the focused widget, or nil.
func (m *Manager) Focus() Widget {
	return m.focus
}

// SetFocus moves keyboard focus to w (or clears it when w is nil). The
// FocusLeave/FocusEnter notifications are queued, not delivered inline;
// callers needing them processed before continuing call DispatchQueued.
func (m *Manager) SetFocus(w Widget) {
	if m.focus == w {
		return
	}
	prev := m.focus
	m.focus = w
	if prev != nil {
		m.Post(prev, events.FocusLeave{})
	}
	if w != nil {
		m.Post(w, events.FocusEnter{})
	}
}

// Post queues a message for later synchronous delivery.
func (m *Manager) Post(target Widget, msg events.Message) {
	m.queue = append(m.queue, queued{target: target, msg: msg})
}

// DispatchQueued synchronously delivers every queued message, including
// messages queued while draining. This is a bounded, same-thread re-entrant
// pump, not asynchronous scheduling: when it returns, every queued
// transition (focus enters and leaves in particular) has fully run.
func (m *Manager) DispatchQueued() {
	for len(m.queue) > 0 {
		q := m.queue[0]
		m.queue = m.queue[1:]
		m.Dispatch(q.target, q.msg)
	}
}

// Dispatch synchronously delivers one message. Panics raised by the target
// are recovered and reported; a panicking handler consumes nothing.
func (m *Manager) Dispatch(target Widget, msg events.Message) (consumed bool) {
	if target == nil || target.Base().disposed {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "ui.Manager.Dispatch",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
			consumed = false
		}
	}()
	return target.ProcessMessage(msg)
}

// PointerDown feeds a pointer press. The press is routed to the capture
// owner if any, else to the widget under the pointer; an enabled focus stop
// takes focus (with the focus messages drained) before it sees the press.
func (m *Manager) PointerDown(pos graphics.Offset, button events.MouseButton) bool {
	m.pointer = pos
	m.updateHover()
	target := m.capture
	if target == nil {
		target = m.WidgetAt(pos)
	}
	if target == nil {
		return false
	}
	if b := target.Base(); b.focusStop && b.enabled && m.focus != target {
		m.SetFocus(target)
		m.DispatchQueued()
	}
	return m.Dispatch(target, events.MouseDown{Position: pos, Button: button})
}

// PointerUp feeds a pointer release, routed like PointerDown.
func (m *Manager) PointerUp(pos graphics.Offset, button events.MouseButton) bool {
	m.pointer = pos
	m.updateHover()
	target := m.capture
	if target == nil {
		target = m.WidgetAt(pos)
	}
	return m.Dispatch(target, events.MouseUp{Position: pos, Button: button})
}

// PointerMove feeds a pointer move. Hover transitions produce MouseEnter and
// MouseLeave for the widgets crossed; the move itself goes to the capture
// owner if any, else to the hovered widget.
func (m *Manager) PointerMove(pos graphics.Offset) bool {
	m.pointer = pos
	m.updateHover()
	target := m.capture
	if target == nil {
		target = m.hover
	}
	return m.Dispatch(target, events.MouseMove{Position: pos})
}

// updateHover delivers MouseLeave/MouseEnter when the widget under the
// pointer changes. Hover tracks the actual widget under the pointer even
// while a capture is held.
func (m *Manager) updateHover() {
	next := m.WidgetAt(m.pointer)
	if next == m.hover {
		return
	}
	prev := m.hover
	m.hover = next
	if prev != nil {
		m.Dispatch(prev, events.MouseLeave{})
	}
	if next != nil {
		m.Dispatch(next, events.MouseEnter{})
	}
}

// KeyDown feeds a key press. The focused widget sees it first; if it is not
// consumed there the message is offered to the rest of the tree in tree
// order, which is how mnemonics reach unfocused widgets.
func (m *Manager) KeyDown(name events.Name, mods events.Modifiers) bool {
	msg := events.KeyDown{Name: name, Modifiers: mods}
	if m.focus != nil && m.Dispatch(m.focus, msg) {
		return true
	}
	return m.broadcast(m.root, msg, m.focus)
}

// KeyUp feeds a key release, routed like KeyDown.
func (m *Manager) KeyUp(name events.Name, mods events.Modifiers) bool {
	msg := events.KeyUp{Name: name, Modifiers: mods}
	if m.focus != nil && m.Dispatch(m.focus, msg) {
		return true
	}
	return m.broadcast(m.root, msg, m.focus)
}

// broadcast offers msg to every widget under w in tree order until one
// consumes it, skipping skip (which has already seen the message).
func (m *Manager) broadcast(w Widget, msg events.Message, skip Widget) bool {
	if w == nil {
		return false
	}
	if w != skip && m.Dispatch(w, msg) {
		return true
	}
	for _, c := range w.Base().children {
		if m.broadcast(c, msg, skip) {
			return true
		}
	}
	return false
}

// WidgetAt returns the topmost widget whose bounds contain pos, or nil.
// Later siblings are above earlier ones; children are above their parent.
func (m *Manager) WidgetAt(pos graphics.Offset) Widget {
	if m.root == nil {
		return nil
	}
	return widgetAt(m.root, pos)
}

func widgetAt(w Widget, pos graphics.Offset) Widget {
	b := w.Base()
	if b.disposed || !b.bounds.Contains(pos) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if hit := widgetAt(b.children[i], pos); hit != nil {
			return hit
		}
	}
	return w
}

// CaptureMouse hands the exclusive pointer capture to w. The capture is an
// exclusive token; it is the caller's responsibility not to capture while
// another widget holds it.
func (m *Manager) CaptureMouse(w Widget) {
	m.capture = w
}

// ReleaseMouse releases the pointer capture if w holds it.
func (m *Manager) ReleaseMouse(w Widget) {
	if m.capture == w {
		m.capture = nil
	}
}

// HasCapture reports whether w holds the pointer capture.
func (m *Manager) HasCapture(w Widget) bool {
	return m.capture != nil && m.capture == w
}

// HasMouseOver reports whether w is the widget under the pointer.
func (m *Manager) HasMouseOver(w Widget) bool {
	return w != nil && m.WidgetAt(m.pointer) == w
}

// requestRepaint records a repaint request for w, once per paint cycle.
func (m *Manager) requestRepaint(w Widget) {
	for _, r := range m.repaints {
		if r == w {
			return
		}
	}
	m.repaints = append(m.repaints, w)
}

// NeedsRepaint reports whether any repaint requests are pending.
func (m *Manager) NeedsRepaint() bool {
	return len(m.repaints) > 0
}

// PendingRepaints returns the pending repaint requests without clearing
// them. The returned slice must not be mutated.
func (m *Manager) PendingRepaints() []Widget {
	return m.repaints
}

// TakeRepaints returns the pending repaint requests and clears them.
func (m *Manager) TakeRepaints() []Widget {
	out := m.repaints
	m.repaints = nil
	return out
}

// PaintAll paints the whole tree into canvas, parents before children, and
// clears pending repaint requests.
func (m *Manager) PaintAll(canvas graphics.Canvas) {
	defer errors.Recover("ui.Manager.PaintAll")
	if m.root == nil {
		return
	}
	m.repaints = nil
	paintTree(m.root, &PaintContext{Canvas: canvas})
}

func paintTree(w Widget, pc *PaintContext) {
	if w.Base().disposed {
		return
	}
	w.Paint(pc)
	for _, c := range w.Base().children {
		paintTree(c, pc)
	}
}
