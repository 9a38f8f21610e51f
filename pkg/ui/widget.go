package ui

import (
	"github.com/go-ember/ember/pkg/events"
	"github.com/go-ember/ember/pkg/graphics"
)

// Widget is a node in the retained widget tree.
type Widget interface {
	// Base returns the widget's common node state.
	Base() *WidgetBase
	// ProcessMessage handles one input message and reports whether it was
	// consumed.
	ProcessMessage(msg events.Message) bool
	// Paint draws the widget (not its children) into the paint context.
	Paint(pc *PaintContext)
	// PreferredSize returns the widget's minimum content box including
	// border insets.
	PreferredSize() graphics.Size
}

// SelectHandler is implemented by widgets that observe their own selection
// turning on. WidgetBase.SetSelected dispatches it through the registered
// self, so the outermost type's method runs.
type SelectHandler interface {
	OnSelect()
}

// Disposer is implemented by widgets that own external resources released on
// disposal.
type Disposer interface {
	OnDispose()
}

// PaintContext carries the drawing surface through a paint pass.
type PaintContext struct {
	Canvas graphics.Canvas
}

// Align aliases the graphics alignment bitmask for widget content.
type Align = graphics.Align

const (
	AlignLeft   = graphics.AlignLeft
	AlignCenter = graphics.AlignCenter
	AlignRight  = graphics.AlignRight
	AlignTop    = graphics.AlignTop
	AlignMiddle = graphics.AlignMiddle
	AlignBottom = graphics.AlignBottom
)

// WidgetBase is the common state embedded by every widget.
type WidgetBase struct {
	self     Widget
	manager  *Manager
	parent   Widget
	children []Widget

	bounds   graphics.Rect
	text     string
	label    string
	mnemonic rune
	align    Align

	enabled     bool
	selected    bool
	focusStop   bool
	focusMagnet bool
	disposed    bool
}

// SetSelf registers the concrete widget for hook dispatch and marks the
// widget enabled. Constructors must call it before any other method.
func (w *WidgetBase) SetSelf(self Widget) {
	w.self = self
	w.enabled = true
}

// Self returns the concrete widget registered via SetSelf.
func (w *WidgetBase) Self() Widget {
	return w.self
}

// Base returns the widget's common node state.
func (w *WidgetBase) Base() *WidgetBase {
	return w
}

// Manager returns the manager owning the tree this widget is attached to,
// or nil while detached.
func (w *WidgetBase) Manager() *Manager {
	return w.manager
}

// Parent returns the widget's parent, or nil.
func (w *WidgetBase) Parent() Widget {
	return w.parent
}

// Children returns the widget's children. The returned slice must not be
// mutated.
func (w *WidgetBase) Children() []Widget {
	return w.children
}

// AddChild appends child to this widget's children and, if this widget is
// attached to a manager, attaches the child's subtree too.
func (w *WidgetBase) AddChild(child Widget) {
	cb := child.Base()
	cb.parent = w.self
	w.children = append(w.children, child)
	if w.manager != nil {
		w.manager.adopt(child)
	}
}

// RemoveChild detaches child from this widget. The child's subtree loses its
// manager; any focus, capture, or hover reference into the subtree is
// dropped.
func (w *WidgetBase) RemoveChild(child Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.Base().parent = nil
			if w.manager != nil {
				w.manager.orphan(child)
			}
			return
		}
	}
}

// Root returns the top of the tree containing this widget, or nil while the
// widget is detached from any managed tree.
func (w *WidgetBase) Root() Widget {
	if w.manager == nil || w.self == nil {
		return nil
	}
	cur := w.self
	for cur.Base().parent != nil {
		cur = cur.Base().parent
	}
	return cur
}

// Bounds returns the widget's rectangle in surface coordinates.
func (w *WidgetBase) Bounds() graphics.Rect {
	return w.bounds
}

// SetBounds positions the widget.
func (w *WidgetBase) SetBounds(bounds graphics.Rect) {
	w.bounds = bounds
	w.Invalidate()
}

// Text returns the widget's raw text, including any mnemonic marker.
func (w *WidgetBase) Text() string {
	return w.text
}

// Label returns the widget's text with the mnemonic marker stripped.
func (w *WidgetBase) Label() string {
	return w.label
}

// Mnemonic returns the widget's mnemonic rune (lowercased), or 0.
func (w *WidgetBase) Mnemonic() rune {
	return w.mnemonic
}

// SetText replaces the widget's text. A '&' in the text marks the following
// rune as the widget's mnemonic.
func (w *WidgetBase) SetText(text string) {
	w.text = text
	w.label, w.mnemonic = graphics.StripMnemonic(text)
	w.Invalidate()
}

// Align returns the widget's content alignment.
func (w *WidgetBase) Align() Align {
	return w.align
}

// SetAlign sets the widget's content alignment.
func (w *WidgetBase) SetAlign(align Align) {
	w.align = align
}

// Enabled reports whether the widget accepts input.
func (w *WidgetBase) Enabled() bool {
	return w.enabled
}

// SetEnabled enables or disables input for the widget.
func (w *WidgetBase) SetEnabled(enabled bool) {
	if w.enabled == enabled {
		return
	}
	w.enabled = enabled
	w.Invalidate()
}

// Selected reports the widget's selection (pressed/checked) state.
func (w *WidgetBase) Selected() bool {
	return w.selected
}

// SetSelected sets the selection state. On a transition to true the
// widget's OnSelect hook fires (through the registered self).
func (w *WidgetBase) SetSelected(selected bool) {
	if w.disposed || w.selected == selected {
		return
	}
	w.selected = selected
	w.Invalidate()
	if selected {
		if h, ok := w.self.(SelectHandler); ok {
			h.OnSelect()
		}
	}
}

// IsFocusStop reports whether the widget participates in focus.
func (w *WidgetBase) IsFocusStop() bool {
	return w.focusStop
}

// SetFocusStop marks the widget as focusable.
func (w *WidgetBase) SetFocusStop(stop bool) {
	w.focusStop = stop
}

// IsFocusMagnet reports whether the widget is the tree's default Enter-key
// target.
func (w *WidgetBase) IsFocusMagnet() bool {
	return w.focusMagnet
}

// SetFocusMagnet marks the widget as the default Enter-key target.
func (w *WidgetBase) SetFocusMagnet(magnet bool) {
	w.focusMagnet = magnet
}

// HasFocus reports whether the widget has keyboard focus.
func (w *WidgetBase) HasFocus() bool {
	return w.manager != nil && w.manager.Focus() == w.self
}

// RequestFocus moves keyboard focus to this widget. Focus change messages
// are queued; callers that need them processed immediately follow up with
// Manager.DispatchQueued.
func (w *WidgetBase) RequestFocus() {
	if w.manager != nil && w.focusStop {
		w.manager.SetFocus(w.self)
	}
}

// CaptureMouse acquires the exclusive pointer capture for this widget.
func (w *WidgetBase) CaptureMouse() {
	if w.manager != nil {
		w.manager.CaptureMouse(w.self)
	}
}

// ReleaseMouse releases the pointer capture if this widget holds it.
func (w *WidgetBase) ReleaseMouse() {
	if w.manager != nil {
		w.manager.ReleaseMouse(w.self)
	}
}

// HasCapture reports whether this widget holds the pointer capture.
func (w *WidgetBase) HasCapture() bool {
	return w.manager != nil && w.manager.HasCapture(w.self)
}

// HasMouseOver reports whether the pointer is currently over this widget.
func (w *WidgetBase) HasMouseOver() bool {
	return w.manager != nil && w.manager.HasMouseOver(w.self)
}

// Invalidate requests a repaint of this widget.
func (w *WidgetBase) Invalidate() {
	if w.manager != nil && !w.disposed {
		w.manager.requestRepaint(w.self)
	}
}

// Disposed reports whether Dispose has run.
func (w *WidgetBase) Disposed() bool {
	return w.disposed
}

// Dispose releases the widget and its subtree. Widgets owning external
// resources implement Disposer to release them; disposing twice is a no-op.
func (w *WidgetBase) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	for _, c := range w.children {
		c.Base().Dispose()
	}
	if d, ok := w.self.(Disposer); ok {
		d.OnDispose()
	}
	if w.manager != nil {
		w.manager.dropReferences(w.self)
		w.manager = nil
	}
}

// ProcessMessage is the default handling: nothing is consumed.
func (w *WidgetBase) ProcessMessage(msg events.Message) bool {
	return false
}

// Paint is the default painting: nothing is drawn.
func (w *WidgetBase) Paint(pc *PaintContext) {}

// PreferredSize is the default sizing: the text box alone.
func (w *WidgetBase) PreferredSize() graphics.Size {
	return graphics.MeasureText(graphics.DefaultFace(), w.label)
}
