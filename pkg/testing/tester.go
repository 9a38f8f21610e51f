package testing

import (
	"testing"

	"github.com/go-ember/ember/pkg/events"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/ui"
)

// WidgetTester drives a widget tree through the same manager and dispatch
// paths a real backend uses, with synthetic input and a recording canvas.
type WidgetTester struct {
	mgr    *ui.Manager
	canvas *RecordingCanvas
}

// NewWidgetTester creates a tester with a fresh manager. Call Cleanup when
// done, or use NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		mgr:    ui.NewManager(),
		canvas: &RecordingCanvas{},
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the mounted tree.
func (t *WidgetTester) Cleanup() {
	if root := t.mgr.Root(); root != nil {
		root.Base().Dispose()
	}
}

// Manager returns the tester's manager.
func (t *WidgetTester) Manager() *ui.Manager {
	return t.mgr
}

// Mount installs root as the managed tree.
func (t *WidgetTester) Mount(root ui.Widget) {
	t.mgr.SetRoot(root)
}

// PressAt feeds a left-button press at pos.
func (t *WidgetTester) PressAt(pos graphics.Offset) bool {
	return t.mgr.PointerDown(pos, events.MouseButtonLeft)
}

// MoveTo feeds a pointer move to pos.
func (t *WidgetTester) MoveTo(pos graphics.Offset) bool {
	return t.mgr.PointerMove(pos)
}

// ReleaseAt feeds a left-button release at pos.
func (t *WidgetTester) ReleaseAt(pos graphics.Offset) bool {
	return t.mgr.PointerUp(pos, events.MouseButtonLeft)
}

// Press feeds a press at the center of w.
func (t *WidgetTester) Press(w ui.Widget) bool {
	return t.PressAt(Center(w))
}

// Tap feeds a press and release at the center of w.
func (t *WidgetTester) Tap(w ui.Widget) {
	pos := Center(w)
	t.PressAt(pos)
	t.ReleaseAt(pos)
}

// KeyDown feeds a key press.
func (t *WidgetTester) KeyDown(name events.Name, mods events.Modifiers) bool {
	return t.mgr.KeyDown(name, mods)
}

// KeyUp feeds a key release.
func (t *WidgetTester) KeyUp(name events.Name, mods events.Modifiers) bool {
	return t.mgr.KeyUp(name, mods)
}

// TypeKey feeds a key press and release.
func (t *WidgetTester) TypeKey(name events.Name, mods events.Modifiers) {
	t.KeyDown(name, mods)
	t.KeyUp(name, mods)
}

// Drain delivers every queued message.
func (t *WidgetTester) Drain() {
	t.mgr.DispatchQueued()
}

// Paint paints the tree into a fresh recording and returns it.
func (t *WidgetTester) Paint() *RecordingCanvas {
	t.canvas.Reset()
	t.mgr.PaintAll(t.canvas)
	return t.canvas
}

// RepaintRequested reports whether w has a pending repaint request.
func (t *WidgetTester) RepaintRequested(w ui.Widget) bool {
	for _, r := range t.mgr.PendingRepaints() {
		if r == w {
			return true
		}
	}
	return false
}

// Center returns the center of w's bounds.
func Center(w ui.Widget) graphics.Offset {
	return w.Base().Bounds().Center()
}

// Outside returns a point guaranteed to lie outside w's bounds.
func Outside(w ui.Widget) graphics.Offset {
	b := w.Base().Bounds()
	return graphics.Offset{X: b.Right + 50, Y: b.Bottom + 50}
}
