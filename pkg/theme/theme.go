// Package theme provides the paint layer for Ember widgets.
//
// Widgets never paint themselves directly. A widget's paint kind selects one
// of the theme's entry points (button, checkbox, radio), which draw into the
// canvas carried by the PaintEvent. Interaction state never depends on the
// theme; the theme only reads widget state through the WidgetView.
package theme

import "github.com/go-ember/ember/pkg/graphics"

// WidgetView is the read-only view of a widget the theme paints from.
type WidgetView interface {
	// Bounds returns the widget's rectangle in surface coordinates.
	Bounds() graphics.Rect
	// Label returns the widget's text with the mnemonic marker stripped.
	Label() string
	// Mnemonic returns the widget's mnemonic rune, or 0.
	Mnemonic() rune
	// Enabled reports whether the widget accepts input.
	Enabled() bool
	// Selected reports the widget's selection (pressed/checked) state.
	Selected() bool
	// HasFocus reports whether the widget has keyboard focus.
	HasFocus() bool
	// HasMouseOver reports whether the pointer is over the widget.
	HasMouseOver() bool
}

// IconView is the paint-side view of a widget's installed icon.
type IconView interface {
	// IconAlign returns where the icon sits relative to the text.
	IconAlign() graphics.Align
	// IconWidth returns the icon's width in pixels.
	IconWidth() float64
	// IconHeight returns the icon's height in pixels.
	IconHeight() float64
	// Paint draws the icon into the box the theme computed for it.
	Paint(canvas graphics.Canvas, bounds graphics.Rect)
}

// PaintEvent carries everything a theme entry point needs to draw one widget.
type PaintEvent struct {
	Canvas graphics.Canvas
	Widget WidgetView
	// Icon is the widget's installed icon, or nil.
	Icon IconView
}

// Theme paints widgets and supplies the metrics that feed preferred-size
// computation.
type Theme interface {
	// PaintButton paints a momentary-button styled widget.
	PaintButton(ev *PaintEvent)
	// PaintCheckBox paints a checkbox styled widget.
	PaintCheckBox(ev *PaintEvent)
	// PaintRadioButton paints a radio styled widget.
	PaintRadioButton(ev *PaintEvent)

	// BorderInsets returns the insets added around a widget's content box.
	BorderInsets() graphics.EdgeInsets
	// BoxSize returns the edge length of the check/radio glyph box.
	BoxSize() float64
}

var defaultTheme Theme = &BasicTheme{Data: DefaultData()}

// Default returns the theme used when a manager has no explicit theme.
func Default() Theme {
	return defaultTheme
}

// SetDefault replaces the default theme. Passing nil restores the built-in
// BasicTheme.
func SetDefault(t Theme) {
	if t == nil {
		t = &BasicTheme{Data: DefaultData()}
	}
	defaultTheme = t
}
