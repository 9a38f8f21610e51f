package widgets

import (
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/ui"
)

// ButtonIcon decorates a button with an icon. The button owns its icon
// exclusively: installing a new one releases the previous owner, and
// disposing the button releases whatever it holds. The icon's size and
// alignment feed both preferred-size computation and the theme's layout;
// the theme calls Paint with the box it computed.
type ButtonIcon interface {
	// IconAlign returns where the icon sits relative to the text.
	IconAlign() ui.Align
	// IconWidth returns the icon's width in pixels.
	IconWidth() float64
	// IconHeight returns the icon's height in pixels.
	IconHeight() float64
	// Paint draws the icon into bounds.
	Paint(canvas graphics.Canvas, bounds graphics.Rect)
	// Release frees the icon's resources. Called exactly once, by the
	// owning button.
	Release()
}

// Icon returns the installed icon, or nil.
func (b *ButtonBase) Icon() ButtonIcon {
	return b.icon
}

// SetIcon installs icon, releasing any previously owned one. Passing nil
// clears the slot.
func (b *ButtonBase) SetIcon(icon ButtonIcon) {
	if b.icon != nil {
		b.icon.Release()
	}
	b.icon = icon
	b.Invalidate()
}

// OnDispose releases the owned icon. Releasing an absent icon is a no-op.
func (b *ButtonBase) OnDispose() {
	if b.icon != nil {
		b.icon.Release()
		b.icon = nil
	}
}
