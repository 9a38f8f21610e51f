package theme

import "github.com/go-ember/ember/pkg/graphics"

// ThemeData holds the colors and metrics consumed by BasicTheme.
type ThemeData struct {
	// Face is the widget background color.
	Face graphics.Color
	// FaceSelected is the background while pressed/selected.
	FaceSelected graphics.Color
	// FaceDisabled is the background while disabled.
	FaceDisabled graphics.Color
	// Mark is the color of the check mark / radio dot.
	Mark graphics.Color
	// Text is the label color.
	Text graphics.Color
	// TextSelected is the label color while pressed/selected.
	TextSelected graphics.Color
	// TextDisabled is the label color while disabled.
	TextDisabled graphics.Color
	// Outline is the border color.
	Outline graphics.Color
	// Focus is the border color while focused.
	Focus graphics.Color

	// Border is the insets added around a widget's content box.
	Border graphics.EdgeInsets
	// BoxSize is the edge length of the check/radio glyph box.
	BoxSize float64
}

// DefaultData returns the built-in light theme data.
func DefaultData() ThemeData {
	return ThemeData{
		Face:         graphics.RGB(0xE8, 0xE8, 0xE8),
		FaceSelected: graphics.RGB(0xC0, 0xD4, 0xF0),
		FaceDisabled: graphics.RGB(0xF2, 0xF2, 0xF2),
		Mark:         graphics.RGB(0x20, 0x5C, 0xC5),
		Text:         graphics.ColorBlack,
		TextSelected: graphics.ColorBlack,
		TextDisabled: graphics.RGB(0x9A, 0x9A, 0x9A),
		Outline:      graphics.RGB(0x70, 0x70, 0x70),
		Focus:        graphics.RGB(0x20, 0x5C, 0xC5),
		Border:       graphics.EdgeInsetsAll(4),
		BoxSize:      13,
	}
}
