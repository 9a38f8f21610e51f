package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// defaultFace is used whenever no explicit font face is configured.
var defaultFace font.Face = basicfont.Face7x13

// DefaultFace returns the face used for widget text when no other face has
// been configured.
func DefaultFace() font.Face {
	return defaultFace
}

// SetDefaultFace replaces the face used for widget text. Passing nil restores
// the built-in face.
func SetDefaultFace(face font.Face) {
	if face == nil {
		face = basicfont.Face7x13
	}
	defaultFace = face
}

// MeasureText returns the pixel box occupied by a single line of text.
func MeasureText(face font.Face, s string) Size {
	if s == "" {
		return Size{}
	}
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	return Size{
		Width:  fixedToFloat(adv),
		Height: fixedToFloat(m.Height),
	}
}

// FaceAscent returns the ascent of the face in pixels. Useful for positioning
// a baseline from a text box's top edge.
func FaceAscent(face font.Face) float64 {
	return fixedToFloat(face.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// StripMnemonic removes the '&' mnemonic marker from a label and returns the
// cleaned label together with the mnemonic rune (lowercased), if any. A
// doubled "&&" produces a literal '&' and designates no mnemonic.
func StripMnemonic(label string) (string, rune) {
	if !strings.ContainsRune(label, '&') {
		return label, 0
	}
	var sb strings.Builder
	var mnemonic rune
	marker := false
	for _, r := range label {
		if marker {
			marker = false
			if r != '&' && mnemonic == 0 {
				mnemonic = lowerRune(r)
			}
			sb.WriteRune(r)
			continue
		}
		if r == '&' {
			marker = true
			continue
		}
		sb.WriteRune(r)
	}
	// A trailing lone marker is dropped.
	return sb.String(), mnemonic
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
