// Package events defines the input messages delivered to widgets.
//
// Messages are plain value types dispatched synchronously by the ui.Manager.
// Widgets switch on the concrete message type in their ProcessMessage method
// and report whether the message was consumed.
package events

import "github.com/go-ember/ember/pkg/graphics"

// Message is implemented by every input message type.
type Message interface {
	message()
}

// FocusEnter is delivered to a widget when it gains keyboard focus.
type FocusEnter struct{}

// FocusLeave is delivered to a widget when it loses keyboard focus.
type FocusLeave struct{}

// KeyDown is delivered when a key is pressed.
type KeyDown struct {
	// Name identifies the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
}

// KeyUp is delivered when a key is released.
type KeyUp struct {
	Name      Name
	Modifiers Modifiers
}

// MouseDown is delivered when a pointer button is pressed over a widget, or
// to the capture owner while a capture is held.
type MouseDown struct {
	Position graphics.Offset
	Button   MouseButton
}

// MouseUp is delivered when a pointer button is released.
type MouseUp struct {
	Position graphics.Offset
	Button   MouseButton
}

// MouseMove is delivered when the pointer moves.
type MouseMove struct {
	Position graphics.Offset
}

// MouseEnter is delivered when the pointer enters a widget's bounds.
type MouseEnter struct{}

// MouseLeave is delivered when the pointer leaves a widget's bounds.
type MouseLeave struct{}

func (FocusEnter) message() {}
func (FocusLeave) message() {}
func (KeyDown) message()    {}
func (KeyUp) message()      {}
func (MouseDown) message()  {}
func (MouseUp) message()    {}
func (MouseMove) message()  {}
func (MouseEnter) message() {}
func (MouseLeave) message() {}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// Modifiers is a set of modifier keys.
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option key on Apple platforms.
	ModAlt
	// ModSuper is the "logo" modifier key, often known as the windows key or
	// the command key.
	ModSuper
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// Name identifies a key. Single-rune names such as "A" identify the
// corresponding character key regardless of layer or shift state.
type Name string

const (
	NameEnter       Name = "Enter"
	NameKeypadEnter Name = "KeypadEnter"
	NameSpace       Name = "Space"
	NameEscape      Name = "Escape"
	NameTab         Name = "Tab"
)

// Rune returns the rune for single-rune key names, or 0 for named keys such
// as NameEnter.
func (n Name) Rune() rune {
	runes := []rune(string(n))
	if len(runes) != 1 {
		return 0
	}
	return runes[0]
}

// IsActivation reports whether the key is one of the Enter keys.
func (n Name) IsActivation() bool {
	return n == NameEnter || n == NameKeypadEnter
}
