package widgets

import (
	"github.com/go-ember/ember/pkg/events"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/ui"
)

// Kind selects an interaction behavior or a paint style. The two uses are
// independent: ButtonBase carries one Kind for behavior and another for
// painting.
type Kind int

const (
	// Momentary is press-and-release behavior, or flat button styling.
	Momentary Kind = iota
	// Toggle is flip-on-activation behavior, or checkbox styling.
	Toggle
	// Radio is select-only behavior with group exclusivity, or radio
	// styling.
	Radio
)

func (k Kind) String() string {
	switch k {
	case Momentary:
		return "momentary"
	case Toggle:
		return "toggle"
	case Radio:
		return "radio"
	default:
		return "Kind(?)"
	}
}

// ClickHandler is the overridable click hook. ButtonBase fires it through
// the registered self whenever a user-visible activation completes, so a
// widget embedding ButtonBase can override OnClick to observe or replace
// click handling.
type ClickHandler interface {
	OnClick(ev *ClickEvent)
}

// ButtonBase is the interaction state machine shared by Button, CheckBox,
// and RadioButton. It consumes input messages, mutates selection and press
// state, emits the click signal, and requests repaints; painting itself is
// delegated to the theme entry point selected by the paint kind.
type ButtonBase struct {
	ui.WidgetBase

	behavior Kind
	paint    Kind

	// pressedSnapshot is the selection captured when the pointer capture
	// began. Only meaningful while the capture is held.
	pressedSnapshot bool

	// suppressHooks is true while a selection-change cascade is in
	// progress; see suppressSelectHooks.
	suppressHooks bool

	icon ButtonIcon

	// Click is fired once per completed activation.
	Click ClickSignal
}

// init wires the base for a concrete widget. behavior and paint are fixed
// for the widget's lifetime.
func (b *ButtonBase) init(self ui.Widget, text string, behavior, paint Kind) {
	b.SetSelf(self)
	b.behavior = behavior
	b.paint = paint
	b.SetText(text)
	b.SetAlign(ui.AlignCenter | ui.AlignMiddle)
	b.SetFocusStop(true)
}

// Behavior returns the widget's behavior kind.
func (b *ButtonBase) Behavior() Kind {
	return b.behavior
}

// PaintKind returns the widget's paint kind.
func (b *ButtonBase) PaintKind() Kind {
	return b.paint
}

// OnSelect is the default selection hook: nothing. RadioButton overrides it
// to enforce group exclusivity.
func (b *ButtonBase) OnSelect() {}

// OnClick fires the click signal. Embedding widgets may override it.
func (b *ButtonBase) OnClick(ev *ClickEvent) {
	b.Click.Emit(ev)
}

// suppressSelectHooks opens a scope in which selection changes do not
// cascade (RadioButton.OnSelect short-circuits). The returned release must
// run on every exit path; callers defer it immediately.
func (b *ButtonBase) suppressSelectHooks() (release func()) {
	prev := b.suppressHooks
	b.suppressHooks = true
	return func() { b.suppressHooks = prev }
}

// SelectHooksSuppressed reports whether a selection cascade is already in
// progress.
func (b *ButtonBase) SelectHooksSuppressed() bool {
	return b.suppressHooks
}

// ProcessMessage implements the interaction state machine. Transitions are
// gated on Enabled; a disabled widget mutates nothing and consumes nothing.
func (b *ButtonBase) ProcessMessage(msg events.Message) bool {
	switch msg := msg.(type) {

	case events.FocusEnter, events.FocusLeave:
		if b.Enabled() {
			// A momentary button deselects on any focus change: the user
			// may have pressed the key but moved focus before releasing.
			if b.behavior == Momentary && b.Selected() {
				b.SetSelected(false)
			}
			b.Invalidate()
		}

	case events.KeyDown:
		if b.Enabled() && b.handleKeyDown(msg) {
			return true
		}

	case events.KeyUp:
		if b.Enabled() && b.behavior == Momentary && b.Selected() {
			b.completeActivation()
			return true
		}

	case events.MouseDown:
		if !b.Enabled() {
			break
		}
		switch b.behavior {
		case Momentary:
			b.SetSelected(true)
			b.beginPress()
		case Toggle:
			b.SetSelected(!b.Selected())
			b.beginPress()
		case Radio:
			if !b.Selected() {
				release := b.suppressSelectHooks()
				defer release()
				b.SetSelected(true)
				b.beginPress()
			}
		}
		return true

	case events.MouseUp:
		if b.HasCapture() {
			b.ReleaseMouse()
			if b.HasMouseOver() {
				switch b.behavior {
				case Momentary:
					b.completeActivation()
				case Toggle:
					b.emitClick()
					b.Invalidate()
				case Radio:
					// Force the select hook to re-fire even though the
					// widget is already selected, so group exclusivity is
					// re-affirmed deterministically at release time.
					b.SetSelected(false)
					b.SetSelected(true)
					b.emitClick()
				}
			}
			return true
		}

	case events.MouseMove:
		if b.Enabled() && b.HasCapture() {
			over := b.HasMouseOver()
			release := b.suppressSelectHooks()
			defer release()
			// Restore consistency with the press snapshot: over the widget
			// the selection matches the snapshot, off the widget it shows
			// the abandoned state. Holds however many times the pointer
			// crosses the boundary.
			if (over && b.Selected() != b.pressedSnapshot) ||
				(!over && b.Selected() == b.pressedSnapshot) {
				if over {
					b.SetSelected(b.pressedSnapshot)
				} else {
					b.SetSelected(!b.pressedSnapshot)
				}
			}
		}

	case events.MouseEnter, events.MouseLeave:
		if b.Enabled() {
			b.Invalidate()
		}
	}

	return b.WidgetBase.ProcessMessage(msg)
}

// beginPress snapshots the selection and acquires the pointer capture.
func (b *ButtonBase) beginPress() {
	b.pressedSnapshot = b.Selected()
	b.CaptureMouse()
}

func (b *ButtonBase) handleKeyDown(msg events.KeyDown) bool {
	if b.behavior == Momentary {
		// Focused and pressing enter or space.
		if b.HasFocus() && (msg.Name.IsActivation() || msg.Name == events.NameSpace) {
			b.SetSelected(true)
			return true
		}
		// Alt + the widget's mnemonic, focus not required.
		if msg.Modifiers.Contain(events.ModAlt) && b.matchesMnemonic(msg.Name) {
			b.SetSelected(true)
			return true
		}
		// A focus magnet catches Enter from anywhere in the tree.
		if b.IsFocusMagnet() && msg.Name.IsActivation() {
			if m := b.Manager(); m != nil {
				m.SetFocus(b.Self())
				// Drain the focus movement now: the previously focused
				// widget must process its FocusLeave (and this widget its
				// FocusEnter) before the press lands. Same-thread,
				// bounded, not asynchronous scheduling.
				m.DispatchQueued()
			}
			b.SetSelected(true)
			return true
		}
		return false
	}

	// Toggle / Radio: space while focused, or Alt+mnemonic from anywhere.
	if (b.HasFocus() && msg.Name == events.NameSpace) ||
		(msg.Modifiers.Contain(events.ModAlt) && b.matchesMnemonic(msg.Name)) {
		switch b.behavior {
		case Toggle:
			b.SetSelected(!b.Selected())
			b.Invalidate()
		case Radio:
			if !b.Selected() {
				b.SetSelected(true)
			}
		}
		return true
	}
	return false
}

func (b *ButtonBase) matchesMnemonic(name events.Name) bool {
	if b.Mnemonic() == 0 {
		return false
	}
	r := name.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r != 0 && r == b.Mnemonic()
}

// completeActivation finishes a momentary activation: deselect first, then
// fire the click.
func (b *ButtonBase) completeActivation() {
	b.SetSelected(false)
	b.emitClick()
}

// emitClick fires the overridable OnClick hook through the registered self.
func (b *ButtonBase) emitClick() {
	ev := &ClickEvent{Widget: b.Self()}
	if h, ok := b.Self().(ClickHandler); ok {
		h.OnClick(ev)
		return
	}
	b.OnClick(ev)
}

// Paint dispatches to the theme entry point selected by the paint kind. The
// paint kind never influences state transitions, and the behavior kind never
// influences which routine runs here.
func (b *ButtonBase) Paint(pc *ui.PaintContext) {
	ev := &theme.PaintEvent{Canvas: pc.Canvas, Widget: b}
	if b.icon != nil {
		ev.Icon = b.icon
	}
	th := b.currentTheme()
	switch b.paint {
	case Momentary:
		th.PaintButton(ev)
	case Toggle:
		th.PaintCheckBox(ev)
	case Radio:
		th.PaintRadioButton(ev)
	}
}

// PreferredSize is the text box, plus the icon box if an icon is installed,
// plus the theme's border insets.
func (b *ButtonBase) PreferredSize() graphics.Size {
	box := graphics.MeasureText(graphics.DefaultFace(), b.Label())
	if b.icon != nil {
		iw, ih := b.icon.IconWidth(), b.icon.IconHeight()
		if b.icon.IconAlign()&(ui.AlignTop|ui.AlignBottom) != 0 {
			box.Height += ih
			box.Width = max(box.Width, iw)
		} else {
			box.Width += iw
			box.Height = max(box.Height, ih)
		}
	}
	in := b.currentTheme().BorderInsets()
	return graphics.Size{
		Width:  box.Width + in.Horizontal(),
		Height: box.Height + in.Vertical(),
	}
}

func (b *ButtonBase) currentTheme() theme.Theme {
	if m := b.Manager(); m != nil && m.Theme() != nil {
		return m.Theme()
	}
	return theme.Default()
}

// Button is a momentary push button.
type Button struct {
	ButtonBase
}

// NewButton creates a momentary button with the given text. A '&' in the
// text marks the mnemonic letter.
func NewButton(text string) *Button {
	b := &Button{}
	b.init(b, text, Momentary, Momentary)
	return b
}
