package widgets

import "github.com/go-ember/ember/pkg/ui"

// CheckBox is a toggle widget: each completed activation flips its selection.
type CheckBox struct {
	ButtonBase
}

// NewCheckBox creates a checkbox with the given text.
func NewCheckBox(text string) *CheckBox {
	return NewCheckBoxStyled(text, Toggle)
}

// NewCheckBoxStyled creates a checkbox drawn with an alternate paint kind.
// The behavior stays toggle regardless of how the widget is painted.
func NewCheckBoxStyled(text string, paint Kind) *CheckBox {
	c := &CheckBox{}
	c.init(c, text, Toggle, paint)
	c.SetAlign(ui.AlignLeft | ui.AlignMiddle)
	return c
}
