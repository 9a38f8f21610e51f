package widgets

import "github.com/go-ember/ember/pkg/ui"

// GroupMember is the radio-membership capability view. The exclusivity pass
// queries it on every widget in the tree instead of checking concrete types,
// so any widget can participate in a radio group by implementing it.
type GroupMember interface {
	// RadioGroup returns the mutual-exclusion group identifier.
	RadioGroup() int
	// DeselectFromGroup forces the widget's selection off. Called by the
	// exclusivity pass; must be idempotent.
	DeselectFromGroup()
}

// RadioButton is a select-only widget belonging to a mutual-exclusion group.
// Selecting it deselects every other group member in its containing tree;
// membership is structural (tree position plus matching group id at the
// moment exclusivity is enforced), with no standing registry.
type RadioButton struct {
	ButtonBase

	group int
}

// NewRadioButton creates a radio button with the given text and group id.
func NewRadioButton(text string, group int) *RadioButton {
	return NewRadioButtonStyled(text, group, Radio)
}

// NewRadioButtonStyled creates a radio button drawn with an alternate paint
// kind. The behavior stays radio regardless of how the widget is painted.
func NewRadioButtonStyled(text string, group int, paint Kind) *RadioButton {
	r := &RadioButton{group: group}
	r.init(r, text, Radio, paint)
	r.SetAlign(ui.AlignLeft | ui.AlignMiddle)
	return r
}

// RadioGroup returns the widget's mutual-exclusion group identifier.
func (r *RadioButton) RadioGroup() int {
	return r.group
}

// SetRadioGroup moves the widget to another group. Exclusivity in the new
// group is enforced on the next selection, not retroactively.
func (r *RadioButton) SetRadioGroup(group int) {
	r.group = group
}

// DeselectFromGroup implements GroupMember.
func (r *RadioButton) DeselectFromGroup() {
	r.SetSelected(false)
}

// OnSelect enforces group exclusivity. While a cascade is already in
// progress the hook short-circuits, so deselecting siblings cannot recurse
// into a second tree walk.
func (r *RadioButton) OnSelect() {
	r.ButtonBase.OnSelect()

	if r.SelectHooksSuppressed() {
		return
	}
	if r.Behavior() != Radio {
		return
	}

	r.deselectGroup()

	release := r.suppressSelectHooks()
	defer release()
	r.SetSelected(true)
}

// deselectGroup walks the containing tree breadth first and forces every
// other member of this widget's group off. Traversal order is not
// significant: deselects are idempotent and independent. Detached widgets
// (no containing root) have no group to enforce.
func (r *RadioButton) deselectGroup() {
	root := r.Root()
	if root == nil {
		return
	}

	queue := []ui.Widget{root}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		if member, ok := w.(GroupMember); ok &&
			member.RadioGroup() == r.group && w.Base() != r.Base() {
			member.DeselectFromGroup()
		}

		queue = append(queue, w.Base().Children()...)
	}
}
