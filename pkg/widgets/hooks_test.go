package widgets

import (
	"testing"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
	embertest "github.com/go-ember/ember/pkg/testing"
	"github.com/go-ember/ember/pkg/ui"
)

// failingRadio overrides OnSelect with a hook that fails on its first run,
// the way a buggy application override would.
type failingRadio struct {
	RadioButton

	armed bool
}

func newFailingRadio(text string, group int) *failingRadio {
	r := &failingRadio{armed: true}
	r.group = group
	r.init(r, text, Radio, Radio)
	r.SetAlign(ui.AlignLeft | ui.AlignMiddle)
	return r
}

func (r *failingRadio) OnSelect() {
	if r.armed {
		r.armed = false
		panic("listener failure")
	}
	r.RadioButton.OnSelect()
}

// discardHandler swallows reported errors so intentional failures do not
// clutter test output.
type discardHandler struct {
	panics int
}

func (h *discardHandler) HandleError(err *errors.Error)      {}
func (h *discardHandler) HandlePanic(err *errors.PanicError) { h.panics++ }

func TestSelectHookFailureReleasesGuard(t *testing.T) {
	handler := &discardHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	tester := embertest.NewWidgetTesterWithT(t)
	root := ui.NewPanel()
	root.SetBounds(graphics.RectFromLTWH(0, 0, 300, 200))
	bad := newFailingRadio("Bad", 1)
	bad.SetBounds(graphics.RectFromLTWH(10, 10, 100, 20))
	good := NewRadioButton("Good", 1)
	good.SetBounds(graphics.RectFromLTWH(10, 40, 100, 20))
	root.AddChild(bad)
	root.AddChild(good)
	tester.Mount(root)

	// The first press runs the failing hook inside the suppression scope;
	// the manager recovers the failure.
	tester.Tap(bad)

	if handler.panics != 1 {
		t.Fatalf("expected one recovered failure, got %d", handler.panics)
	}
	if bad.SelectHooksSuppressed() {
		t.Fatal("the suppression scope must be released on the failure path")
	}
	if good.SelectHooksSuppressed() {
		t.Fatal("unrelated widgets must be unaffected")
	}

	// Exclusivity must still hold for every later selection.
	tester.Tap(good)
	if !good.Selected() || bad.Selected() {
		t.Error("group exclusivity must survive a failed select hook")
	}

	bad.SetSelected(false)
	bad.SetSelected(true)
	if !bad.Selected() || good.Selected() {
		t.Error("the recovered widget must enforce exclusivity again")
	}
}

func TestPointerMoveGuardScopeIsBalanced(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	check := NewCheckBox("Sound")
	check.SetBounds(graphics.RectFromLTWH(10, 10, 120, 24))
	tester.Mount(check)

	tester.Press(check)
	tester.MoveTo(embertest.Outside(check))
	tester.MoveTo(embertest.Center(check))

	if check.SelectHooksSuppressed() {
		t.Error("every move must leave the suppression scope released")
	}

	tester.ReleaseAt(embertest.Center(check))
	if check.SelectHooksSuppressed() {
		t.Error("the gesture must end with the scope released")
	}
}
