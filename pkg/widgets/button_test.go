package widgets_test

import (
	"testing"

	"github.com/go-ember/ember/pkg/events"
	"github.com/go-ember/ember/pkg/graphics"
	embertest "github.com/go-ember/ember/pkg/testing"
	"github.com/go-ember/ember/pkg/ui"
	"github.com/go-ember/ember/pkg/widgets"
)

func newTestPanel() *ui.Panel {
	p := ui.NewPanel()
	p.SetBounds(graphics.RectFromLTWH(0, 0, 300, 200))
	return p
}

func newTestButton(text string) *widgets.Button {
	b := widgets.NewButton(text)
	b.SetBounds(graphics.RectFromLTWH(10, 10, 100, 40))
	return b
}

func clickCounter(b *widgets.ButtonBase) *int {
	count := new(int)
	b.Click.Connect(func(ev *widgets.ClickEvent) { *count++ })
	return count
}

// --- Momentary behavior ---

func TestButton_ClickOnReleaseInside(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	tester.Tap(btn)

	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}
	if btn.Selected() {
		t.Error("momentary button must end unselected")
	}
}

func TestButton_PressedWhileHeld(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	tester.Mount(btn)

	tester.Press(btn)

	if !btn.Selected() {
		t.Error("momentary button must be selected while held")
	}
	if !btn.HasCapture() {
		t.Error("press must begin pointer capture")
	}
}

func TestButton_DragOutAbandons(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	tester.Press(btn)
	tester.MoveTo(embertest.Outside(btn))

	if btn.Selected() {
		t.Error("dragging off the widget must revert to the abandoned state")
	}

	tester.ReleaseAt(embertest.Outside(btn))

	if *clicks != 0 {
		t.Errorf("release off-widget must not click, got %d clicks", *clicks)
	}
	if btn.Selected() {
		t.Error("final state must be unselected")
	}
	if btn.HasCapture() {
		t.Error("release must end pointer capture")
	}
}

func TestButton_DragOutAndBackIn(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	tester.Press(btn)

	// Cross the boundary several times; the pressed state must track the
	// pointer every time.
	for i := 0; i < 3; i++ {
		tester.MoveTo(embertest.Outside(btn))
		if btn.Selected() {
			t.Fatalf("crossing %d: expected unselected off-widget", i)
		}
		tester.MoveTo(embertest.Center(btn))
		if !btn.Selected() {
			t.Fatalf("crossing %d: expected selected back on-widget", i)
		}
	}

	tester.ReleaseAt(embertest.Center(btn))

	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}
	if btn.Selected() {
		t.Error("momentary button must end unselected")
	}
}

func TestButton_DisabledConsumesNothing(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	btn.SetEnabled(false)
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	tester.Tap(btn)
	tester.TypeKey(events.NameSpace, 0)
	tester.TypeKey("G", events.ModAlt)

	if *clicks != 0 {
		t.Errorf("disabled button must not click, got %d", *clicks)
	}
	if btn.Selected() {
		t.Error("disabled button must not change state")
	}
	if btn.HasCapture() {
		t.Error("disabled button must not capture the pointer")
	}
}

// --- Keyboard activation ---

func TestButton_EnterWhileFocused(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	tester.Manager().SetFocus(btn)
	tester.Drain()

	tester.KeyDown(events.NameEnter, 0)
	if !btn.Selected() {
		t.Error("enter while focused must press the button")
	}

	tester.KeyUp(events.NameEnter, 0)
	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}
	if btn.Selected() {
		t.Error("momentary button must end unselected")
	}
}

func TestButton_SpaceWhileFocused(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	tester.Manager().SetFocus(btn)
	tester.Drain()
	tester.TypeKey(events.NameSpace, 0)

	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}
}

func TestButton_MnemonicWithoutFocus(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("&Go")
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(btn)

	// No focus anywhere; Alt+G must still activate.
	tester.TypeKey("G", events.ModAlt)

	if *clicks != 1 {
		t.Errorf("expected exactly one click from mnemonic, got %d", *clicks)
	}
	if btn.Selected() {
		t.Error("momentary button must end unselected")
	}
}

func TestButton_MnemonicRequiresAlt(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("&Go")
	tester.Mount(btn)

	tester.KeyDown("G", 0)

	if btn.Selected() {
		t.Error("mnemonic without the alt modifier must not press the button")
	}
}

func TestButton_FocusLossCancelsKeyPress(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	root := newTestPanel()
	btn := newTestButton("Go")
	other := widgets.NewCheckBox("Other")
	other.SetBounds(graphics.RectFromLTWH(10, 60, 100, 24))
	root.AddChild(btn)
	root.AddChild(other)
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(root)

	tester.Manager().SetFocus(btn)
	tester.Drain()
	tester.KeyDown(events.NameEnter, 0)
	if !btn.Selected() {
		t.Fatal("enter must press the focused button")
	}

	// Focus moves before the key is released.
	tester.Manager().SetFocus(other)
	tester.Drain()

	if btn.Selected() {
		t.Error("losing focus must deselect a held momentary button")
	}

	tester.KeyUp(events.NameEnter, 0)
	if *clicks != 0 {
		t.Errorf("abandoned key press must not click, got %d", *clicks)
	}
}

func TestButton_FocusMagnetCatchesEnter(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	root := newTestPanel()
	check := widgets.NewCheckBox("Other")
	check.SetBounds(graphics.RectFromLTWH(10, 60, 100, 24))
	btn := newTestButton("Default")
	btn.SetFocusMagnet(true)
	root.AddChild(check)
	root.AddChild(btn)
	clicks := clickCounter(&btn.ButtonBase)
	tester.Mount(root)

	tester.Manager().SetFocus(check)
	tester.Drain()

	tester.KeyDown(events.NameEnter, 0)

	if tester.Manager().Focus() != btn.Self() {
		t.Error("magnet must take focus on enter")
	}
	if !btn.Selected() {
		t.Error("magnet must be pressed after catching enter")
	}

	tester.KeyUp(events.NameEnter, 0)
	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}
}

// --- Toggle behavior (checkbox) ---

func newTestCheckBox(text string) *widgets.CheckBox {
	c := widgets.NewCheckBox(text)
	c.SetBounds(graphics.RectFromLTWH(10, 10, 120, 24))
	return c
}

func TestCheckBox_TapFlipsOnce(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	check := newTestCheckBox("Sound")
	clicks := clickCounter(&check.ButtonBase)
	tester.Mount(check)

	tester.Tap(check)
	if !check.Selected() {
		t.Error("first tap must select")
	}
	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}

	tester.Tap(check)
	if check.Selected() {
		t.Error("second tap must deselect")
	}
	if *clicks != 2 {
		t.Errorf("expected two clicks total, got %d", *clicks)
	}
}

func TestCheckBox_DragOutAndBackIn(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	check := newTestCheckBox("Sound")
	clicks := clickCounter(&check.ButtonBase)
	tester.Mount(check)

	tester.Press(check)
	if !check.Selected() {
		t.Fatal("press must flip the toggle immediately")
	}

	tester.MoveTo(embertest.Outside(check))
	if check.Selected() {
		t.Error("off-widget the toggle must show the abandoned state")
	}

	tester.MoveTo(embertest.Center(check))
	if !check.Selected() {
		t.Error("back on-widget the toggle must show the pressed state")
	}

	tester.ReleaseAt(embertest.Center(check))

	if !check.Selected() {
		t.Error("final state must be the single net toggle")
	}
	if *clicks != 1 {
		t.Errorf("expected exactly one click, got %d", *clicks)
	}
}

func TestCheckBox_DragOutAbandons(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	check := newTestCheckBox("Sound")
	clicks := clickCounter(&check.ButtonBase)
	tester.Mount(check)

	tester.Press(check)
	tester.MoveTo(embertest.Outside(check))
	tester.ReleaseAt(embertest.Outside(check))

	if check.Selected() {
		t.Error("abandoned press must leave the toggle unchanged")
	}
	if *clicks != 0 {
		t.Errorf("abandoned press must not click, got %d", *clicks)
	}
}

func TestCheckBox_MnemonicFlipsAndRepaints(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	check := newTestCheckBox("&Sound")
	tester.Mount(check)
	tester.Manager().TakeRepaints()

	tester.KeyDown("S", events.ModAlt)

	if !check.Selected() {
		t.Error("mnemonic must flip the checkbox without focus")
	}
	if !tester.RepaintRequested(check) {
		t.Error("mnemonic flip must request a repaint")
	}

	tester.KeyDown("S", events.ModAlt)
	if check.Selected() {
		t.Error("second mnemonic must flip back")
	}
}

func TestCheckBox_SpaceWhileFocused(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	check := newTestCheckBox("Sound")
	tester.Mount(check)

	tester.Manager().SetFocus(check)
	tester.Drain()
	tester.KeyDown(events.NameSpace, 0)

	if !check.Selected() {
		t.Error("space while focused must flip the checkbox")
	}
}

// --- Behavior/paint decoupling ---

func TestStyledVariantsKeepBehavior(t *testing.T) {
	check := widgets.NewCheckBoxStyled("A", widgets.Momentary)
	if check.Behavior() != widgets.Toggle {
		t.Error("checkbox painted as a button must still toggle")
	}
	if check.PaintKind() != widgets.Momentary {
		t.Error("paint kind must follow the requested style")
	}

	radio := widgets.NewRadioButtonStyled("B", 1, widgets.Toggle)
	if radio.Behavior() != widgets.Radio {
		t.Error("radio painted as a checkbox must still behave as radio")
	}
	if radio.PaintKind() != widgets.Toggle {
		t.Error("paint kind must follow the requested style")
	}
}

// --- Icon ownership ---

type stubIcon struct {
	releases int
	paints   int
}

func (i *stubIcon) IconAlign() ui.Align { return ui.AlignLeft | ui.AlignMiddle }
func (i *stubIcon) IconWidth() float64  { return 16 }
func (i *stubIcon) IconHeight() float64 { return 16 }
func (i *stubIcon) Release()            { i.releases++ }

func (i *stubIcon) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	i.paints++
	canvas.FillRect(bounds, graphics.ColorBlack)
}

func TestSetIcon_ReleasesPreviousExactlyOnce(t *testing.T) {
	btn := widgets.NewButton("Go")

	first := &stubIcon{}
	second := &stubIcon{}

	btn.SetIcon(first)
	btn.SetIcon(second)
	if first.releases != 1 {
		t.Errorf("replaced icon must be released exactly once, got %d", first.releases)
	}

	btn.SetIcon(nil)
	if second.releases != 1 {
		t.Errorf("cleared icon must be released exactly once, got %d", second.releases)
	}
	if btn.Icon() != nil {
		t.Error("icon slot must be empty after clearing")
	}
}

func TestDispose_ReleasesIconOnce(t *testing.T) {
	btn := widgets.NewButton("Go")
	icon := &stubIcon{}
	btn.SetIcon(icon)

	btn.Dispose()
	btn.Dispose()

	if icon.releases != 1 {
		t.Errorf("disposal must release the icon exactly once, got %d", icon.releases)
	}
}

func TestPaint_DrawsInstalledIcon(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	tester.Mount(btn)

	before := tester.Paint().Count(embertest.OpFillRect)

	icon := &stubIcon{}
	btn.SetIcon(icon)
	canvas := tester.Paint()

	if icon.paints != 1 {
		t.Errorf("the installed icon must be painted once per pass, got %d", icon.paints)
	}
	if canvas.Count(embertest.OpFillRect) != before+1 {
		t.Error("the icon's drawing must land on the canvas")
	}
	if texts := canvas.Texts(); len(texts) != 1 || texts[0] != "Go" {
		t.Errorf("the label must still be drawn, got %v", texts)
	}
}

func TestPreferredSize_IconWidensBox(t *testing.T) {
	btn := widgets.NewButton("Go")
	without := btn.PreferredSize()
	if without.Width <= 0 || without.Height <= 0 {
		t.Fatalf("preferred size must be positive, got %+v", without)
	}

	btn.SetIcon(&stubIcon{})
	with := btn.PreferredSize()
	if with.Width != without.Width+16 {
		t.Errorf("side icon must widen the box by its width: %v -> %v", without, with)
	}
}

// --- Click signal ---

func TestClickSignal_SnapshotDuringEmission(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	tester.Mount(btn)

	lateCalls := 0
	btn.Click.Connect(func(ev *widgets.ClickEvent) {
		// Connecting during emission must not deliver this click to the
		// new listener.
		btn.Click.Connect(func(ev *widgets.ClickEvent) { lateCalls++ })
	})

	tester.Tap(btn)
	if lateCalls != 0 {
		t.Errorf("listener connected mid-emission must not see the click, got %d", lateCalls)
	}

	tester.Tap(btn)
	if lateCalls != 1 {
		t.Errorf("listener must see the following click exactly once, got %d", lateCalls)
	}
}

func TestClickSignal_Disconnect(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	tester.Mount(btn)

	calls := 0
	disconnect := btn.Click.Connect(func(ev *widgets.ClickEvent) { calls++ })

	tester.Tap(btn)
	disconnect()
	disconnect() // second disconnect is a no-op
	tester.Tap(btn)

	if calls != 1 {
		t.Errorf("disconnected listener must not be called, got %d calls", calls)
	}
}

func TestClickEvent_CarriesOriginatingWidget(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)

	btn := newTestButton("Go")
	tester.Mount(btn)

	var got *widgets.ClickEvent
	btn.Click.Connect(func(ev *widgets.ClickEvent) { got = ev })

	tester.Tap(btn)
	if got == nil || got.Widget != btn.Self() {
		t.Error("click event must reference the originating widget")
	}
}
