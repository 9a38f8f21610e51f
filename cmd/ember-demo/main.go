// Command ember-demo opens an SDL window with a small form of Ember widgets:
// a momentary button, checkboxes, and a radio group. It doubles as the
// reference wiring of an SDL backend: poll events, translate them into
// messages, drain the queue, paint.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/ui"
	"github.com/go-ember/ember/pkg/widgets"
)

const (
	windowWidth  = 480
	windowHeight = 320
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return platformError("sdl.Init", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("ember demo",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return platformError("sdl.CreateWindow", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return platformError("sdl.CreateRenderer", err)
	}
	defer renderer.Destroy()

	data, err := theme.LoadOptional("theme.yaml")
	if err != nil {
		return err
	}

	mgr := ui.NewManager()
	mgr.SetTheme(&theme.BasicTheme{Data: data})
	mgr.SetRoot(buildDemoTree())

	canvas := newSDLCanvas(renderer)

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if quit := feed(mgr, ev); quit {
				return nil
			}
		}
		mgr.DispatchQueued()

		renderer.SetDrawColor(0xF5, 0xF5, 0xF5, 0xFF)
		renderer.Clear()
		mgr.PaintAll(canvas)
		renderer.Present()
		sdl.Delay(16)
	}
}

func platformError(op string, err error) error {
	return &errors.Error{Op: op, Kind: errors.KindPlatform, Err: err}
}

func buildDemoTree() ui.Widget {
	root := ui.NewPanel()
	root.SetBounds(graphics.RectFromLTWH(0, 0, windowWidth, windowHeight))

	ok := widgets.NewButton("&Ok")
	ok.SetBounds(graphics.RectFromLTWH(24, 24, 120, 36))
	ok.SetFocusMagnet(true)
	ok.Click.Connect(func(ev *widgets.ClickEvent) {
		fmt.Println("ok clicked")
	})

	cancel := widgets.NewButton("&Cancel")
	cancel.SetBounds(graphics.RectFromLTWH(160, 24, 120, 36))
	cancel.Click.Connect(func(ev *widgets.ClickEvent) {
		fmt.Println("cancel clicked")
	})

	sound := widgets.NewCheckBox("&Sound")
	sound.SetBounds(graphics.RectFromLTWH(24, 84, 180, 24))

	fullscreen := widgets.NewCheckBox("&Fullscreen")
	fullscreen.SetBounds(graphics.RectFromLTWH(24, 116, 180, 24))
	fullscreen.SetEnabled(false)

	const sizeGroup = 1
	small := widgets.NewRadioButton("S&mall", sizeGroup)
	small.SetBounds(graphics.RectFromLTWH(24, 164, 180, 24))
	medium := widgets.NewRadioButton("M&edium", sizeGroup)
	medium.SetBounds(graphics.RectFromLTWH(24, 196, 180, 24))
	large := widgets.NewRadioButton("&Large", sizeGroup)
	large.SetBounds(graphics.RectFromLTWH(24, 228, 180, 24))
	medium.SetSelected(true)

	for _, w := range []ui.Widget{ok, cancel, sound, fullscreen, small, medium, large} {
		root.AddChild(w)
	}
	return root
}
