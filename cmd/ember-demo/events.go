package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-ember/ember/pkg/events"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/ui"
)

// feed translates one SDL event into manager input. Returns true on quit.
func feed(mgr *ui.Manager, ev sdl.Event) (quit bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.KeyboardEvent:
		name, ok := keyName(ev.Keysym)
		if !ok {
			return false
		}
		mods := keyModifiers(ev.Keysym.Mod)
		if ev.Type == sdl.KEYDOWN {
			mgr.KeyDown(name, mods)
		} else {
			mgr.KeyUp(name, mods)
		}

	case *sdl.MouseButtonEvent:
		pos := graphics.Offset{X: float64(ev.X), Y: float64(ev.Y)}
		button, ok := mouseButton(ev.Button)
		if !ok {
			return false
		}
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			mgr.PointerDown(pos, button)
		} else {
			mgr.PointerUp(pos, button)
		}

	case *sdl.MouseMotionEvent:
		mgr.PointerMove(graphics.Offset{X: float64(ev.X), Y: float64(ev.Y)})
	}
	return false
}

func keyName(sym sdl.Keysym) (events.Name, bool) {
	switch sym.Sym {
	case sdl.K_RETURN:
		return events.NameEnter, true
	case sdl.K_KP_ENTER:
		return events.NameKeypadEnter, true
	case sdl.K_SPACE:
		return events.NameSpace, true
	case sdl.K_ESCAPE:
		return events.NameEscape, true
	case sdl.K_TAB:
		return events.NameTab, true
	}
	if sym.Sym >= sdl.K_a && sym.Sym <= sdl.K_z {
		return events.Name(string(rune('A' + int(sym.Sym-sdl.K_a)))), true
	}
	return "", false
}

func keyModifiers(mod uint16) events.Modifiers {
	var mods events.Modifiers
	if mod&sdl.KMOD_CTRL != 0 {
		mods |= events.ModCtrl
	}
	if mod&sdl.KMOD_SHIFT != 0 {
		mods |= events.ModShift
	}
	if mod&sdl.KMOD_ALT != 0 {
		mods |= events.ModAlt
	}
	if mod&sdl.KMOD_GUI != 0 {
		mods |= events.ModSuper
	}
	return mods
}

func mouseButton(b uint8) (events.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return events.MouseButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return events.MouseButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return events.MouseButtonRight, true
	}
	return 0, false
}
