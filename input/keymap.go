// Package input translates terminal key events into navigation commands.
package input

import (
	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/termbrot"
)

type Kind int

const (
	KindNone Kind = iota
	KindCommand
	KindPalette
	KindQuit
)

// Binding is what a key press asks the viewer to do
type Binding struct {
	Kind    Kind
	Command mandel.Command

	// Palette is the 0-based palette slot for KindPalette
	Palette int
}

func command(a mandel.Action) Binding {
	return Binding{Kind: KindCommand, Command: mandel.Command{Action: a}}
}

var runeBindings = map[rune]mandel.Action{
	'w': mandel.PanUp, 'k': mandel.PanUp,
	's': mandel.PanDown, 'j': mandel.PanDown,
	'a': mandel.PanLeft, 'h': mandel.PanLeft,
	'd': mandel.PanRight, 'l': mandel.PanRight,
	'W': mandel.PanUpSlow, 'K': mandel.PanUpSlow,
	'S': mandel.PanDownSlow, 'J': mandel.PanDownSlow,
	'A': mandel.PanLeftSlow, 'H': mandel.PanLeftSlow,
	'D': mandel.PanRightSlow, 'L': mandel.PanRightSlow,

	']': mandel.ZoomIn,
	'[': mandel.ZoomOut,
	'}': mandel.ZoomInDeep,
	'{': mandel.ZoomOutDeep,

	'*': mandel.ExponentUp,
	'/': mandel.ExponentDown,

	'.': mandel.IterationsUp,
	',': mandel.IterationsDown,
	'>': mandel.IterationsUpMore,
	'<': mandel.IterationsDownMore,
}

type arrow struct {
	normal, slow, ctrl mandel.Action
}

var arrows = map[tcell.Key]arrow{
	tcell.KeyUp:    {mandel.PanUp, mandel.PanUpSlow, mandel.ExponentUp},
	tcell.KeyDown:  {mandel.PanDown, mandel.PanDownSlow, mandel.ExponentDown},
	tcell.KeyLeft:  {mandel.PanLeft, mandel.PanLeftSlow, ""},
	tcell.KeyRight: {mandel.PanRight, mandel.PanRightSlow, ""},
}

// Lookup maps a key press to its binding
func Lookup(key tcell.Key, r rune, mod tcell.ModMask) Binding {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Binding{Kind: KindQuit}
	case tcell.KeyCtrlR:
		return command(mandel.Reset)
	case tcell.KeyHome:
		return command(mandel.Origin)
	case tcell.KeyPgUp:
		if mod&tcell.ModCtrl != 0 {
			return command(mandel.ZoomInDeep)
		}
		return command(mandel.ZoomIn)
	case tcell.KeyPgDn:
		if mod&tcell.ModCtrl != 0 {
			return command(mandel.ZoomOutDeep)
		}
		return command(mandel.ZoomOut)
	case tcell.KeyRune:
		return lookupRune(r, mod)
	}

	if a, ok := arrows[key]; ok {
		switch {
		case mod&tcell.ModCtrl != 0:
			if a.ctrl == "" {
				return Binding{}
			}
			return command(a.ctrl)
		case mod&tcell.ModShift != 0:
			return command(a.slow)
		default:
			return command(a.normal)
		}
	}
	return Binding{}
}

func lookupRune(r rune, mod tcell.ModMask) Binding {
	if mod&tcell.ModCtrl != 0 {
		if r == 'r' || r == 'R' {
			return command(mandel.Reset)
		}
		return Binding{}
	}
	if r >= '1' && r <= '9' {
		return Binding{Kind: KindPalette, Palette: int(r - '1')}
	}
	if a, ok := runeBindings[r]; ok {
		return command(a)
	}
	return Binding{}
}

// FromEvent maps a tcell key event
func FromEvent(ev *tcell.EventKey) Binding {
	return Lookup(ev.Key(), ev.Rune(), ev.Modifiers())
}
