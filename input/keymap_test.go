package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/termbrot"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want mandel.Action
	}{
		{"up", tcell.KeyUp, 0, 0, mandel.PanUp},
		{"shift up", tcell.KeyUp, 0, tcell.ModShift, mandel.PanUpSlow},
		{"ctrl up", tcell.KeyUp, 0, tcell.ModCtrl, mandel.ExponentUp},
		{"ctrl down", tcell.KeyDown, 0, tcell.ModCtrl, mandel.ExponentDown},
		{"shift left", tcell.KeyLeft, 0, tcell.ModShift, mandel.PanLeftSlow},
		{"right", tcell.KeyRight, 0, 0, mandel.PanRight},
		{"vi down", tcell.KeyRune, 'j', 0, mandel.PanDown},
		{"vi down slow", tcell.KeyRune, 'J', tcell.ModShift, mandel.PanDownSlow},
		{"wasd left", tcell.KeyRune, 'a', 0, mandel.PanLeft},
		{"page up", tcell.KeyPgUp, 0, 0, mandel.ZoomIn},
		{"ctrl page up", tcell.KeyPgUp, 0, tcell.ModCtrl, mandel.ZoomInDeep},
		{"ctrl page down", tcell.KeyPgDn, 0, tcell.ModCtrl, mandel.ZoomOutDeep},
		{"bracket", tcell.KeyRune, '[', 0, mandel.ZoomOut},
		{"brace", tcell.KeyRune, '}', tcell.ModShift, mandel.ZoomInDeep},
		{"star", tcell.KeyRune, '*', 0, mandel.ExponentUp},
		{"slash", tcell.KeyRune, '/', 0, mandel.ExponentDown},
		{"comma", tcell.KeyRune, ',', 0, mandel.IterationsDown},
		{"less than", tcell.KeyRune, '<', tcell.ModShift, mandel.IterationsDownMore},
		{"full stop", tcell.KeyRune, '.', 0, mandel.IterationsUp},
		{"greater than", tcell.KeyRune, '>', 0, mandel.IterationsUpMore},
		{"home", tcell.KeyHome, 0, 0, mandel.Origin},
		{"ctrl r", tcell.KeyCtrlR, 0, tcell.ModCtrl, mandel.Reset},
		{"ctrl r as rune", tcell.KeyRune, 'r', tcell.ModCtrl, mandel.Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Lookup(tt.key, tt.r, tt.mod)
			if b.Kind != KindCommand || b.Command.Action != tt.want {
				t.Errorf("Lookup = %+v, want %s", b, tt.want)
			}
		})
	}
}

func TestLookupNonCommands(t *testing.T) {
	if b := Lookup(tcell.KeyEscape, 0, 0); b.Kind != KindQuit {
		t.Errorf("escape = %+v", b)
	}
	if b := Lookup(tcell.KeyRune, '3', 0); b.Kind != KindPalette || b.Palette != 2 {
		t.Errorf("'3' = %+v", b)
	}
	if b := Lookup(tcell.KeyRune, 'x', 0); b.Kind != KindNone {
		t.Errorf("'x' = %+v", b)
	}
	if b := Lookup(tcell.KeyLeft, 0, tcell.ModCtrl); b.Kind != KindNone {
		t.Errorf("ctrl left = %+v", b)
	}
}
