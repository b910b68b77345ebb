package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/termbrot"
	"github.com/marben/termbrot/input"
	"github.com/marben/termbrot/render"
)

// statusRows is the number of screen rows below the plot
const statusRows = 1

type viewer struct {
	screen tcell.Screen
	worker *mandel.Worker

	palettes []render.Palette
	palette  int

	ring func()

	last *mandel.ChangeReport
}

func newViewer(screen tcell.Screen, worker *mandel.Worker, ring func()) *viewer {
	names := render.PaletteNames()
	v := &viewer{
		screen: screen,
		worker: worker,
		ring:   ring,
	}
	for _, n := range paletteOrder(names) {
		p, _ := render.PaletteByName(n)
		v.palettes = append(v.palettes, p)
	}
	return v
}

// paletteOrder puts the default palette in slot 1
func paletteOrder(names []string) []string {
	ordered := []string{"default"}
	for _, n := range names {
		if n != "default" {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

func (v *viewer) setPalette(name string) error {
	for i, n := range paletteOrder(render.PaletteNames()) {
		if n == name {
			v.palette = i
			return nil
		}
	}
	return fmt.Errorf("unknown palette %q", name)
}

// gridSize is the plot area for the current screen size
func (v *viewer) gridSize() (int, int) {
	w, h := v.screen.Size()
	return max(w, 1), max(h-statusRows, 1)
}

// handle reacts to a terminal event, returning false when the viewer should quit
func (v *viewer) handle(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b := input.FromEvent(ev)
		switch b.Kind {
		case input.KindQuit:
			return false
		case input.KindPalette:
			if b.Palette < len(v.palettes) {
				v.palette = b.Palette
				v.draw()
			} else {
				v.ring()
			}
		case input.KindCommand:
			v.submit(ctx, b.Command)
		}

	case *tcell.EventResize:
		v.screen.Sync()
		w, h := v.gridSize()
		v.submit(ctx, mandel.Command{Action: mandel.Resize, Width: w, Height: h})
	}
	return true
}

func (v *viewer) submit(ctx context.Context, cmd mandel.Command) {
	if err := v.worker.Submit(ctx, cmd); err != nil {
		log.Printf("submit %s: %v", cmd.Action, err)
	}
}

// show takes a new report and redraws
func (v *viewer) show(r mandel.ChangeReport) {
	v.last = &r
	if r.Clamped {
		v.ring()
	}
	log.Printf("%s | %s", r.View, r.Elapsed)
	v.draw()
}

func (v *viewer) draw() {
	v.screen.Clear()
	if v.last != nil {
		v.drawField(*v.last)
		v.drawStatus(*v.last)
	}
	v.screen.Show()
}

func (v *viewer) drawField(r mandel.ChangeReport) {
	p := v.palettes[v.palette]
	w, h := v.screen.Size()
	f := r.Field
	for row := range min(f.Height(), h-statusRows) {
		for col := range min(f.Width(), w) {
			c := p(f.At(mandel.Cell{Col: col, Row: row}), r.View.MaxIterations)
			v.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(rgb(c)))
		}
	}
}

func (v *viewer) drawStatus(r mandel.ChangeReport) {
	w, h := v.screen.Size()
	text := statusLine(r)
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, ch := range text {
		if col >= w {
			break
		}
		v.screen.SetContent(col, h-1, ch, nil, style)
		col++
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, h-1, ' ', nil, style)
	}
}

func statusLine(r mandel.ChangeReport) string {
	return fmt.Sprintf("%s | %d multibrot | %d iterations | %.4f seconds",
		r.View.Region(), r.View.Exponent, r.View.MaxIterations, r.Elapsed.Seconds())
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// loop runs until the user quits or ctx ends
func (v *viewer) loop(ctx context.Context) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !v.handle(ctx, ev) {
				return
			}
		case r := <-v.worker.Reports():
			v.show(r)
		}
	}
}
