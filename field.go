package mandel

import "time"

// Field is the escape result of every cell of a grid. It is never modified after being computed.
type Field struct {
	width, height int
	cells         []EscapeResult
}

// computeField evaluates every cell of the view
func computeField(v ViewState) *Field {
	f := &Field{
		width:  v.Width,
		height: v.Height,
		cells:  make([]EscapeResult, v.Width*v.Height),
	}
	for row := range v.Height {
		for col := range v.Width {
			c := CellToPoint(v, Cell{Col: col, Row: row})
			f.cells[row*v.Width+col] = Escape(c, v.Exponent, v.MaxIterations)
		}
	}
	return f
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// At returns the result for a cell; the cell must lie on the grid
func (f *Field) At(c Cell) EscapeResult {
	return f.cells[c.Row*f.width+c.Col]
}

// ChangeReport is handed to the renderer after every compute, cached or not.
// A cache hit reports zero Elapsed.
type ChangeReport struct {
	Field   *Field
	View    ViewState
	Elapsed time.Duration

	// Clamped is set when the command leading to this report could not be applied in full
	Clamped bool
}
