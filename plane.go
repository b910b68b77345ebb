package mandel

import "math"

const (
	// ReferenceHalfHeight is the imaginary span above and below the center at zoom 1
	ReferenceHalfHeight = 1.25

	// AspectCorrection scales the horizontal step; a terminal glyph is about half as wide as tall
	AspectCorrection = 0.5

	// PanDivisions is the number of normal pan steps across the visible span
	PanDivisions = 5

	// SlowPanFraction is the share of a normal pan step used by slow pans
	SlowPanFraction = 0.1
)

// Cell is a grid coordinate, row 0 at the top
type Cell struct {
	Col, Row int
}

// Axis selects a plane axis
type Axis int

const (
	RealAxis Axis = iota
	ImagAxis
)

// CellSteps returns the plane size of one cell, horizontally and vertically
func CellSteps(v ViewState) (horizontal, vertical float64) {
	vertical = (2 * ReferenceHalfHeight / v.Zoom) / float64(v.Height)
	horizontal = vertical * AspectCorrection
	return horizontal, vertical
}

// CellToPoint returns the plane coordinate at the center of the cell.
// Rows grow downwards while the imaginary axis grows upwards.
func CellToPoint(v ViewState, c Cell) complex128 {
	hs, vs := CellSteps(v)
	re := v.CenterReal + (float64(c.Col)+0.5-float64(v.Width)/2)*hs
	im := v.CenterImag + (float64(v.Height)/2-float64(c.Row)-0.5)*vs
	return complex(re, im)
}

// PointToCell returns the cell containing the plane coordinate, or false when it is off the grid
func PointToCell(v ViewState, p complex128) (Cell, bool) {
	hs, vs := CellSteps(v)
	col := math.Floor((real(p)-v.CenterReal)/hs + float64(v.Width)/2)
	row := math.Floor(float64(v.Height)/2 - (imag(p)-v.CenterImag)/vs)
	if col < 0 || row < 0 || col >= float64(v.Width) || row >= float64(v.Height) {
		return Cell{}, false
	}
	return Cell{Col: int(col), Row: int(row)}, true
}

// PlaneDeltaPerStep is the plane distance of one pan step along the axis
func PlaneDeltaPerStep(v ViewState, axis Axis, slow bool) float64 {
	hs, vs := CellSteps(v)
	span := vs * float64(v.Height)
	if axis == RealAxis {
		span = hs * float64(v.Width)
	}
	step := span / PanDivisions
	if slow {
		step *= SlowPanFraction
	}
	return step
}

func isInf(f float64) bool {
	return math.IsInf(f, 0) || math.IsNaN(f)
}
