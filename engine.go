package mandel

import (
	"math"
	"time"
)

// Zoom multipliers for the normal and deep zoom commands
const (
	ZoomFactor     = 1.2
	DeepZoomFactor = 2.0
)

// Engine owns the camera and the last computed field.
// It is not safe for concurrent use; see Worker.
type Engine struct {
	view ViewState

	// single entry cache, exact key match only
	cacheKey   ViewState
	cacheField *Field

	onChange func(ChangeReport)
}

type Option func(*Engine)

// WithOnChange registers a callback receiving every report the engine produces
func WithOnChange(fn func(ChangeReport)) Option {
	return func(e *Engine) {
		e.onChange = fn
	}
}

// WithMaxIterations overrides the starting iteration cap
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		e.view.MaxIterations = min(max(n, MinMaxIterations), MaxMaxIterations)
	}
}

// NewEngine creates an engine for a grid of the given size, clamped to at least 1x1
func NewEngine(width, height int, opts ...Option) *Engine {
	e := &Engine{view: DefaultView(width, height)}
	for _, o := range opts {
		o(e)
	}
	return e
}

// View returns a copy of the current camera
func (e *Engine) View() ViewState {
	return e.view
}

// Compute returns the field for the current view, from cache when the view is unchanged
func (e *Engine) Compute() ChangeReport {
	return e.compute(false)
}

func (e *Engine) compute(clamped bool) ChangeReport {
	if !e.view.valid() {
		panic("mandel: invalid view state " + e.view.String())
	}

	if e.cacheField != nil && e.cacheKey == e.view {
		return e.report(ChangeReport{Field: e.cacheField, View: e.view, Clamped: clamped})
	}

	start := time.Now()
	f := computeField(e.view)
	elapsed := time.Since(start)

	e.cacheKey = e.view
	e.cacheField = f

	return e.report(ChangeReport{Field: f, View: e.view, Elapsed: elapsed, Clamped: clamped})
}

func (e *Engine) report(r ChangeReport) ChangeReport {
	if e.onChange != nil {
		e.onChange(r)
	}
	return r
}

func (e *Engine) invalidate() {
	e.cacheField = nil
}

// Pan moves the center by one step along the direction; slow uses a fraction of the step
func (e *Engine) Pan(dir Direction, slow bool) ChangeReport {
	next := e.view
	switch dir {
	case Up:
		next.CenterImag += PlaneDeltaPerStep(e.view, ImagAxis, slow)
	case Down:
		next.CenterImag -= PlaneDeltaPerStep(e.view, ImagAxis, slow)
	case Left:
		next.CenterReal -= PlaneDeltaPerStep(e.view, RealAxis, slow)
	case Right:
		next.CenterReal += PlaneDeltaPerStep(e.view, RealAxis, slow)
	}
	if isInf(next.CenterReal) || isInf(next.CenterImag) {
		return e.compute(true)
	}
	e.view = next
	return e.Compute()
}

// Zoom multiplies (in) or divides (out) the zoom. A step that would leave the
// zoom non-finite or would not change the cell size is refused.
func (e *Engine) Zoom(in, deep bool) ChangeReport {
	factor := ZoomFactor
	if deep {
		factor = DeepZoomFactor
	}

	next := e.view
	if in {
		next.Zoom *= factor
	} else {
		next.Zoom /= factor
	}

	if !zoomUsable(e.view, next) {
		return e.compute(true)
	}
	e.view = next
	return e.Compute()
}

func zoomUsable(cur, next ViewState) bool {
	if next.Zoom <= 0 || isInf(next.Zoom) {
		return false
	}
	ch, cv := CellSteps(cur)
	nh, nv := CellSteps(next)
	if nh == 0 || nv == 0 || isInf(nh) || isInf(nv) {
		return false
	}
	return nh != ch || nv != cv
}

// SetExponent adds delta to the exponent, never going below MinExponent
func (e *Engine) SetExponent(delta int) ChangeReport {
	want, ok := addInt(e.view.Exponent, delta)
	e.view.Exponent = max(want, MinExponent)
	return e.compute(!ok || want != e.view.Exponent)
}

// SetIterations adds delta to the iteration cap, keeping it within
// MinMaxIterations..MaxMaxIterations
func (e *Engine) SetIterations(delta int) ChangeReport {
	want, ok := addInt(e.view.MaxIterations, delta)
	e.view.MaxIterations = min(max(want, MinMaxIterations), MaxMaxIterations)
	return e.compute(!ok || want != e.view.MaxIterations)
}

// addInt returns a+b saturated to the int range and whether it fit
func addInt(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt, false
	case b < 0 && a < math.MinInt-b:
		return math.MinInt, false
	}
	return a + b, true
}

// Resize sets the grid size, clamped to 1x1, and recomputes.
// A grid of more than MaxGridCells cells is refused.
func (e *Engine) Resize(width, height int) ChangeReport {
	clamped := width < 1 || height < 1
	width, height = max(width, 1), max(height, 1)
	if !gridFits(width, height) {
		return e.compute(true)
	}
	e.view.Width = width
	e.view.Height = height
	e.invalidate()
	return e.compute(clamped)
}

// Reset restores the default camera, keeping the grid size
func (e *Engine) Reset() ChangeReport {
	e.view = DefaultView(e.view.Width, e.view.Height)
	e.invalidate()
	return e.Compute()
}

// CenterOnOrigin moves the center to 0+0i keeping everything else
func (e *Engine) CenterOnOrigin() ChangeReport {
	e.view.CenterReal, e.view.CenterImag = 0, 0
	return e.Compute()
}

// GoTo centers on the region and zooms so its imaginary span fills the grid height
func (e *Engine) GoTo(r Region) ChangeReport {
	span := r.Ymax - r.Ymin
	if span <= 0 || isInf(span) {
		return e.compute(true)
	}
	next := e.view
	next.CenterReal, next.CenterImag = r.Center()
	next.Zoom = 2 * ReferenceHalfHeight / span
	if !next.valid() {
		return e.compute(true)
	}
	e.view = next
	return e.Compute()
}
