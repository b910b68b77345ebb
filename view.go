package mandel

import (
	"fmt"
	"math"
)

// Defaults a fresh or reset engine starts from
const (
	DefaultCenterReal    = -0.5
	DefaultCenterImag    = 0.0
	DefaultZoom          = 1.0
	DefaultExponent      = 2
	DefaultMaxIterations = 80

	MinExponent      = 2
	MinMaxIterations = 1

	// escape iterations are stored as int32
	MaxMaxIterations = math.MaxInt32

	// MaxGridCells bounds Width*Height of a computed field
	MaxGridCells = 1 << 28
)

// ViewState is the camera the field is computed against.
// It is comparable and used as the cache key, so it must hold values only.
type ViewState struct {
	CenterReal float64 `json:"centerReal"`
	CenterImag float64 `json:"centerImag"`

	// Zoom 1 shows 2*ReferenceHalfHeight of the imaginary axis
	Zoom float64 `json:"zoom"`

	Exponent      int `json:"exponent"`
	MaxIterations int `json:"maxIterations"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultView returns the default camera for a grid of the given size.
// The grid is clamped to at least 1x1 and to at most MaxGridCells cells.
func DefaultView(width, height int) ViewState {
	width = min(max(width, 1), MaxGridCells)
	height = min(max(height, 1), MaxGridCells/width)
	return ViewState{
		CenterReal:    DefaultCenterReal,
		CenterImag:    DefaultCenterImag,
		Zoom:          DefaultZoom,
		Exponent:      DefaultExponent,
		MaxIterations: DefaultMaxIterations,
		Width:         width,
		Height:        height,
	}
}

// Region returns the rectangle of the plane covered by the grid
func (v ViewState) Region() Region {
	hs, vs := CellSteps(v)
	halfW := hs * float64(v.Width) / 2
	halfH := vs * float64(v.Height) / 2
	return Region{
		Xmin: v.CenterReal - halfW,
		Xmax: v.CenterReal + halfW,
		Ymin: v.CenterImag - halfH,
		Ymax: v.CenterImag + halfH,
	}
}

func (v ViewState) String() string {
	return fmt.Sprintf("%s | %d multibrot | %d iterations | zoom %g",
		v.Region(), v.Exponent, v.MaxIterations, v.Zoom)
}

// valid reports whether v is within the bounds the kernel relies on
func (v ViewState) valid() bool {
	return v.Zoom > 0 && !isInf(v.Zoom) &&
		v.Exponent >= MinExponent &&
		v.MaxIterations >= MinMaxIterations && v.MaxIterations <= MaxMaxIterations &&
		v.Width >= 1 && v.Height >= 1 && gridFits(v.Width, v.Height)
}

// gridFits reports whether a width x height grid holds between 1 and MaxGridCells cells.
// It divides instead of multiplying so oversized dimensions cannot wrap.
func gridFits(width, height int) bool {
	return width >= 1 && height >= 1 && height <= MaxGridCells/width
}
