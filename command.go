package mandel

import (
	"fmt"
	"slices"
)

// Direction of a pan
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Action names a navigation command. The names double as the wire format.
type Action string

const (
	PanUp        Action = "pan-up"
	PanDown      Action = "pan-down"
	PanLeft      Action = "pan-left"
	PanRight     Action = "pan-right"
	PanUpSlow    Action = "pan-up-slow"
	PanDownSlow  Action = "pan-down-slow"
	PanLeftSlow  Action = "pan-left-slow"
	PanRightSlow Action = "pan-right-slow"

	ZoomIn      Action = "zoom-in"
	ZoomOut     Action = "zoom-out"
	ZoomInDeep  Action = "zoom-in-deep"
	ZoomOutDeep Action = "zoom-out-deep"

	ExponentUp   Action = "exponent-up"
	ExponentDown Action = "exponent-down"

	IterationsUp       Action = "iterations-up"
	IterationsDown     Action = "iterations-down"
	IterationsUpMore   Action = "iterations-up-more"
	IterationsDownMore Action = "iterations-down-more"

	Reset    Action = "reset"
	Origin   Action = "origin"
	Resize   Action = "resize"
	Landmark Action = "landmark"
	Refresh  Action = "refresh"
)

// Iteration cap deltas for the normal and "more" commands
const (
	IterationStep     = 10
	IterationStepMore = 100
)

var actions = []Action{
	PanUp, PanDown, PanLeft, PanRight,
	PanUpSlow, PanDownSlow, PanLeftSlow, PanRightSlow,
	ZoomIn, ZoomOut, ZoomInDeep, ZoomOutDeep,
	ExponentUp, ExponentDown,
	IterationsUp, IterationsDown, IterationsUpMore, IterationsDownMore,
	Reset, Origin, Resize, Landmark, Refresh,
}

// Actions lists every known action
func Actions() []Action {
	return slices.Clone(actions)
}

// ParseAction validates an action name
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !slices.Contains(actions, a) {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return a, nil
}

// Command is one navigation request. Width/Height are used by Resize, Landmark by Landmark.
type Command struct {
	Action   Action `json:"action"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Landmark string `json:"landmark,omitempty"`
}

// Apply runs the command against the engine
func (e *Engine) Apply(cmd Command) ChangeReport {
	switch cmd.Action {
	case PanUp:
		return e.Pan(Up, false)
	case PanDown:
		return e.Pan(Down, false)
	case PanLeft:
		return e.Pan(Left, false)
	case PanRight:
		return e.Pan(Right, false)
	case PanUpSlow:
		return e.Pan(Up, true)
	case PanDownSlow:
		return e.Pan(Down, true)
	case PanLeftSlow:
		return e.Pan(Left, true)
	case PanRightSlow:
		return e.Pan(Right, true)
	case ZoomIn:
		return e.Zoom(true, false)
	case ZoomOut:
		return e.Zoom(false, false)
	case ZoomInDeep:
		return e.Zoom(true, true)
	case ZoomOutDeep:
		return e.Zoom(false, true)
	case ExponentUp:
		return e.SetExponent(1)
	case ExponentDown:
		return e.SetExponent(-1)
	case IterationsUp:
		return e.SetIterations(IterationStep)
	case IterationsDown:
		return e.SetIterations(-IterationStep)
	case IterationsUpMore:
		return e.SetIterations(IterationStepMore)
	case IterationsDownMore:
		return e.SetIterations(-IterationStepMore)
	case Reset:
		return e.Reset()
	case Origin:
		return e.CenterOnOrigin()
	case Resize:
		return e.Resize(cmd.Width, cmd.Height)
	case Landmark:
		r, err := LandmarkByName(cmd.Landmark)
		if err != nil {
			rep := e.Compute()
			rep.Clamped = true
			return rep
		}
		return e.GoTo(r)
	default:
		return e.Compute()
	}
}
