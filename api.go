package mandel

import (
	"fmt"
	"time"
)

// boundedWire encodes Bounded in FieldMessage.Escapes; no escape iteration is negative
const boundedWire = -1

// FieldMessage is a ChangeReport as sent over the websocket
type FieldMessage struct {
	View      ViewState `json:"view"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Escapes   []int32   `json:"escapes"`
	ElapsedMS float64   `json:"elapsedMs"`
	Clamped   bool      `json:"clamped,omitempty"`
}

// NewFieldMessage flattens a report, row by row
func NewFieldMessage(r ChangeReport) FieldMessage {
	f := r.Field
	esc := make([]int32, len(f.cells))
	for i, c := range f.cells {
		if c.escaped {
			esc[i] = c.iter
		} else {
			esc[i] = boundedWire
		}
	}
	return FieldMessage{
		View:      r.View,
		Width:     f.width,
		Height:    f.height,
		Escapes:   esc,
		ElapsedMS: float64(r.Elapsed) / float64(time.Millisecond),
		Clamped:   r.Clamped,
	}
}

// Report rebuilds the ChangeReport carried by the message
func (m FieldMessage) Report() (ChangeReport, error) {
	if m.Width < 1 || m.Height < 1 || len(m.Escapes) != m.Width*m.Height {
		return ChangeReport{}, fmt.Errorf("field message: %dx%d grid with %d cells", m.Width, m.Height, len(m.Escapes))
	}
	f := &Field{
		width:  m.Width,
		height: m.Height,
		cells:  make([]EscapeResult, len(m.Escapes)),
	}
	for i, e := range m.Escapes {
		switch {
		case e == boundedWire:
			f.cells[i] = Bounded
		case e >= 0:
			f.cells[i] = EscapeResult{iter: e, escaped: true}
		default:
			return ChangeReport{}, fmt.Errorf("field message: invalid escape value %d at %d", e, i)
		}
	}
	return ChangeReport{
		Field:   f,
		View:    m.View,
		Elapsed: time.Duration(m.ElapsedMS * float64(time.Millisecond)),
		Clamped: m.Clamped,
	}, nil
}
