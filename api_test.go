package mandel

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFieldMessageCarriesBounded(t *testing.T) {
	e := NewEngine(11, 11, WithMaxIterations(1))
	e.view.CenterReal = 2
	r := e.Compute()
	r.Elapsed = 1500 * time.Microsecond

	raw, err := json.Marshal(NewFieldMessage(r))
	if err != nil {
		t.Fatal(err)
	}
	var msg FieldMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}

	// with a cap of 1 the cell at 2+0i is bounded while its right neighbour escapes on iteration 0
	if got := msg.Escapes[5*11+5]; got != -1 {
		t.Errorf("bounded cell sent as %d", got)
	}
	if got := msg.Escapes[5*11+10]; got != 0 {
		t.Errorf("escaped(0) cell sent as %d", got)
	}

	back, err := msg.Report()
	if err != nil {
		t.Fatal(err)
	}
	if back.View != r.View || back.Elapsed != r.Elapsed {
		t.Errorf("metadata changed: %+v %v", back.View, back.Elapsed)
	}
	for row := range 11 {
		for col := range 11 {
			c := Cell{col, row}
			if back.Field.At(c) != r.Field.At(c) {
				t.Fatalf("cell %v: %v, want %v", c, back.Field.At(c), r.Field.At(c))
			}
		}
	}
}

func TestFieldMessageRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		msg  FieldMessage
	}{
		{"short", FieldMessage{Width: 2, Height: 2, Escapes: []int32{1, 2, 3}}},
		{"empty grid", FieldMessage{}},
		{"negative escape", FieldMessage{Width: 1, Height: 1, Escapes: []int32{-2}}},
	}
	for _, tt := range tests {
		if _, err := tt.msg.Report(); err == nil {
			t.Errorf("%s: no error", tt.name)
		}
	}
}
