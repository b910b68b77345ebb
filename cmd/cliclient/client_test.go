package main

import (
	"testing"

	mandel "github.com/marben/termbrot"
)

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("320X200")
	if err != nil || w != 320 || h != 200 {
		t.Fatalf("parseSize = %d, %d, %v", w, h, err)
	}
	for _, s := range []string{"", "320", "0x10", "ax4", "4x-1"} {
		if _, _, err := parseSize(s); err == nil {
			t.Errorf("parseSize(%q) accepted", s)
		}
	}
}

func TestParseActions(t *testing.T) {
	cmds, err := parseActions("zoom-in, pan-left,,landmark=seahorse,resize=40x20")
	if err != nil {
		t.Fatal(err)
	}
	want := []mandel.Command{
		{Action: mandel.ZoomIn},
		{Action: mandel.PanLeft},
		{Action: mandel.Landmark, Landmark: "seahorse"},
		{Action: mandel.Resize, Width: 40, Height: 20},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands: %+v", len(cmds), cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, cmds[i], want[i])
		}
	}

	for _, s := range []string{"fly", "landmark=atlantis", "resize=big"} {
		if _, err := parseActions(s); err == nil {
			t.Errorf("parseActions(%q) accepted", s)
		}
	}
	if cmds, err := parseActions(""); err != nil || len(cmds) != 0 {
		t.Errorf("empty list = %v, %v", cmds, err)
	}
}
