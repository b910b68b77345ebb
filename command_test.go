package mandel

import "testing"

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}
	for _, s := range []string{"", "zoom", "PAN-UP", "teleport"} {
		if _, err := ParseAction(s); err == nil {
			t.Errorf("ParseAction(%q) accepted", s)
		}
	}
}

func TestLandmarkByName(t *testing.T) {
	r, err := LandmarkByName("  Seahorse ")
	if err != nil || r != SeahorseValley {
		t.Fatalf("LandmarkByName(seahorse) = %+v, %v", r, err)
	}
	if _, err := LandmarkByName("atlantis"); err == nil {
		t.Error("unknown landmark accepted")
	}
	for name, r := range Landmarks {
		if r.Xmin >= r.Xmax || r.Ymin >= r.Ymax {
			t.Errorf("landmark %s is empty: %+v", name, r)
		}
	}
}
