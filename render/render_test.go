package render

import (
	"image/color"
	"slices"
	"testing"

	mandel "github.com/marben/termbrot"
)

func TestBoundedIsBlack(t *testing.T) {
	for _, name := range PaletteNames() {
		p, err := PaletteByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := p(mandel.Bounded, 80); got != black {
			t.Errorf("%s: bounded = %v, want black", name, got)
		}
		if got := p(mandel.EscapedAt(5), 80); got.A != 255 {
			t.Errorf("%s: escaped colour not opaque: %v", name, got)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	// hue 0 at full saturation and half lightness is pure red
	if got := Default(mandel.EscapedAt(0), 80); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Default(escaped(0)) = %v, want red", got)
	}
	if Default(mandel.EscapedAt(10), 80) == Default(mandel.EscapedAt(40), 80) {
		t.Error("different escape times share a colour")
	}
}

func TestCyclicPalettes(t *testing.T) {
	if BlueBrown(mandel.EscapedAt(3), 0) != BlueBrown(mandel.EscapedAt(19), 0) {
		t.Error("BlueBrown does not cycle every 16")
	}
	if got := BlueBrown(mandel.EscapedAt(0), 0); got != (color.RGBA{66, 30, 15, 255}) {
		t.Errorf("BlueBrown(0) = %v", got)
	}
	if got := Greens(mandel.EscapedAt(17), 0); got != (color.RGBA{0, 16, 0, 255}) {
		t.Errorf("Greens(17) = %v", got)
	}
}

func TestPaletteByName(t *testing.T) {
	want := []string{"blue-brown", "default", "green", "smooth"}
	if got := PaletteNames(); !slices.Equal(got, want) {
		t.Errorf("PaletteNames() = %v, want %v", got, want)
	}
	if _, err := PaletteByName("sepia"); err == nil {
		t.Error("unknown palette accepted")
	}
}

func TestImage(t *testing.T) {
	r := mandel.NewEngine(10, 10).Compute()
	img := ReportImage(r, Default)

	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("image is %v", b)
	}
	if got := img.RGBAAt(5, 5); got != black {
		t.Errorf("center pixel = %v, want black", got)
	}
	if got := img.RGBAAt(0, 0); got == black {
		t.Error("corner pixel is black")
	}
}
