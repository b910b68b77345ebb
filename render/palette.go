package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	mandel "github.com/marben/termbrot"
)

// Palette maps an escape result to a colour. maxIter is the cap the field was computed with.
type Palette func(r mandel.EscapeResult, maxIter int) color.RGBA

var black = color.RGBA{A: 255}

// Default spreads the escape iteration over the hue circle
func Default(r mandel.EscapeResult, maxIter int) color.RGBA {
	k, escaped := r.Iterations()
	if !escaped {
		return black
	}
	return toRGBA(colorful.Hsl(360*float64(k)/float64(max(maxIter, 1)), 1, 0.5))
}

// https://stackoverflow.com/a/16505538/2123348
var blueBrown = [16]color.RGBA{
	{66, 30, 15, 255},
	{25, 7, 26, 255},
	{9, 1, 47, 255},
	{4, 4, 73, 255},
	{0, 7, 100, 255},
	{12, 44, 138, 255},
	{24, 82, 177, 255},
	{57, 125, 209, 255},
	{134, 181, 229, 255},
	{211, 236, 248, 255},
	{241, 233, 191, 255},
	{248, 201, 95, 255},
	{255, 170, 0, 255},
	{204, 128, 0, 255},
	{153, 87, 0, 255},
	{106, 52, 3, 255},
}

// BlueBrown cycles through a 16 colour blue/brown band
func BlueBrown(r mandel.EscapeResult, _ int) color.RGBA {
	k, escaped := r.Iterations()
	if !escaped {
		return black
	}
	return blueBrown[k%len(blueBrown)]
}

// Greens cycles through 16 shades of green
func Greens(r mandel.EscapeResult, _ int) color.RGBA {
	k, escaped := r.Iterations()
	if !escaped {
		return black
	}
	return color.RGBA{G: uint8((k % 16) * 16), A: 255}
}

// Smooth is a slow walk round the HSV hue circle, independent of the cap
func Smooth(r mandel.EscapeResult, _ int) color.RGBA {
	k, escaped := r.Iterations()
	if !escaped {
		return black
	}
	hue := math.Mod(float64(k)*0.02, 1.0)
	return toRGBA(colorful.Hsv(hue*360, 1, 1))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var palettes = map[string]Palette{
	"default":    Default,
	"blue-brown": BlueBrown,
	"green":      Greens,
	"smooth":     Smooth,
}

// PaletteNames lists the names accepted by PaletteByName, sorted
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	return p, nil
}
