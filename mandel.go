// Package mandel computes Mandelbrot/Multibrot escape-time fields for a grid of terminal cells
// and tracks the camera the field is navigated with.
package mandel

import (
	"fmt"
	"strings"
)

// Region is a rectangle of the complex plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Center returns the middle point of the region
func (r Region) Center() (float64, float64) {
	return (r.Xmin + r.Xmax) / 2, (r.Ymin + r.Ymax) / 2
}

func (r Region) String() string {
	return fmt.Sprintf("%.10f, %.10f -> %.10f, %.10f", r.Xmin, r.Ymin, r.Xmax, r.Ymax)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: 0.25,
		Xmax: 0.35,
		Ymin: -0.05,
		Ymax: 0.05,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmarks maps the names accepted by LandmarkByName to their regions
var Landmarks = map[string]Region{
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// LandmarkByName looks a landmark up, ignoring case
func LandmarkByName(name string) (Region, error) {
	r, ok := Landmarks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Region{}, fmt.Errorf("unknown landmark %q", name)
	}
	return r, nil
}
