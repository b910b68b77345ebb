package render

import (
	"image"

	mandel "github.com/marben/termbrot"
)

// Image paints one pixel per field cell
func Image(f *mandel.Field, p Palette, maxIter int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for row := range f.Height() {
		for col := range f.Width() {
			img.SetRGBA(col, row, p(f.At(mandel.Cell{Col: col, Row: row}), maxIter))
		}
	}
	return img
}

// ReportImage paints a report with the iteration cap it was computed with
func ReportImage(r mandel.ChangeReport, p Palette) *image.RGBA {
	return Image(r.Field, p, r.View.MaxIterations)
}
