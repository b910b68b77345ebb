//go:build js && wasm

package main

import (
	"fmt"
	"image"
	"syscall/js"
	"time"
)

// cellPixels is the on-canvas size of one field cell; cells are twice as tall as wide
const (
	cellW = 2
	cellH = 4
)

// displayImage scales the field image to cell size and puts it on the canvas
func displayImage(img *image.RGBA) {
	start := time.Now()
	// 1. Get the Canvas element and its 2D context
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "myCanvas")
	ctx := canvas.Call("getContext", "2d")

	scaled := scaleCells(img)
	width := scaled.Rect.Dx()
	height := scaled.Rect.Dy()
	canvas.Set("width", width)
	canvas.Set("height", height)

	// 2. Create a JS TypedArray (Uint8ClampedArray) to hold the pixel data
	// The length is width * height * 4 (RGBA)
	jsData := js.Global().Get("Uint8ClampedArray").New(len(scaled.Pix))

	// 3. Copy the Go byte slice into the JS TypedArray
	js.CopyBytesToJS(jsData, scaled.Pix)

	// 4. Create ImageData and put it on the canvas
	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)
	logScreenf("draw took %s", time.Since(start))
}

// scaleCells blows every pixel up to a cellW x cellH block
func scaleCells(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*cellW, b.Dy()*cellH))
	for y := range out.Rect.Dy() {
		for x := range out.Rect.Dx() {
			out.SetRGBA(x, y, img.RGBAAt(b.Min.X+x/cellW, b.Min.Y+y/cellH))
		}
	}
	return out
}

// gridForWindow returns the field size that fills the browser window
func gridForWindow() (int, int) {
	win := js.Global().Get("window")
	w := win.Get("innerWidth").Int() / cellW
	h := (win.Get("innerHeight").Int() - 80) / cellH
	return max(w, 1), max(h, 1)
}

func setText(id string, v any) {
	js.Global().Get("document").Call("getElementById", id).Set("textContent", fmt.Sprint(v))
}
