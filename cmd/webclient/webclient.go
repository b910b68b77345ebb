//go:build js && wasm

// webclient.go is a WASM web client for the Mandelbrot server.
// It forwards key presses to the server as navigation commands and draws every field it gets back.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/termbrot"
	"github.com/marben/termbrot/render"
)

// maxMessage bounds the size of one field message
const maxMessage = 64 << 20

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to server via WebSocket
	ctx := context.Background()
	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	c, _, err := websocket.Dial(ctx, websocketUrl, nil)
	if err != nil {
		logFatalf("Failed to connect: %v", err)
	}
	c.SetReadLimit(maxMessage)
	logScreenf("WebSocket connected.")

	// Step 3: Forward key presses and window resizes; callbacks must not block
	cmds := make(chan mandel.Command, 64)
	palettes := make(chan string, 4)
	registerKeys(cmds, palettes)
	registerResize(cmds)

	go func() {
		for cmd := range cmds {
			if err := wsjson.Write(ctx, c, cmd); err != nil {
				logFatalf("send %s: %v", cmd.Action, err)
			}
		}
	}()

	// Step 4: Ask for a field that fills the window
	w, h := gridForWindow()
	cmds <- mandel.Command{Action: mandel.Resize, Width: w, Height: h}

	// Step 5: Draw fields as they arrive
	if err := drawLoop(ctx, c, palettes); err != nil {
		logFatalf("drawLoop: %v", err)
	}

	// Step 6: Block main goroutine to keep WASM running
	select {}
}

// drawLoop reads fields from the server and draws them with the selected palette
func drawLoop(ctx context.Context, c *websocket.Conn, palettes <-chan string) error {
	reports := make(chan mandel.ChangeReport)
	errc := make(chan error, 1)
	go func() {
		for {
			var msg mandel.FieldMessage
			if err := wsjson.Read(ctx, c, &msg); err != nil {
				errc <- fmt.Errorf("read field: %w", err)
				return
			}
			r, err := msg.Report()
			if err != nil {
				errc <- err
				return
			}
			reports <- r
		}
	}()

	palette := render.Palette(render.Default)
	var last *mandel.ChangeReport
	for {
		select {
		case err := <-errc:
			return err
		case name := <-palettes:
			p, err := render.PaletteByName(name)
			if err != nil {
				logScreenf("%v", err)
				continue
			}
			palette = p
		case r := <-reports:
			last = &r
			hudSetStatus(r)
		}
		if last != nil {
			displayImage(render.ReportImage(*last, palette))
		}
	}
}

var keyActions = map[string]mandel.Action{
	"ArrowUp": mandel.PanUp, "w": mandel.PanUp, "k": mandel.PanUp,
	"ArrowDown": mandel.PanDown, "s": mandel.PanDown, "j": mandel.PanDown,
	"ArrowLeft": mandel.PanLeft, "a": mandel.PanLeft, "h": mandel.PanLeft,
	"ArrowRight": mandel.PanRight, "d": mandel.PanRight, "l": mandel.PanRight,
	"W": mandel.PanUpSlow, "K": mandel.PanUpSlow,
	"S": mandel.PanDownSlow, "J": mandel.PanDownSlow,
	"A": mandel.PanLeftSlow, "H": mandel.PanLeftSlow,
	"D": mandel.PanRightSlow, "L": mandel.PanRightSlow,
	"PageUp": mandel.ZoomIn, "]": mandel.ZoomIn,
	"PageDown": mandel.ZoomOut, "[": mandel.ZoomOut,
	"}": mandel.ZoomInDeep, "{": mandel.ZoomOutDeep,
	"*": mandel.ExponentUp, "/": mandel.ExponentDown,
	".": mandel.IterationsUp, ",": mandel.IterationsDown,
	">": mandel.IterationsUpMore, "<": mandel.IterationsDownMore,
	"Home": mandel.Origin,
}

var slowArrows = map[string]mandel.Action{
	"ArrowUp":    mandel.PanUpSlow,
	"ArrowDown":  mandel.PanDownSlow,
	"ArrowLeft":  mandel.PanLeftSlow,
	"ArrowRight": mandel.PanRightSlow,
}

var keyPalettes = map[string]string{
	"1": "default",
	"2": "blue-brown",
	"3": "green",
	"4": "smooth",
}

func registerKeys(cmds chan<- mandel.Command, palettes chan<- string) {
	js.Global().Get("document").Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		key := ev.Get("key").String()
		ctrl := ev.Get("ctrlKey").Bool()
		shift := ev.Get("shiftKey").Bool()

		var a mandel.Action
		switch {
		case ctrl && (key == "r" || key == "R"):
			a = mandel.Reset
		case ctrl && key == "PageUp":
			a = mandel.ZoomInDeep
		case ctrl && key == "PageDown":
			a = mandel.ZoomOutDeep
		case ctrl && key == "ArrowUp":
			a = mandel.ExponentUp
		case ctrl && key == "ArrowDown":
			a = mandel.ExponentDown
		case shift && slowArrows[key] != "":
			a = slowArrows[key]
		default:
			if name, ok := keyPalettes[key]; ok {
				select {
				case palettes <- name:
				default:
				}
				return nil
			}
			a = keyActions[key]
		}
		if a == "" {
			return nil
		}
		ev.Call("preventDefault")
		select {
		case cmds <- mandel.Command{Action: a}:
		default:
			// queue full, drop the key
		}
		return nil
	}))
}

func registerResize(cmds chan<- mandel.Command) {
	js.Global().Get("window").Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		w, h := gridForWindow()
		select {
		case cmds <- mandel.Command{Action: mandel.Resize, Width: w, Height: h}:
		default:
		}
		return nil
	}))
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetStatus shows the plotted range and timing of the current field
func hudSetStatus(r mandel.ChangeReport) {
	setText("region", r.View.Region())
	setText("exponent", r.View.Exponent)
	setText("iterations", r.View.MaxIterations)
	setText("elapsed", fmt.Sprintf("%.4f seconds", r.Elapsed.Seconds()))
}
