// client.go is a CLI client for the Mandelbrot server.
// It connects to the server, replays a list of navigation actions, and saves the final field as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/termbrot"
	"github.com/marben/termbrot/render"
)

var (
	addrFlag    = flag.String("addr", "ws://localhost:8080/ws", "server websocket url")
	actionsFlag = flag.String("actions", "", "comma separated actions, e.g. zoom-in,pan-left,landmark=seahorse")
	sizeFlag    = flag.String("size", "320x200", "field size in cells, WxH")
	paletteFlag = flag.String("palette", "default", "colour palette")
	outFlag     = flag.String("out", "mandel.png", "output file")
	timeoutFlag = flag.Duration("timeout", time.Minute, "give up after this long")
)

// maxMessage bounds the size of one field message
const maxMessage = 64 << 20

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	flag.Parse()
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, replays the actions, and saves the result as a PNG file.
// Returns an error if any step fails.
func run() error {
	width, height, err := parseSize(*sizeFlag)
	if err != nil {
		return err
	}
	cmds, err := parseActions(*actionsFlag)
	if err != nil {
		return err
	}
	palette, err := render.PaletteByName(*paletteFlag)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", *addrFlag)
	c, _, err := websocket.Dial(ctx, *addrFlag, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer c.CloseNow()
	c.SetReadLimit(maxMessage)

	// Step 2: Size the field, then replay the actions one by one
	cmds = append([]mandel.Command{{Action: mandel.Resize, Width: width, Height: height}}, cmds...)
	var last mandel.ChangeReport
	for _, cmd := range cmds {
		last, err = roundTrip(ctx, c, cmd)
		if err != nil {
			return err
		}
		log.Printf("%s: %s (%s)", cmd.Action, last.View, last.Elapsed)
		if last.Clamped {
			log.Printf("%s hit a limit", cmd.Action)
		}
	}

	// Step 3: Save the rendered field to a PNG file
	log.Printf("Saving rendered image to %q...", *outFlag)
	f, err := os.Create(*outFlag)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, render.ReportImage(last, palette)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", *outFlag)
	return c.Close(websocket.StatusNormalClosure, "")
}

// roundTrip sends one command and waits for its field
func roundTrip(ctx context.Context, c *websocket.Conn, cmd mandel.Command) (mandel.ChangeReport, error) {
	if err := wsjson.Write(ctx, c, cmd); err != nil {
		return mandel.ChangeReport{}, fmt.Errorf("send %s: %w", cmd.Action, err)
	}
	var msg mandel.FieldMessage
	if err := wsjson.Read(ctx, c, &msg); err != nil {
		return mandel.ChangeReport{}, fmt.Errorf("read field: %w", err)
	}
	return msg.Report()
}

// parseSize parses WxH
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// parseActions parses a comma separated action list. landmark takes its name after '='.
func parseActions(s string) ([]mandel.Command, error) {
	var cmds []mandel.Command
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, arg, _ := strings.Cut(item, "=")
		a, err := mandel.ParseAction(name)
		if err != nil {
			return nil, err
		}
		cmd := mandel.Command{Action: a}
		switch a {
		case mandel.Landmark:
			if _, err := mandel.LandmarkByName(arg); err != nil {
				return nil, err
			}
			cmd.Landmark = arg
		case mandel.Resize:
			if cmd.Width, cmd.Height, err = parseSize(arg); err != nil {
				return nil, err
			}
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
