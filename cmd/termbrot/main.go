// termbrot is an interactive Mandelbrot/Multibrot explorer for the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/termbrot"
)

var (
	iterationsFlag = flag.Int("iterations", mandel.DefaultMaxIterations, "starting iteration cap")
	paletteFlag    = flag.String("palette", "default", "colour palette: default, blue-brown, green, smooth")
	soundFlag      = flag.Bool("sound", false, "play a tone instead of the terminal bell when a command hits a limit")
	logFlag        = flag.String("log", "", "append logs to this file")
	landmarkFlag   = flag.String("landmark", "", "start at a named landmark")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var start mandel.Command
	if *landmarkFlag != "" {
		if _, err := mandel.LandmarkByName(*landmarkFlag); err != nil {
			return err
		}
		start = mandel.Command{Action: mandel.Landmark, Landmark: *landmarkFlag}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer screen.Fini()

	ring := func() { _ = screen.Beep() }
	if *soundFlag {
		b, err := newSpeakerBell()
		if err != nil {
			// the terminal bell still works
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer b.Close()
			ring = b.Ring
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, h := screen.Size()
	engine := mandel.NewEngine(w, max(h-statusRows, 1), mandel.WithMaxIterations(*iterationsFlag))
	worker := mandel.NewWorker(engine, 64)

	v := newViewer(screen, worker, ring)
	if err := v.setPalette(*paletteFlag); err != nil {
		return err
	}

	workerErr := make(chan error, 1)
	go func() { workerErr <- worker.Run(ctx) }()

	if start.Action == "" {
		start.Action = mandel.Refresh
	}
	if err := worker.Submit(ctx, start); err != nil {
		return err
	}

	v.loop(ctx)
	cancel()

	if err := <-workerErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
