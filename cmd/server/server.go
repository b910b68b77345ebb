package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"
)

var (
	addrFlag     = flag.String("addr", ":8080", "listen address")
	staticFlag   = flag.String("static", "./static", "directory with index.html and main.wasm")
	maxCellsFlag = flag.Int("max-cells", 1<<20, "largest grid a client may request")
)

// main is the entry point for the Mandelbrot server.
// Clients navigate over a websocket; the server computes and sends back every field.
func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	httpServer := webServer(*addrFlag, *staticFlag, *maxCellsFlag)

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on http://localhost%s", *addrFlag)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("httpServer: %w", err)
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
