package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/termbrot"
)

const (
	// grid used until the client sends its first resize
	sessionWidth  = 80
	sessionHeight = 24

	sessionQueue = 32
)

// webServer serves files from the static dir and the /ws navigation endpoint
func webServer(addr, static string, maxCells int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(maxCells))
	mux.Handle("/", http.FileServer(http.Dir(static)))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades the request and runs a navigation session on it.
// Every connection gets its own engine.
func websocketHandler(maxCells int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("got connection from: %s", r.RemoteAddr)
		err = serveSession(r.Context(), c, maxCells)

		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			log.Printf("%s disconnected", r.RemoteAddr)
			return
		}

		var perr *policyError
		if errors.As(err, &perr) {
			log.Printf("closing %s: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusPolicyViolation, perr.Error())
			return
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("session %s: %v", r.RemoteAddr, err)
		}
	}
}

// policyError is a client request the session refuses to serve
type policyError struct {
	msg string
}

func (e *policyError) Error() string { return e.msg }

func serveSession(ctx context.Context, c *websocket.Conn, maxCells int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	worker := mandel.NewWorker(mandel.NewEngine(sessionWidth, sessionHeight), sessionQueue)

	errc := make(chan error, 3)
	go func() { errc <- worker.Run(ctx) }()
	go func() { errc <- writeReports(ctx, c, worker) }()
	go func() { errc <- readCommands(ctx, c, worker, maxCells) }()

	return <-errc
}

func readCommands(ctx context.Context, c *websocket.Conn, worker *mandel.Worker, maxCells int) error {
	for {
		var cmd mandel.Command
		if err := wsjson.Read(ctx, c, &cmd); err != nil {
			return err
		}
		if _, err := mandel.ParseAction(string(cmd.Action)); err != nil {
			return &policyError{msg: err.Error()}
		}
		if cmd.Action == mandel.Resize && !gridAllowed(cmd.Width, cmd.Height, maxCells) {
			return &policyError{msg: fmt.Sprintf("grid %dx%d outside 1..%d cells", cmd.Width, cmd.Height, maxCells)}
		}
		if err := worker.Submit(ctx, cmd); err != nil {
			return err
		}
	}
}

// gridAllowed checks a requested grid against the session limit without multiplying
func gridAllowed(width, height, maxCells int) bool {
	if width < 1 || height < 1 || width > maxCells || height > maxCells {
		return false
	}
	return width <= maxCells/height
}

func writeReports(ctx context.Context, c *websocket.Conn, worker *mandel.Worker) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-worker.Reports():
			if err := wsjson.Write(ctx, c, mandel.NewFieldMessage(r)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
}
