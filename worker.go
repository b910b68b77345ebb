package mandel

import (
	"context"
)

// Worker drives an Engine off the caller's goroutine. Commands are applied
// strictly in submission order, one at a time. A report is published only if
// no newer command is already waiting when it completes.
type Worker struct {
	engine *Engine

	queue   chan Command
	reports chan ChangeReport
}

// NewWorker wraps the engine. queueSize bounds the number of pending commands.
func NewWorker(engine *Engine, queueSize int) *Worker {
	return &Worker{
		engine:  engine,
		queue:   make(chan Command, max(queueSize, 1)),
		reports: make(chan ChangeReport, 1),
	}
}

// Reports delivers the reports that were not superseded.
// Only the newest undelivered report is kept.
func (w *Worker) Reports() <-chan ChangeReport {
	return w.reports
}

// Submit queues a command. It blocks only when the queue is full.
func (w *Worker) Submit(ctx context.Context, cmd Command) error {
	select {
	case w.queue <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies queued commands until ctx is cancelled
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-w.queue:
			report := w.engine.Apply(cmd)
			if len(w.queue) > 0 {
				// superseded
				continue
			}
			w.publish(report)
		}
	}
}

func (w *Worker) publish(r ChangeReport) {
	for {
		select {
		case w.reports <- r:
			return
		default:
		}
		// drop the stale report nobody picked up yet
		select {
		case <-w.reports:
		default:
		}
	}
}
