package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Repeating runs a Task on a fixed period after an initial delay.
// Start launches the loop, Stop blocks until it has exited.
type Repeating struct {
	task         Task
	interval     time.Duration
	initialDelay time.Duration

	done chan struct{}
	wg   sync.WaitGroup
}

func NewRepeating(task Task, interval, initialDelay time.Duration) *Repeating {
	return &Repeating{
		task:         task,
		interval:     interval,
		initialDelay: initialDelay,
		done:         make(chan struct{}),
	}
}

func (r *Repeating) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		delay := time.NewTimer(r.initialDelay)
		defer delay.Stop()
		select {
		case <-delay.C:
		case <-r.done:
			return
		case <-ctx.Done():
			return
		}

		r.runOnce(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.runOnce(ctx)
			case <-r.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (r *Repeating) runOnce(ctx context.Context) {
	if err := r.task.Run(ctx); err != nil {
		slog.Error("scheduled task run failed", "task", r.task.Name(), "error", err)
	}
}

func (r *Repeating) Stop() {
	close(r.done)
	r.wg.Wait()
}
