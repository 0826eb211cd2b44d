package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hub-booking/internal/infra/metrics"
)

// JobFunc performs one pass of a periodic job and reports how many items it touched.
type JobFunc func(ctx context.Context) (int, error)

type Job struct {
	Name     string
	Interval time.Duration
	Run      JobFunc
	// RunOnStart triggers one pass before the first tick.
	RunOnStart bool
}

// Worker runs each job on its own ticker until Stop or the parent context ends.
type Worker struct {
	jobs   []Job
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorker(logger *slog.Logger, jobs ...Job) *Worker {
	valid := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Interval <= 0 || j.Run == nil {
			logger.Warn("worker job disabled", "job", j.Name)
			continue
		}
		valid = append(valid, j)
	}
	return &Worker{jobs: valid, logger: logger.With("component", "worker")}
}

func (w *Worker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	for _, j := range w.jobs {
		w.wg.Add(1)
		go func(j Job) {
			defer w.wg.Done()
			w.loop(ctx, j)
		}(j)
	}
	w.logger.Info("worker started", "jobs", len(w.jobs))
}

// Stop cancels every job and waits for in-flight passes to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info("worker stopped")
}

func (w *Worker) loop(ctx context.Context, j Job) {
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	if j.RunOnStart {
		w.RunOnce(ctx, j)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce(ctx, j)
		}
	}
}

// RunOnce executes a single pass of j and records its outcome.
func (w *Worker) RunOnce(ctx context.Context, j Job) {
	start := time.Now()
	n, err := j.Run(ctx)
	metrics.RecordWorkerRun(j.Name, err)
	if err != nil {
		w.logger.Error("job failed", "job", j.Name, "processed", n, "error", err)
		return
	}
	if n > 0 {
		w.logger.Info("job completed", "job", j.Name, "processed", n, "duration", time.Since(start))
	}
}
