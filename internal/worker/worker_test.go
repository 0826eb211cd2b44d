//go:build unit

package worker_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"hub-booking/internal/pkg/config"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/worker"
	commandsmock "hub-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWorker_RunsJobsUntilStopped(t *testing.T) {
	var ticks atomic.Int32
	w := worker.NewWorker(slog.New(slog.DiscardHandler), worker.Job{
		Name:       "count",
		Interval:   5 * time.Millisecond,
		RunOnStart: true,
		Run: func(ctx context.Context) (int, error) {
			ticks.Add(1)
			return 1, nil
		},
	})

	w.Start(context.Background())
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)
	w.Stop()

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestWorker_FailingPassDoesNotStopLoop(t *testing.T) {
	var calls atomic.Int32
	w := worker.NewWorker(slog.New(slog.DiscardHandler), worker.Job{
		Name:     "flaky",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) (int, error) {
			if calls.Add(1) == 1 {
				return 0, errors.New("db down")
			}
			return 0, nil
		},
	})

	w.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestWorker_SkipsJobsWithoutInterval(t *testing.T) {
	w := worker.NewWorker(slog.New(slog.DiscardHandler), worker.Job{
		Name: "disabled",
		Run: func(ctx context.Context) (int, error) {
			t.Fatal("disabled job ran")
			return 0, nil
		},
	})
	w.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	w.Stop()
}

func TestMaintenanceJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := commandsmock.NewMockMaintenanceCommands(ctrl)
	cfg := config.WorkerConfig{
		AutoCheckoutInterval: time.Hour,
		CleanupInterval:      24 * time.Hour,
		ReminderInterval:     time.Hour,
	}

	jobs := worker.MaintenanceJobs(cfg, m)
	require.Len(t, jobs, 3)
	assert.Equal(t, worker.JobAutoCheckout, jobs[0].Name)
	assert.Equal(t, worker.JobStaleBookings, jobs[1].Name)
	assert.Equal(t, 24*time.Hour, jobs[1].Interval)
	assert.Equal(t, worker.JobEventReminders, jobs[2].Name)

	m.EXPECT().AutoCheckout(gomock.Any()).Return(2, nil)
	m.EXPECT().ReportStaleBookings(gomock.Any()).Return(0, nil)
	m.EXPECT().SendEventReminders(gomock.Any()).Return(1, nil)

	w := worker.NewWorker(slog.New(slog.DiscardHandler))
	for _, j := range jobs {
		w.RunOnce(context.Background(), j)
	}
}

func TestMaintenancePolicy(t *testing.T) {
	t.Run("config overrides defaults", func(t *testing.T) {
		p := worker.MaintenancePolicy(config.WorkerConfig{
			AutoCheckoutGrace: 2 * time.Hour,
			CleanupBatchSize:  10,
		})
		assert.Equal(t, 2*time.Hour, p.CheckoutGrace)
		assert.Equal(t, 10, p.StaleBatchSize)
		assert.Equal(t, 24*time.Hour, p.ReminderLead)
	})

	t.Run("zero config keeps defaults", func(t *testing.T) {
		assert.Equal(t, worker.MaintenancePolicy(config.WorkerConfig{}), commands.DefaultMaintenancePolicy())
	})
}
