package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindBookingCreated    Kind = "booking.created"
	KindBookingCheckedOut Kind = "booking.checked_out"
	KindRecurrenceCreated Kind = "booking.recurrence_created"
	KindWaitlistPromoted  Kind = "event.waitlist_promoted"
	KindEventReminder     Kind = "event.reminder"
	KindEventFull         Kind = "event.full"
)

type Notification struct {
	ID         uuid.UUID      `json:"id"`
	Kind       Kind           `json:"kind"`
	SubjectID  uuid.UUID      `json:"subject_id"`
	Recipients []uuid.UUID    `json:"recipients"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func New(kind Kind, subjectID uuid.UUID, recipients []uuid.UUID, message string, now time.Time) Notification {
	return Notification{
		ID:         uuid.New(),
		Kind:       kind,
		SubjectID:  subjectID,
		Recipients: recipients,
		Message:    message,
		OccurredAt: now,
	}
}

func (n Notification) With(key string, value any) Notification {
	data := make(map[string]any, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data[key] = value
	n.Data = data
	return n
}

// Sink receives every published notification.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, n Notification) error
}

// Publisher is what use cases depend on.
type Publisher interface {
	Publish(ctx context.Context, n Notification)
}

// Bus fans a notification out to its sinks in subscription order. Delivery is
// best-effort: a failing sink is logged and does not affect the others.
type Bus struct {
	mu       sync.RWMutex
	sinks    map[uint64]Sink
	order    []uint64
	nextID   uint64
	logger   *slog.Logger
	observer func(kind Kind, sink string, err error)
}

func NewBus(logger *slog.Logger, sinks ...Sink) *Bus {
	b := &Bus{
		sinks:  make(map[uint64]Sink),
		logger: logger,
	}
	for _, s := range sinks {
		b.Subscribe(s)
	}
	return b
}

// Observe registers a hook called after each delivery attempt.
func (b *Bus) Observe(fn func(kind Kind, sink string, err error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observer = fn
}

// Subscribe adds s and returns a function that removes it again.
func (b *Bus) Subscribe(s Sink) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.sinks[id] = s
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.sinks, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

func (b *Bus) Publish(ctx context.Context, n Notification) {
	b.mu.RLock()
	sinks := make([]Sink, 0, len(b.order))
	for _, id := range b.order {
		sinks = append(sinks, b.sinks[id])
	}
	observer := b.observer
	b.mu.RUnlock()

	for _, s := range sinks {
		err := s.Deliver(ctx, n)
		if err != nil {
			b.logger.Warn("notification delivery failed",
				"sink", s.Name(),
				"kind", string(n.Kind),
				"notification_id", n.ID.String(),
				"error", err)
		}
		if observer != nil {
			observer(n.Kind, s.Name(), err)
		}
	}
}

type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, n Notification) error {
	s.logger.Info("notification",
		"kind", string(n.Kind),
		"subject_id", n.SubjectID.String(),
		"recipients", len(n.Recipients),
		"message", n.Message)
	return nil
}
