package commands

import (
	"context"
	"log/slog"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/domain/event"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type MaintenancePolicy struct {
	CheckoutGrace  time.Duration
	StaleAge       time.Duration
	StaleBatchSize int
	ReminderLead   time.Duration
	ReminderWindow time.Duration
}

func DefaultMaintenancePolicy() MaintenancePolicy {
	return MaintenancePolicy{
		CheckoutGrace:  time.Hour,
		StaleAge:       30 * 24 * time.Hour,
		StaleBatchSize: 100,
		ReminderLead:   24 * time.Hour,
		ReminderWindow: time.Hour,
	}
}

type MaintenanceCommands interface {
	// AutoCheckout completes checked-in bookings whose end passed more than the grace period ago.
	AutoCheckout(ctx context.Context) (int, error)
	// ReportStaleBookings counts completed bookings older than the stale age, one batch at a time.
	ReportStaleBookings(ctx context.Context) (int, error)
	// SendEventReminders notifies attendees of approved events starting in [now+lead, now+lead+window).
	SendEventReminders(ctx context.Context) (int, error)
}

type maintenanceUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator SnapshotInvalidator
	publisher   notify.Publisher
	policy      MaintenancePolicy
	clock       clock.Clock
	logger      *slog.Logger
}

func NewMaintenanceUseCase(
	uow shared.UnitOfWork,
	invalidator SnapshotInvalidator,
	publisher notify.Publisher,
	policy MaintenancePolicy,
	clk clock.Clock,
	logger *slog.Logger,
) MaintenanceCommands {
	return &maintenanceUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		publisher:   publisher,
		policy:      policy,
		clock:       clk,
		logger:      logger,
	}
}

func (uc *maintenanceUseCaseImpl) AutoCheckout(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	overdue, err := uc.uow.Reads().Bookings().ListOverdueCheckedIn(ctx, now.Add(-uc.policy.CheckoutGrace))
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var (
		done     int
		failures []error
	)
	for _, candidate := range overdue {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}
		b, ok, err := uc.checkoutOne(ctx, candidate.ID(), now)
		if err != nil {
			uc.logger.Warn("auto checkout failed", "booking_id", candidate.ID(), "error", err)
			failures = append(failures, err)
			continue
		}
		if !ok {
			continue
		}
		done++
		uc.invalidator.Invalidate(ctx, b.AmenityID())
		uc.publisher.Publish(ctx, notify.New(
			notify.KindBookingCheckedOut,
			b.ID(),
			[]uuid.UUID{b.MemberID()},
			"You were checked out automatically",
			now,
		).With("automatic", true))
	}

	if done > 0 {
		uc.logger.Info("auto checkout completed", "checked_out", done, "candidates", len(overdue))
	}
	return done, errs.Join(failures...)
}

// checkoutOne re-reads the booking under lock; it may have been checked out meanwhile.
func (uc *maintenanceUseCaseImpl) checkoutOne(ctx context.Context, id uuid.UUID, now time.Time) (*booking.Booking, bool, error) {
	var (
		out     *booking.Booking
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, id)
		if err != nil {
			return mapBookingErr(err)
		}
		if !b.IsOverdue(now, uc.policy.CheckoutGrace) {
			return nil
		}
		if err := b.CheckOut(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapBookingWriteErr(err)
		}
		out, changed = b, true
		return nil
	})
	return out, changed, err
}

func (uc *maintenanceUseCaseImpl) ReportStaleBookings(ctx context.Context) (int, error) {
	cutoff := uc.clock.Now().Add(-uc.policy.StaleAge)
	stale, err := uc.uow.Reads().Bookings().ListCompletedBefore(ctx, cutoff, uc.policy.StaleBatchSize)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(stale) > 0 {
		uc.logger.Info("stale completed bookings found",
			"count", len(stale),
			"cutoff", cutoff,
			"batch_full", len(stale) == uc.policy.StaleBatchSize,
		)
	}
	return len(stale), nil
}

func (uc *maintenanceUseCaseImpl) SendEventReminders(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	from := now.Add(uc.policy.ReminderLead)
	to := from.Add(uc.policy.ReminderWindow)

	events, err := uc.uow.Reads().Events().ListStartingBetween(ctx, from, to)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	sent := 0
	for _, e := range events {
		if e.Status() != event.StatusApproved || !e.StartsWithin(from, to) {
			continue
		}
		attendees := e.Attendees()
		if len(attendees) == 0 {
			continue
		}
		uc.publisher.Publish(ctx, notify.New(
			notify.KindEventReminder,
			e.ID(),
			attendees,
			"Reminder: "+e.Title()+" starts soon",
			now,
		).With("starts_at", e.StartsAt()).With("location", e.Location()))
		sent++
	}
	return sent, nil
}
