package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra/metrics"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SkipReason string

const (
	SkipConflict     SkipReason = "conflict"
	SkipCreateFailed SkipReason = "create-failed"
)

type SkippedOccurrence struct {
	Date   time.Time
	Reason SkipReason
}

type RecurrenceResult struct {
	Created      []*booking.Booking
	Skipped      []SkippedOccurrence
	TotalCreated int
	// Interrupted is set when the context ended the expansion early.
	Interrupted bool
}

func (r *RecurrenceResult) Summary() string {
	if len(r.Skipped) == 0 {
		return fmt.Sprintf("Created %d recurring bookings", r.TotalCreated)
	}
	return fmt.Sprintf("Created %d recurring bookings, %d skipped", r.TotalCreated, len(r.Skipped))
}

// RecurrenceExpander turns a template booking and a rule into concrete
// occurrences. Each occurrence is checked and persisted on its own; a skipped
// or failed occurrence never aborts or undoes the rest of the series.
type RecurrenceExpander struct {
	checker ConflictChecker
	writer  BookingWriter
	clock   clock.Clock
	logger  *slog.Logger
}

func NewRecurrenceExpander(checker ConflictChecker, writer BookingWriter, clk clock.Clock, logger *slog.Logger) *RecurrenceExpander {
	return &RecurrenceExpander{checker: checker, writer: writer, clock: clk, logger: logger}
}

// Expand walks the series from base's start, stepping in loc. Occurrences
// created earlier in the same run count as busy for later ones. On context
// cancellation the partial result is returned together with ctx.Err().
func (e *RecurrenceExpander) Expand(ctx context.Context, base *booking.Booking, rule booking.RecurrenceRule, loc *time.Location) (*RecurrenceResult, error) {
	if err := rule.Validate(base.Start()); err != nil {
		return nil, err
	}

	result := &RecurrenceResult{
		Created: []*booking.Booking{},
		Skipped: []SkippedOccurrence{},
	}
	pattern := booking.RecurrencePattern{Frequency: rule.Frequency, OriginalStart: base.Start()}
	limit := rule.Limit()

	for n := 0; n < limit; n++ {
		cursor := rule.Nth(base.Start(), n, loc)
		if !rule.Within(cursor) {
			break
		}
		if err := ctx.Err(); err != nil {
			result.Interrupted = true
			e.logger.Warn("recurrence expansion interrupted",
				"amenity_id", base.AmenityID(),
				"created", result.TotalCreated,
				"error", err,
			)
			return result, err
		}

		candidate := base.TimeRange().StartingAt(cursor)
		if e.isTaken(ctx, base.AmenityID(), candidate, result.Created) {
			result.skip(cursor, SkipConflict)
			continue
		}

		created, err := e.writer.Create(ctx, base.Occurrence(candidate, pattern, e.clock.Now()))
		if err != nil {
			reason := SkipCreateFailed
			if errs.Is(err, booking.ErrBookingConflict) {
				reason = SkipConflict
			}
			e.logger.Warn("recurring occurrence skipped",
				"amenity_id", base.AmenityID(),
				"start", cursor,
				"reason", reason,
				"error", err,
			)
			result.skip(cursor, reason)
			continue
		}

		result.Created = append(result.Created, created)
		result.TotalCreated++
		metrics.RecordOccurrence("created")
	}
	return result, nil
}

func (e *RecurrenceExpander) isTaken(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, createdSoFar []*booking.Booking) bool {
	if booking.HasConflict(amenityID, candidate, createdSoFar, nil) {
		return true
	}
	return len(e.checker.CheckConflicts(ctx, amenityID, candidate, nil)) > 0
}

func (r *RecurrenceResult) skip(date time.Time, reason SkipReason) {
	r.Skipped = append(r.Skipped, SkippedOccurrence{Date: date, Reason: reason})
	metrics.RecordOccurrence(string(reason))
}

type CreateRecurringInput struct {
	Booking CreateBookingInput
	Rule    booking.RecurrenceRule
}

type RecurringBookingCommands interface {
	CreateRecurring(ctx context.Context, input CreateRecurringInput, actor shared.Actor) (*RecurrenceResult, error)
}

type recurringUseCaseImpl struct {
	uow       shared.UnitOfWork
	expander  *RecurrenceExpander
	publisher notify.Publisher
	clock     clock.Clock
}

func NewRecurringBookingUseCase(uow shared.UnitOfWork, expander *RecurrenceExpander, publisher notify.Publisher, clk clock.Clock) RecurringBookingCommands {
	return &recurringUseCaseImpl{uow: uow, expander: expander, publisher: publisher, clock: clk}
}

func (uc *recurringUseCaseImpl) CreateRecurring(ctx context.Context, input CreateRecurringInput, actor shared.Actor) (*RecurrenceResult, error) {
	tr, err := booking.NewTimeRange(input.Booking.Start, input.Booking.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}
	if err := input.Rule.Validate(tr.Start()); err != nil {
		return nil, err
	}

	a, err := uc.uow.Reads().Amenities().FindByID(ctx, input.Booking.AmenityID)
	if err != nil {
		return nil, mapAmenityErr(err)
	}
	// A closed amenity would only yield a series of failed occurrences.
	if !a.IsAvailable() {
		return nil, mapHostErr(amenity.ErrNotBookable)
	}

	memberID := actor.MemberID
	if actor.IsAdmin() && input.Booking.MemberID != uuid.Nil {
		memberID = input.Booking.MemberID
	}
	template, err := booking.NewBooking(a.ID(), memberID, tr, booking.NewNote(input.Booking.Note), uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	result, err := uc.expander.Expand(ctx, template, input.Rule, a.Location())
	if result != nil && result.TotalCreated > 0 {
		// Detached so a cancelled request still reports what was created
		uc.publisher.Publish(context.WithoutCancel(ctx), notify.New(
			notify.KindRecurrenceCreated,
			result.Created[0].ID(),
			[]uuid.UUID{memberID},
			result.Summary(),
			uc.clock.Now(),
		).With("frequency", input.Rule.Frequency.String()).
			With("created", result.TotalCreated).
			With("skipped", len(result.Skipped)))
	}
	return result, err
}
