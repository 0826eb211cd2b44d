package commands

import (
	"context"
	"time"

	"hub-booking/internal/domain/event"
	"hub-booking/internal/infra"
	"hub-booking/internal/infra/metrics"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
}

type EventCommands interface {
	CreateEvent(ctx context.Context, input CreateEventInput, actor shared.Actor) (*event.Event, error)
	Approve(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error)
	Reject(ctx context.Context, id uuid.UUID, reason string, actor shared.Actor) (*event.Event, error)
	Register(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error)
	// Unregister frees the actor's spot and hands it to the head of the waitlist.
	Unregister(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, event.Promotion, error)
	JoinWaitlist(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error)
	LeaveWaitlist(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error)
	PromoteWaitlist(ctx context.Context, id uuid.UUID, count int, actor shared.Actor) (*event.Event, event.Promotion, error)
}

type eventUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher notify.Publisher
	clock     clock.Clock
}

func NewEventUseCase(uow shared.UnitOfWork, publisher notify.Publisher, clk clock.Clock) EventCommands {
	return &eventUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, input CreateEventInput, actor shared.Actor) (*event.Event, error) {
	e, err := event.NewEvent(input.Title, input.Description, input.Location, input.StartsAt, input.Capacity, actor.MemberID, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Create(ctx, e); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *eventUseCaseImpl) Approve(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return uc.review(ctx, id, func(e *event.Event, now time.Time) error {
		return e.Approve(now)
	})
}

func (uc *eventUseCaseImpl) Reject(ctx context.Context, id uuid.UUID, reason string, actor shared.Actor) (*event.Event, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return uc.review(ctx, id, func(e *event.Event, now time.Time) error {
		return e.Reject(reason, now)
	})
}

func (uc *eventUseCaseImpl) Register(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error) {
	e, _, err := uc.attend(ctx, id, func(e *event.Event, now time.Time) (event.Promotion, error) {
		return event.Promotion{}, e.Register(actor.MemberID, now)
	})
	if err != nil {
		return nil, err
	}
	if e.IsFull() {
		uc.publisher.Publish(ctx, notify.New(
			notify.KindEventFull,
			e.ID(),
			[]uuid.UUID{e.OrganizerID()},
			e.Title()+" is now full",
			uc.clock.Now(),
		).With("capacity", e.Capacity()))
	}
	return e, nil
}

func (uc *eventUseCaseImpl) Unregister(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, event.Promotion, error) {
	e, promotion, err := uc.attend(ctx, id, func(e *event.Event, now time.Time) (event.Promotion, error) {
		if err := e.Unregister(actor.MemberID, now); err != nil {
			return event.Promotion{}, err
		}
		return e.AutoPromote(now), nil
	})
	if err != nil {
		return nil, event.Promotion{}, err
	}
	uc.announcePromotion(ctx, e, promotion)
	return e, promotion, nil
}

func (uc *eventUseCaseImpl) JoinWaitlist(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error) {
	e, _, err := uc.attend(ctx, id, func(e *event.Event, now time.Time) (event.Promotion, error) {
		_, err := e.JoinWaitlist(actor.MemberID, now)
		return event.Promotion{}, err
	})
	return e, err
}

func (uc *eventUseCaseImpl) LeaveWaitlist(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error) {
	e, _, err := uc.attend(ctx, id, func(e *event.Event, now time.Time) (event.Promotion, error) {
		e.LeaveWaitlist(actor.MemberID, now)
		return event.Promotion{}, nil
	})
	return e, err
}

func (uc *eventUseCaseImpl) PromoteWaitlist(ctx context.Context, id uuid.UUID, count int, actor shared.Actor) (*event.Event, event.Promotion, error) {
	if count <= 0 {
		return nil, event.Promotion{}, errs.Mark(event.ErrInvalidPromoCount, errs.ErrDomainValidation)
	}
	e, promotion, err := uc.attend(ctx, id, func(e *event.Event, now time.Time) (event.Promotion, error) {
		if !actor.CanManage(e.OrganizerID()) {
			return event.Promotion{}, errs.ErrForbidden
		}
		return e.PromoteWaitlist(count, now), nil
	})
	if err != nil {
		return nil, event.Promotion{}, err
	}
	uc.announcePromotion(ctx, e, promotion)
	return e, promotion, nil
}

func (uc *eventUseCaseImpl) review(ctx context.Context, id uuid.UUID, apply func(e *event.Event, now time.Time) error) (*event.Event, error) {
	var out *event.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Events().LockByID(ctx, id)
		if err != nil {
			return mapEventErr(err)
		}
		if err := apply(e, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Events().UpdateStatus(ctx, e); err != nil {
			return mapEventErr(err)
		}
		out = e
		return nil
	})
	return out, err
}

// attend applies an attendance change to the locked event row and writes both
// member lists back in one statement.
func (uc *eventUseCaseImpl) attend(
	ctx context.Context,
	id uuid.UUID,
	apply func(e *event.Event, now time.Time) (event.Promotion, error),
) (*event.Event, event.Promotion, error) {
	var (
		out       *event.Event
		promotion event.Promotion
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Events().LockByID(ctx, id)
		if err != nil {
			return mapEventErr(err)
		}
		p, err := apply(e, uc.clock.Now())
		if err != nil {
			if errs.Is(err, errs.ErrForbidden) {
				return err
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Events().SaveAttendance(ctx, e.ID(), e.Attendees(), e.Waitlist()); err != nil {
			return mapEventErr(err)
		}
		out, promotion = e, p
		return nil
	})
	if err != nil {
		return nil, event.Promotion{}, err
	}
	return out, promotion, nil
}

func (uc *eventUseCaseImpl) announcePromotion(ctx context.Context, e *event.Event, p event.Promotion) {
	if len(p.Promoted) == 0 {
		return
	}
	metrics.RecordPromotions(len(p.Promoted))
	uc.publisher.Publish(ctx, notify.New(
		notify.KindWaitlistPromoted,
		e.ID(),
		p.Promoted,
		"A spot opened up: you are now attending "+e.Title(),
		uc.clock.Now(),
	).With("starts_at", e.StartsAt()))
}

func mapEventErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrEventNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
