package commands

import (
	"context"
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpeningHoursInput struct {
	StartHour     int
	EndHour       int
	AvailableDays []time.Weekday
	SlotMinutes   int
	TimeZone      string
}

type CreateAmenityInput struct {
	Name        string
	Type        string
	Capacity    int
	Description string
	// OpeningHours falls back to the hub defaults when nil.
	OpeningHours *OpeningHoursInput
}

type AmenityCommands interface {
	CreateAmenity(ctx context.Context, input CreateAmenityInput, actor shared.Actor) (*amenity.Amenity, error)
	SetAvailable(ctx context.Context, id uuid.UUID, available bool, actor shared.Actor) (*amenity.Amenity, error)
}

type amenityUseCaseImpl struct {
	uow         shared.UnitOfWork
	defaultZone *time.Location
	clock       clock.Clock
}

func NewAmenityUseCase(uow shared.UnitOfWork, defaultZone *time.Location, clk clock.Clock) AmenityCommands {
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	return &amenityUseCaseImpl{uow: uow, defaultZone: defaultZone, clock: clk}
}

func (uc *amenityUseCaseImpl) CreateAmenity(ctx context.Context, input CreateAmenityInput, actor shared.Actor) (*amenity.Amenity, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	av, err := uc.availability(input.OpeningHours)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	a, err := amenity.NewAmenity(input.Name, amenity.Type(input.Type), input.Capacity, input.Description, av, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Amenities().Create(ctx, a); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *amenityUseCaseImpl) SetAvailable(ctx context.Context, id uuid.UUID, available bool, actor shared.Actor) (*amenity.Amenity, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var out *amenity.Amenity
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Amenities().LockByID(ctx, id)
		if err != nil {
			return mapAmenityErr(err)
		}
		a.SetAvailable(available, uc.clock.Now())
		if err := tx.Amenities().Update(ctx, a); err != nil {
			return mapAmenityErr(err)
		}
		out = a
		return nil
	})
	return out, err
}

func (uc *amenityUseCaseImpl) availability(in *OpeningHoursInput) (amenity.Availability, error) {
	if in == nil {
		return amenity.DefaultAvailability(uc.defaultZone), nil
	}
	loc := uc.defaultZone
	if in.TimeZone != "" {
		l, err := time.LoadLocation(in.TimeZone)
		if err != nil {
			return amenity.Availability{}, errs.Wrapf(err, "time zone %q", in.TimeZone)
		}
		loc = l
	}
	return amenity.NewAvailability(in.StartHour, in.EndHour, in.AvailableDays, in.SlotMinutes, loc)
}
