package queries

import (
	"context"

	"hub-booking/internal/infra"
	"hub-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AmenityQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	List(ctx context.Context) ([]*AmenityView, error)
}

type amenityQueriesImpl struct {
	reader AmenityReader
}

func NewAmenityQueries(reader AmenityReader) AmenityQueries {
	return &amenityQueriesImpl{reader: reader}
}

func (q *amenityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error) {
	a, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAmenityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewAmenityView(a), nil
}

func (q *amenityQueriesImpl) List(ctx context.Context) ([]*AmenityView, error) {
	amenities, err := q.reader.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	out := make([]*AmenityView, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, NewAmenityView(a))
	}
	return out, nil
}
