package repository

import (
	"context"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/infra"
	"hub-booking/internal/infra/db"
	"hub-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	selectAmenityByID = `SELECT ` + converter.AmenityColumns + ` FROM amenities WHERE id = $1`

	lockAmenityByID = selectAmenityByID + ` FOR UPDATE`

	selectAmenities = `SELECT ` + converter.AmenityColumns + ` FROM amenities ORDER BY name, id`

	insertAmenity = `INSERT INTO amenities (` + converter.AmenityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	updateAmenity = `UPDATE amenities SET
		name = $2, type = $3, capacity = $4, description = $5, is_available = $6,
		start_hour = $7, end_hour = $8, available_days = $9, slot_minutes = $10,
		time_zone = $11, updated_at = $12
		WHERE id = $1`
)

type AmenityRepository struct {
	db db.DBTX
}

func NewAmenityRepository(db db.DBTX) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*amenity.Amenity, error) {
	return r.findOne(ctx, selectAmenityByID, id)
}

func (r *AmenityRepository) LockByID(ctx context.Context, id uuid.UUID) (*amenity.Amenity, error) {
	return r.findOne(ctx, lockAmenityByID, id)
}

func (r *AmenityRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*amenity.Amenity, error) {
	var rec converter.AmenityRecord
	if err := r.db.QueryRow(ctx, query, id).Scan(rec.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find amenity by ID", err)
	}
	a, err := converter.AmenityToDomain(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed amenity row", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]*amenity.Amenity, error) {
	rows, err := r.db.Query(ctx, selectAmenities)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.AmenityRecord, error) {
		var rec converter.AmenityRecord
		err := row.Scan(rec.ScanTargets()...)
		return rec, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err, infra.KindDBFailure)
	}

	result := make([]*amenity.Amenity, 0, len(records))
	for _, rec := range records {
		a, err := converter.AmenityToDomain(rec)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed amenity row", err, infra.KindDBFailure)
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *AmenityRepository) Create(ctx context.Context, a *amenity.Amenity) error {
	rec := converter.AmenityToRecord(a)
	if _, err := r.db.Exec(ctx, insertAmenity, rec.ScanTargets()...); err != nil {
		return infra.WrapRepoErr("failed to create amenity", err)
	}
	return nil
}

func (r *AmenityRepository) Update(ctx context.Context, a *amenity.Amenity) error {
	rec := converter.AmenityToRecord(a)
	tag, err := r.db.Exec(ctx, updateAmenity,
		rec.ID, rec.Name, rec.Type, rec.Capacity, rec.Description, rec.IsAvailable,
		rec.StartHour, rec.EndHour, rec.AvailableDays, rec.SlotMinutes, rec.TimeZone, rec.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update amenity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)
	}
	return nil
}
