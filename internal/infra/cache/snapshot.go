package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BookingSource is the authoritative lookup behind the cache.
type BookingSource interface {
	ListActiveByAmenity(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

// SnapshotCache keeps short-lived copies of the active bookings of an amenity
// for a time window. Keys embed a per-amenity version; Invalidate bumps the
// version so every cached window of that amenity is dropped at once.
type SnapshotCache struct {
	client *redis.Client
	source BookingSource
	ttl    time.Duration
	logger *slog.Logger
}

func NewSnapshotCache(client *redis.Client, source BookingSource, ttl time.Duration, logger *slog.Logger) *SnapshotCache {
	return &SnapshotCache{client: client, source: source, ttl: ttl, logger: logger}
}

type snapshotEntry struct {
	ID        uuid.UUID `json:"id"`
	AmenityID uuid.UUID `json:"amenity_id"`
	MemberID  uuid.UUID `json:"member_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
}

func versionKey(amenityID uuid.UUID) string {
	return "hub:active:ver:" + amenityID.String()
}

func windowKey(amenityID uuid.UUID, version int64, from, to time.Time) string {
	return fmt.Sprintf("hub:active:%s:%d:%d:%d", amenityID, version, from.Unix(), to.Unix())
}

func (c *SnapshotCache) ListActiveByAmenity(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	version, err := c.client.Get(ctx, versionKey(amenityID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup("error")
		c.logger.Warn("snapshot cache unavailable, reading through", "amenity_id", amenityID.String(), "error", err)
		return c.source.ListActiveByAmenity(ctx, amenityID, from, to)
	}
	key := windowKey(amenityID, version, from, to)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var entries []snapshotEntry
		if jsonErr := json.Unmarshal(raw, &entries); jsonErr == nil {
			metrics.RecordCacheLookup("hit")
			return fromEntries(entries)
		}
	} else if !errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup("error")
		c.logger.Warn("snapshot cache read failed", "key", key, "error", err)
	} else {
		metrics.RecordCacheLookup("miss")
	}

	bookings, err := c.source.ListActiveByAmenity(ctx, amenityID, from, to)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(toEntries(bookings)); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("snapshot cache write failed", "key", key, "error", err)
		}
	}
	return bookings, nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, amenityID uuid.UUID) {
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, versionKey(amenityID))
	pipe.Expire(ctx, versionKey(amenityID), 24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("snapshot cache invalidation failed", "amenity_id", amenityID.String(), "error", err)
	}
}

func toEntries(bookings []*booking.Booking) []snapshotEntry {
	entries := make([]snapshotEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, snapshotEntry{
			ID:        b.ID(),
			AmenityID: b.AmenityID(),
			MemberID:  b.MemberID(),
			Start:     b.Start(),
			End:       b.End(),
			Status:    b.Status().String(),
		})
	}
	return entries
}

func fromEntries(entries []snapshotEntry) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(entries))
	for _, e := range entries {
		status, err := booking.ParseStatus(e.Status)
		if err != nil {
			return nil, err
		}
		tr, err := booking.NewTimeRange(e.Start, e.End)
		if err != nil {
			return nil, err
		}
		out = append(out, booking.ReconstructBooking(
			e.ID, e.AmenityID, e.MemberID, tr, status, booking.NewNote(""), nil, nil, nil, time.Time{}, time.Time{},
		))
	}
	return out, nil
}

// PassThrough is used when Redis is disabled.
type PassThrough struct {
	source BookingSource
}

func NewPassThrough(source BookingSource) *PassThrough {
	return &PassThrough{source: source}
}

func (p *PassThrough) ListActiveByAmenity(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	return p.source.ListActiveByAmenity(ctx, amenityID, from, to)
}

func (p *PassThrough) Invalidate(context.Context, uuid.UUID) {}
