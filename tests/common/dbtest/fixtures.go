//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultAmenityID is the always-open desk seeded by SeedReferenceData.
var DefaultAmenityID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

// CreateTestAmenity inserts an amenity open every day around the clock in UTC.
func CreateTestAmenity(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO amenities (id, name, type, capacity, start_hour, end_hour, available_days, slot_minutes, time_zone)
		VALUES ($1, $2, 'meeting-room', 6, 0, 24, '{0,1,2,3,4,5,6}', 30, 'UTC')`,
		id, name)
	require.NoError(t, err)
	return id
}

func CreateTestBooking(t *testing.T, db DBLike, amenityID, memberID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, amenity_id, member_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, amenityID, memberID, start, end, status)
	require.NoError(t, err)
	return id
}

// CreateTestEvent inserts an approved event with the given ordered member lists.
func CreateTestEvent(t *testing.T, db DBLike, organizerID uuid.UUID, capacity int, startsAt time.Time, attendees, waitlist []uuid.UUID) uuid.UUID {
	t.Helper()

	if attendees == nil {
		attendees = []uuid.UUID{}
	}
	if waitlist == nil {
		waitlist = []uuid.UUID{}
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO events (id, title, starts_at, capacity, organizer_id, status, attendees, waitlist)
		VALUES ($1, $2, $3, $4, $5, 'approved', $6, $7)`,
		id, fmt.Sprintf("Event %s", id.String()[:8]), startsAt, capacity, organizerID, attendees, waitlist)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO amenities (id, name, type, capacity, start_hour, end_hour, available_days, slot_minutes, time_zone)
		VALUES ($1, 'Hot Desk 1', 'desk', 1, 0, 24, '{0,1,2,3,4,5,6}', 30, 'UTC')
		ON CONFLICT (id) DO NOTHING;
	`, DefaultAmenityID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
