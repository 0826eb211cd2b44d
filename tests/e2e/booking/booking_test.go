//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	reqdto "hub-booking/internal/handler/dto/request"
	resdto "hub-booking/internal/handler/dto/response"
	"hub-booking/internal/pkg/patch"
	"hub-booking/internal/usecase/queries"
	"hub-booking/tests/common/authtest"
	"hub-booking/tests/common/dbtest"
	"hub-booking/tests/common/httptest"
	"hub-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	recurringURL    = "/api/bookings/recurring"
	conflictsURL    = "/api/bookings/conflicts"
	availabilityURL = "/api/amenities/%s/availability?date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
	day time.Time
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
	// A UTC midnight a couple of weeks out keeps every range in the future.
	s.day = time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 14)
}

func (s *BookingSuite) at(hour, minute int) time.Time {
	return s.day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func (s *BookingSuite) create(token string, amenityID uuid.UUID, start, end time.Time) *stdhttptest.ResponseRecorder {
	req := reqdto.CreateBookingRequest{AmenityID: amenityID, StartTime: start, EndTime: end}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, token)
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("half-open ranges: overlap rejected, touching accepted", func() {
		t := s.T()
		amenityID := dbtest.CreateTestAmenity(t, s.DB, "Focus Room")
		token := s.jwt.TokenFor(t, authtest.Member())

		w := s.create(token, amenityID, s.at(10, 0), s.at(11, 0))
		var first resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)
		require.Equal(t, "pending", first.Status)

		w = s.create(token, amenityID, s.at(10, 30), s.at(11, 30))
		httptest.AssertConflicts(t, w, first.ID)

		w = s.create(token, amenityID, s.at(11, 0), s.at(12, 0))
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
	})

	s.Run("cancelled bookings free their range", func() {
		t := s.T()
		amenityID := dbtest.CreateTestAmenity(t, s.DB, "Podcast Booth")
		dbtest.CreateTestBooking(t, s.DB, amenityID, uuid.New(), s.at(9, 0), s.at(10, 0), "cancelled")

		w := s.create(s.jwt.TokenFor(t, authtest.Member()), amenityID, s.at(9, 0), s.at(10, 0))
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
	})

	s.Run("unknown amenity", func() {
		t := s.T()
		w := s.create(s.jwt.TokenFor(t, authtest.Member()), uuid.New(), s.at(9, 0), s.at(10, 0))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Amenity not found")
	})

	s.Run("exclusion constraint backs the application check", func() {
		t := s.T()
		amenityID := dbtest.CreateTestAmenity(t, s.DB, "Board Room")
		dbtest.CreateTestBooking(t, s.DB, amenityID, uuid.New(), s.at(13, 0), s.at(14, 0), "approved")

		_, err := s.DB.Exec(t.Context(), `
			INSERT INTO bookings (id, amenity_id, member_id, start_time, end_time, status)
			VALUES ($1, $2, $3, $4, $5, 'pending')`,
			uuid.New(), amenityID, uuid.New(), s.at(13, 30), s.at(14, 30))

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23P01", pgErr.Code)
	})
}

func (s *BookingSuite) TestRecurringBooking() {
	s.Run("weekly series skips the taken week", func() {
		t := s.T()
		amenityID := dbtest.CreateTestAmenity(t, s.DB, "Studio")
		member := authtest.Member()
		dbtest.CreateTestBooking(t, s.DB, amenityID, uuid.New(), s.at(10, 0).AddDate(0, 0, 7), s.at(11, 0).AddDate(0, 0, 7), "approved")

		req := reqdto.CreateRecurringBookingRequest{
			CreateBookingRequest: reqdto.CreateBookingRequest{AmenityID: amenityID, StartTime: s.at(10, 0), EndTime: s.at(11, 0)},
			Recurrence:           reqdto.RecurrenceRequest{Frequency: "weekly", Occurrences: patch.Ptr(4)},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, recurringURL, req, s.jwt.TokenFor(t, member))

		var body resdto.RecurringBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		require.Equal(t, 3, body.TotalCreated)
		require.Len(t, body.Skipped, 1)
		require.Equal(t, "conflict", body.Skipped[0].Reason)
		require.True(t, s.at(10, 0).AddDate(0, 0, 7).Equal(body.Skipped[0].Date))
		for _, b := range body.Bookings {
			require.Equal(t, time.Hour, b.EndTime.Sub(b.StartTime))
			require.NotNil(t, b.Recurrence)
			require.Equal(t, "weekly", b.Recurrence.Frequency)
		}
	})
}

func (s *BookingSuite) TestConflictCheckAndAvailability() {
	t := s.T()
	amenityID := dbtest.CreateTestAmenity(t, s.DB, "Phone Booth")
	taken := dbtest.CreateTestBooking(t, s.DB, amenityID, uuid.New(), s.at(9, 0), s.at(10, 0), "approved")
	token := s.jwt.TokenFor(t, authtest.Member())

	req := reqdto.ConflictCheckRequest{AmenityID: amenityID, StartTime: s.at(9, 30), EndTime: s.at(10, 30), Alternatives: 2}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, req, token)

	var check resdto.ConflictCheckResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &check)
	require.True(t, check.HasConflicts)
	require.Len(t, check.Conflicts, 1)
	require.Equal(t, taken, check.Conflicts[0].BookingID)
	require.NotEmpty(t, check.Alternatives)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf(availabilityURL, amenityID, s.day.Format(time.DateOnly)), nil, "")

	var day queries.DayAvailabilityView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &day)
	require.Len(t, day.Slots, 48)
	require.Equal(t, "booked", day.Slots[18].State)
	require.Equal(t, "booked", day.Slots[19].State)
	require.True(t, day.Slots[20].Available)
}
