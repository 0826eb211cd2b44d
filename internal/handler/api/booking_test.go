//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/handler/api"
	reqdto "hub-booking/internal/handler/dto/request"
	resdto "hub-booking/internal/handler/dto/response"
	"hub-booking/internal/handler/middleware"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/shared"
	"hub-booking/tests/common/authtest"
	"hub-booking/tests/common/builder"
	"hub-booking/tests/common/httptest"
	"hub-booking/tests/common/testutil"
	commandsmock "hub-booking/tests/mock/commands"
	queriesmock "hub-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var slotStart = time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockRecurring *commandsmock.MockRecurringBookingCommands
	mockQueries   *queriesmock.MockBookingQueries
	actor         shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockRecurring = commandsmock.NewMockRecurringBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.actor = authtest.Member()

	h := api.NewBookingHandler(s.mockCommands, s.mockRecurring, s.mockQueries)
	auth := authtest.FakeAuth(&s.actor)
	s.router.POST("/bookings", auth, h.Create)
	s.router.GET("/bookings", auth, h.ListMine)
	s.router.POST("/bookings/recurring", auth, h.CreateRecurring)
	s.router.GET("/bookings/:id", auth, h.Get)
	s.router.PUT("/bookings/:id", auth, h.Reschedule)
	s.router.POST("/bookings/:id/approve", auth, h.Approve)
	s.router.POST("/bookings/:id/cancel", auth, h.Cancel)
	s.router.POST("/bookings/:id/check-in", auth, h.CheckIn)
	s.router.POST("/bookings/:id/check-out", auth, h.CheckOut)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) createRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		AmenityID: uuid.New(),
		StartTime: slotStart,
		EndTime:   slotStart.Add(time.Hour),
		Note:      "  Standup  ",
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	s.Run("success: returns 201 with the pending booking", func() {
		req := s.createRequest()
		created := builder.NewBookingBuilder().WithAmenityID(req.AmenityID).WithMemberID(s.actor.MemberID).AsPending().BuildStored()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), commands.CreateBookingInput{
			AmenityID: req.AmenityID,
			Start:     req.StartTime,
			End:       req.EndTime,
			Note:      "Standup",
		}, s.actor).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("pending", body.Status)
		httptest.AssertLocation(s.T(), rec, "/api/bookings/"+created.ID().String())
	})

	s.Run("error: 400 on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing amenity_id", mutate: testutil.Field("amenity_id", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "end before start", mutate: testutil.Field("end_time", slotStart.Add(-time.Hour).Format(time.RFC3339))},
			{name: "end equals start", mutate: testutil.Field("end_time", slotStart.Format(time.RFC3339))},
			{name: "note too long", mutate: testutil.Field("note", strings.Repeat("n", 501))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.createRequest(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 lists the conflicting ranges", func() {
		taken := builder.NewBookingBuilder().At(10, 30, 11, 30).BuildStored()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, booking.NewConflictError([]*booking.Booking{taken}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequest(), "token")
		conflicts := httptest.AssertConflicts(s.T(), rec, taken.ID())
		s.True(taken.Start().Equal(conflicts[0].StartTime))
	})

	s.Run("error: maps use case errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"constraint conflict without details", booking.NewConflictError(nil), http.StatusConflict, "already booked"},
			{"amenity missing", errs.ErrAmenityNotFound, http.StatusNotFound, "Amenity not found"},
			{"amenity disabled", errs.Mark(errs.New("off"), errs.ErrAmenityUnavailable), http.StatusConflict, "not available"},
			{"outside opening hours", errs.Mark(errs.New("closed"), errs.ErrInvalidTimeSlot), http.StatusUnprocessableEntity, "Invalid time slot"},
			{"on behalf of someone else", errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
			{"database", errs.Mark(errs.New("boom"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequest(), "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestCreateRecurring
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateRecurring() {
	url := "/bookings/recurring"
	three := 3
	req := reqdto.CreateRecurringBookingRequest{
		CreateBookingRequest: s.createRequest(),
		Recurrence:           reqdto.RecurrenceRequest{Frequency: "weekly", Occurrences: &three},
	}

	s.Run("success: reports created and skipped occurrences", func() {
		first := builder.NewBookingBuilder().BuildStored()
		third := builder.NewBookingBuilder().WithRange(slotStart.AddDate(0, 0, 14), slotStart.AddDate(0, 0, 14).Add(time.Hour)).BuildStored()
		result := &commands.RecurrenceResult{
			Created:      []*booking.Booking{first, third},
			Skipped:      []commands.SkippedOccurrence{{Date: slotStart.AddDate(0, 0, 7), Reason: commands.SkipConflict}},
			TotalCreated: 2,
		}
		s.mockRecurring.EXPECT().CreateRecurring(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ context.Context, in commands.CreateRecurringInput, _ shared.Actor) (*commands.RecurrenceResult, error) {
				s.Equal(booking.FrequencyWeekly, in.Rule.Frequency)
				s.Equal(3, *in.Rule.Occurrences)
				s.Nil(in.Rule.EndDate)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "token")

		var body resdto.RecurringBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Created 2 recurring bookings, 1 skipped", body.Message)
		s.Equal(2, body.TotalCreated)
		s.Len(body.Bookings, 2)
		s.Require().Len(body.Skipped, 1)
		s.Equal("conflict", body.Skipped[0].Reason)
	})

	s.Run("bare end date covers the whole day", func() {
		endDate := "2025-01-20"
		withEnd := req
		withEnd.Recurrence = reqdto.RecurrenceRequest{Frequency: "weekly", EndDate: &endDate}

		s.mockRecurring.EXPECT().CreateRecurring(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateRecurringInput, _ shared.Actor) (*commands.RecurrenceResult, error) {
				s.Require().NotNil(in.Rule.EndDate)
				s.True(in.Rule.Within(slotStart.AddDate(0, 0, 14)))
				s.False(in.Rule.Within(slotStart.AddDate(0, 0, 21)))
				return &commands.RecurrenceResult{}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withEnd, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 422 on unparseable end date", func() {
		bad := "next tuesday"
		withEnd := req
		withEnd.Recurrence = reqdto.RecurrenceRequest{Frequency: "weekly", EndDate: &bad}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withEnd, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid recurrence rule")
	})

	s.Run("error: 400 on unknown frequency", func() {
		body := testutil.DtoMap(s.T(), req, func(m map[string]any) {
			m["recurrence"] = map[string]any{"frequency": "yearly"}
		})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the rule is rejected", func() {
		s.mockRecurring.EXPECT().CreateRecurring(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(booking.ErrRecurrenceEndDate, booking.ErrInvalidRecurrence))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid recurrence rule")
	})

	s.Run("interrupted expansion still returns the partial tally", func() {
		s.mockRecurring.EXPECT().CreateRecurring(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.RecurrenceResult{
				Created:      []*booking.Booking{builder.NewBookingBuilder().BuildStored()},
				TotalCreated: 1,
				Interrupted:  true,
			}, context.Canceled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "token")

		var body resdto.RecurringBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Interrupted)
		s.Equal(1, body.TotalCreated)
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *BookingHandlerTestSuite) TestLifecycle() {
	b := builder.NewBookingBuilder().WithMemberID(s.actor.MemberID).BuildStored()

	s.Run("check-in returns the updated booking", func() {
		checkedIn := builder.NewBookingBuilder().WithID(b.ID()).AsCheckedIn().BuildStored()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), b.ID(), s.actor).Return(checkedIn, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID().String()+"/check-in", nil, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("checked-in", body.Status)
	})

	s.Run("invalid transition is a conflict", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), b.ID(), s.actor).
			Return(nil, errs.Mark(booking.ErrInvalidTransition, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID().String()+"/check-out", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "does not allow")
	})

	s.Run("member cannot approve", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), b.ID(), s.actor).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID().String()+"/approve", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("cancel", func() {
		cancelled := builder.NewBookingBuilder().WithID(b.ID()).AsCancelled().BuildStored()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID(), s.actor).Return(cancelled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID().String()+"/cancel", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestReschedule() {
	id := uuid.New()
	url := "/bookings/" + id.String()
	req := reqdto.RescheduleBookingRequest{StartTime: slotStart.Add(2 * time.Hour), EndTime: slotStart.Add(3 * time.Hour)}

	s.Run("success", func() {
		moved := builder.NewBookingBuilder().WithID(id).WithRange(req.StartTime, req.EndTime).BuildStored()
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), id, booking.MustTimeRange(req.StartTime, req.EndTime), s.actor).Return(moved, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(req.StartTime.Equal(body.StartTime))
	})

	s.Run("conflict with another booking", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), id, gomock.Any(), s.actor).
			Return(nil, booking.NewConflictError([]*booking.Booking{builder.NewBookingBuilder().BuildStored()}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestQueries
// ================================================================================

func (s *BookingHandlerTestSuite) TestQueries() {
	s.Run("get hides other members' bookings", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("list passes the limit through", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, 5).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=5", nil, "token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}
