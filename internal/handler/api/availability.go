package api

import (
	"net/http"

	reqdto "hub-booking/internal/handler/dto/request"
	resdto "hub-booking/internal/handler/dto/response"
	"hub-booking/internal/handler/httperr"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	conflicts    queries.ConflictQueries
	clock        clock.Clock
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, conflicts queries.ConflictQueries, clk clock.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, conflicts: conflicts, clock: clk}
}

// @Summary Day availability
// @Description Slot grid of one day in the amenity's time zone
// @Tags availability
// @Produce json
// @Param id path string true "Amenity ID"
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} queries.DayAvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id}/availability [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}
	date, ok := queryDate(c, "date", h.clock.Now())
	if !ok {
		return
	}
	view, err := h.availability.Day(c.Request.Context(), id, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Week availability
// @Description Seven consecutive day grids starting at start
// @Tags availability
// @Produce json
// @Param id path string true "Amenity ID"
// @Param start query string false "First day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} queries.DayAvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id}/availability/week [get]
func (h *AvailabilityHandler) Week(c *gin.Context) {
	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}
	start, ok := queryDate(c, "start", h.clock.Now())
	if !ok {
		return
	}
	days, err := h.availability.Week(c.Request.Context(), id, start)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// @Summary Check conflicts
// @Description Advisory pre-flight. Answers "no conflicts" when bookings cannot be loaded; the booking write re-checks.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConflictCheckRequest true "Candidate range"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings/conflicts [post]
func (h *AvailabilityHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	candidate, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
		return
	}

	ctx := c.Request.Context()
	resp := resdto.ConflictCheckResponse{
		ConflictResult: h.conflicts.Check(ctx, req.AmenityID, candidate, req.ExcludeBookingID),
	}
	if resp.HasConflicts && req.Alternatives > 0 {
		// Suggestions are best effort; the conflict answer stands on its own.
		if alts, err := h.availability.Alternatives(ctx, req.AmenityID, candidate, req.Alternatives); err == nil {
			resp.Alternatives = alts
		}
	}
	c.JSON(http.StatusOK, resp)
}
