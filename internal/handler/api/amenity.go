package api

import (
	"net/http"

	reqdto "hub-booking/internal/handler/dto/request"
	resdto "hub-booking/internal/handler/dto/response"
	"hub-booking/internal/handler/httperr"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AmenityHandler struct {
	cmds commands.AmenityCommands
	q    queries.AmenityQueries
}

func NewAmenityHandler(cmds commands.AmenityCommands, q queries.AmenityQueries) *AmenityHandler {
	return &AmenityHandler{cmds: cmds, q: q}
}

// @Summary List amenities
// @Tags amenities
// @Produce json
// @Success 200 {array} resdto.AmenityResponse
// @Router /amenities [get]
func (h *AmenityHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenityViews(views))
}

// @Summary Get amenity
// @Tags amenities
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id} [get]
func (h *AmenityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}

// @Summary Create amenity
// @Description Admin only. Opening hours default to 08:00-18:00, Monday to Friday, 30 minute slots.
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAmenityRequest true "Amenity"
// @Success 201 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /amenities [post]
func (h *AmenityHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	a, err := h.cmds.CreateAmenity(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/amenities/"+a.ID().String())
	c.JSON(http.StatusCreated, resdto.FromAmenity(a))
}

// @Summary Set amenity availability
// @Description Admin only. Unavailable amenities reject new bookings.
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Param request body reqdto.SetAmenityAvailabilityRequest true "Availability flag"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id}/availability [patch]
func (h *AmenityHandler) SetAvailability(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "amenity")
	if !ok {
		return
	}
	var req reqdto.SetAmenityAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	a, err := h.cmds.SetAvailable(c.Request.Context(), id, *req.Available, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenity(a))
}
