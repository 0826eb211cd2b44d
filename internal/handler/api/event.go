package api

import (
	"context"
	"net/http"

	"hub-booking/internal/domain/event"
	reqdto "hub-booking/internal/handler/dto/request"
	resdto "hub-booking/internal/handler/dto/response"
	"hub-booking/internal/handler/httperr"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/queries"
	"hub-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	cmds commands.EventCommands
	q    queries.EventQueries
}

func NewEventHandler(cmds commands.EventCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q}
}

// @Summary List upcoming events
// @Tags events
// @Produce json
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	views, err := h.q.ListUpcoming(c.Request.Context(), queryLimit(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Propose event
// @Description Any member may propose an event; it stays pending until an admin approves it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	e, err := h.cmds.CreateEvent(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/events/"+e.ID().String())
	c.JSON(http.StatusCreated, resdto.FromEvent(e))
}

// @Summary Approve event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /events/{id}/approve [post]
func (h *EventHandler) Approve(c *gin.Context) {
	h.apply(c, h.cmds.Approve)
}

// @Summary Reject event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.RejectEventRequest false "Reason"
// @Success 200 {object} resdto.EventResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /events/{id}/reject [post]
func (h *EventHandler) Reject(c *gin.Context) {
	var req reqdto.RejectEventRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}
	h.apply(c, func(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error) {
		return h.cmds.Reject(ctx, id, req.Reason, actor)
	})
}

// @Summary Register for event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /events/{id}/register [post]
func (h *EventHandler) Register(c *gin.Context) {
	h.apply(c, h.cmds.Register)
}

// @Summary Unregister from event
// @Description Frees the spot and promotes the first waitlisted member into it.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /events/{id}/register [delete]
func (h *EventHandler) Unregister(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	e, promotion, err := h.cmds.Unregister(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(e, promotion))
}

// @Summary Join waitlist
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /events/{id}/waitlist [post]
func (h *EventHandler) JoinWaitlist(c *gin.Context) {
	h.apply(c, h.cmds.JoinWaitlist)
}

// @Summary Leave waitlist
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /events/{id}/waitlist [delete]
func (h *EventHandler) LeaveWaitlist(c *gin.Context) {
	h.apply(c, h.cmds.LeaveWaitlist)
}

// @Summary Promote from waitlist
// @Description Organizer or admin moves up to count members (default 1) from the waitlist into free spots.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.PromoteWaitlistRequest false "Count"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id}/waitlist/promote [post]
func (h *EventHandler) PromoteWaitlist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	var req reqdto.PromoteWaitlistRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}
	e, promotion, err := h.cmds.PromoteWaitlist(c.Request.Context(), id, req.GetCount(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(e, promotion))
}

type eventAction func(ctx context.Context, id uuid.UUID, actor shared.Actor) (*event.Event, error)

func (h *EventHandler) apply(c *gin.Context, action eventAction) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}
	e, err := action(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvent(e))
}
