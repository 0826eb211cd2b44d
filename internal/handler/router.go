package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hub-booking/internal/handler/api"
	"hub-booking/internal/handler/middleware"
	"hub-booking/internal/infra/metrics"
	"hub-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Amenity      *api.AmenityHandler
	Event        *api.EventHandler
	Availability *api.AvailabilityHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := mw.Auth.RequireAuth()
	requireAdmin := mw.Auth.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		amenities := apiGroup.Group("/amenities")
		{
			addRoutes(amenities, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Amenity.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Amenity.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.Day},
				{Method: http.MethodGet, Path: "/:id/availability/week", Handler: h.Availability.Week},
				{Method: http.MethodPost, Path: "", Handler: h.Amenity.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPatch, Path: "/:id/availability", Handler: h.Amenity.SetAvailability, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodPost, Path: "/recurring", Handler: h.Booking.CreateRecurring},
				{Method: http.MethodPost, Path: "/conflicts", Handler: h.Availability.CheckConflicts, Mw: []gin.HandlerFunc{mw.RateLimit.Limit()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Reschedule},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Booking.Approve, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Booking.CheckOut},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
			})

			member := events.Group("")
			member.Use(requireAuth)
			addRoutes(member, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Event.Create},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Event.Approve, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Event.Reject, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/register", Handler: h.Event.Register},
				{Method: http.MethodDelete, Path: "/:id/register", Handler: h.Event.Unregister},
				{Method: http.MethodPost, Path: "/:id/waitlist", Handler: h.Event.JoinWaitlist},
				{Method: http.MethodDelete, Path: "/:id/waitlist", Handler: h.Event.LeaveWaitlist},
				{Method: http.MethodPost, Path: "/:id/waitlist/promote", Handler: h.Event.PromoteWaitlist},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
