package components

import (
	"hub-booking/internal/handler"
	"hub-booking/internal/handler/api"
	reqdto "hub-booking/internal/handler/dto/request"
	"hub-booking/internal/handler/middleware"
	"hub-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAmenityHandler,
		api.NewEventHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)

func NewHandlers(
	booking *api.BookingHandler,
	amenity *api.AmenityHandler,
	event *api.EventHandler,
	availability *api.AvailabilityHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:      booking,
		Amenity:      amenity,
		Event:        event,
		Availability: availability,
	}
}

func NewMiddlewares(auth *middleware.AuthMiddleware, logger *middleware.Logger, rl *middleware.RateLimiter) handler.Middlewares {
	return handler.Middlewares{Auth: auth, Logger: logger, RateLimit: rl}
}
