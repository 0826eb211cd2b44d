package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hub-booking/internal/handler/httperr"
	"hub-booking/internal/handler/middleware"
	"hub-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errors.New("no authenticated member on request")

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+label+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryDate reads a YYYY-MM-DD query parameter, defaulting to today.
func queryDate(c *gin.Context, name string, now time.Time) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return now, true
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+", expected YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return d, true
}

func queryLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
