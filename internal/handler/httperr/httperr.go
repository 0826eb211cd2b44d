package httperr

import (
	"log/slog"
	"net/http"
	"time"

	"hub-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// stackLines bounds the stack attached to server error logs.
const stackLines = 12

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

// Detail carries structured context for a rejected request.
type Detail struct {
	Conflicts []ConflictRange `json:"conflicts,omitempty"`
}

type ConflictRange struct {
	BookingID string    `json:"booking_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// AbortWithError writes the public response and keeps err on the context.
// Server errors are logged with the head of their stack.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail *Detail) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines),
		)
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
