//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"hub-booking/internal/handler/middleware"
	"hub-booking/internal/pkg/config"
	"hub-booking/internal/pkg/jwt"
	"hub-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(memberID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) TokenFor(t *testing.T, actor shared.Actor) string {
	t.Helper()
	return h.GenerateToken(t, actor.MemberID, actor.Role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(memberID, role, -time.Minute)
	require.NoError(t, err)
	return token
}

func Member() shared.Actor {
	return shared.Actor{MemberID: uuid.New(), Role: shared.RoleMember}
}

func Admin() shared.Actor {
	return shared.Actor{MemberID: uuid.New(), Role: shared.RoleAdmin}
}

// FakeAuth stands in for the JWT middleware in handler tests: any bearer token
// authenticates as actor, a missing header is rejected.
func FakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}
