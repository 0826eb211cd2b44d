package usecase

import (
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/pkg/jwt"
	"hub-booking/internal/usecase/shared"
)

var ErrUnknownRole = errs.New("unknown role")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	switch claims.Role {
	case shared.RoleAdmin, shared.RoleMember:
	default:
		return shared.Actor{}, errs.Wrapf(ErrUnknownRole, "role %q", claims.Role)
	}
	return shared.Actor{MemberID: claims.MemberID, Role: claims.Role}, nil
}
