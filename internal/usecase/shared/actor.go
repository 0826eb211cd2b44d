package shared

import (
	"hub-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Actor is the authenticated caller as seen by use cases.
type Actor struct {
	MemberID uuid.UUID
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.MemberID == ownerID
}

// CanManageBooking lets admins and the booking's member act on it.
func (a Actor) CanManageBooking(b *booking.Booking) bool {
	return a.IsAdmin() || b.IsOwnedBy(a.MemberID)
}
