//go:build unit

package shared_test

import (
	"testing"

	"hub-booking/internal/usecase/shared"
	"hub-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActorCanManageBooking(t *testing.T) {
	owner := uuid.New()
	b := builder.NewBookingBuilder().WithMemberID(owner).BuildStored()

	cases := []struct {
		name  string
		actor shared.Actor
		want  bool
	}{
		{"owner", shared.Actor{MemberID: owner, Role: shared.RoleMember}, true},
		{"other member", shared.Actor{MemberID: uuid.New(), Role: shared.RoleMember}, false},
		{"admin", shared.Actor{MemberID: uuid.New(), Role: shared.RoleAdmin}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.actor.CanManageBooking(b))
		})
	}
}

func TestActorCanManage(t *testing.T) {
	organizer := uuid.New()
	assert.True(t, shared.Actor{MemberID: organizer}.CanManage(organizer))
	assert.False(t, shared.Actor{MemberID: uuid.New()}.CanManage(organizer))
	assert.True(t, shared.Actor{Role: shared.RoleAdmin}.CanManage(organizer))
}
