//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hub-booking/internal/domain/event"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/shared"
	"hub-booking/tests/common/builder"
	"hub-booking/tests/common/testutil"
	notifymock "hub-booking/tests/mock/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type eventFixture struct {
	uowFixture
	uc        commands.EventCommands
	publisher *notifymock.MockPublisher
}

func newEventFixture(t *testing.T) eventFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := eventFixture{
		uowFixture: newUoWFixture(ctrl),
		publisher:  notifymock.NewMockPublisher(ctrl),
	}
	f.uc = commands.NewEventUseCase(f.uow, f.publisher, clock.NewFixedClock(jan6))
	return f
}

func TestEventCommands_Unregister(t *testing.T) {
	members := builder.NewMemberIDs(4)
	leaving, a, b, c := members[0], members[1], members[2], members[3]

	t.Run("freed spot goes to the head of the waitlist", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithCapacity(1).WithAttendees(leaving).WithWaitlist(a, b, c).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), []uuid.UUID{a}, []uuid.UUID{b, c}).Return(nil)

		var sent notify.Notification
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notify.Notification) { sent = n })

		updated, promotion, err := f.uc.Unregister(context.Background(), ev.ID(), shared.Actor{MemberID: leaving, Role: shared.RoleMember})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{a}, promotion.Promoted)
		assert.Equal(t, []uuid.UUID{b, c}, promotion.RemainingWaitlist)
		assert.Equal(t, []uuid.UUID{a}, updated.Attendees())
		assert.Equal(t, notify.KindWaitlistPromoted, sent.Kind)
		assert.Equal(t, []uuid.UUID{a}, sent.Recipients)
	})

	t.Run("several free spots drain the queue in order", func(t *testing.T) {
		f := newEventFixture(t)
		stays := uuid.New()
		ev := builder.NewEventBuilder().WithCapacity(4).WithAttendees(leaving, stays).WithWaitlist(a, b, c).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), []uuid.UUID{stays, a, b, c}, gomock.Len(0)).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
			assert.Equal(t, []uuid.UUID{a, b, c}, n.Recipients)
		})

		_, promotion, err := f.uc.Unregister(context.Background(), ev.ID(), shared.Actor{MemberID: leaving})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b, c}, promotion.Promoted)
		assert.Empty(t, promotion.RemainingWaitlist)
	})

	t.Run("unlimited event keeps its queue", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithCapacity(0).WithAttendees(leaving, b).WithWaitlist(a).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), []uuid.UUID{b}, []uuid.UUID{a}).Return(nil)

		_, promotion, err := f.uc.Unregister(context.Background(), ev.ID(), shared.Actor{MemberID: leaving})
		require.NoError(t, err)
		assert.Empty(t, promotion.Promoted)
	})

	t.Run("empty waitlist promotes nobody and sends nothing", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithCapacity(2).WithAttendees(leaving, a).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), []uuid.UUID{a}, gomock.Len(0)).Return(nil)

		_, promotion, err := f.uc.Unregister(context.Background(), ev.ID(), shared.Actor{MemberID: leaving})
		require.NoError(t, err)
		assert.Empty(t, promotion.Promoted)
	})

	t.Run("not attending", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithAttendees(a).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)

		_, _, err := f.uc.Unregister(context.Background(), ev.ID(), shared.Actor{MemberID: leaving})
		testutil.AssertErrorIs(t, err, event.ErrNotAttending)
		testutil.AssertErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestEventCommands_Register(t *testing.T) {
	t.Run("taking the last spot notifies the organizer", func(t *testing.T) {
		f := newEventFixture(t)
		members := builder.NewMemberIDs(2)
		ev := builder.NewEventBuilder().WithCapacity(2).WithAttendees(members[0]).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), members, gomock.Len(0)).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
			assert.Equal(t, notify.KindEventFull, n.Kind)
			assert.Equal(t, []uuid.UUID{ev.OrganizerID()}, n.Recipients)
		})

		updated, err := f.uc.Register(context.Background(), ev.ID(), shared.Actor{MemberID: members[1]})
		require.NoError(t, err)
		assert.True(t, updated.IsFull())
	})

	t.Run("full event rejects registration", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithCapacity(1).WithAttendeeCount(1).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)

		_, err := f.uc.Register(context.Background(), ev.ID(), shared.Actor{MemberID: uuid.New()})
		testutil.AssertErrorIs(t, err, event.ErrEventFull)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newEventFixture(t)
		id := uuid.New()
		f.events.EXPECT().LockByID(gomock.Any(), id).Return(nil, notFound("event"))

		_, err := f.uc.Register(context.Background(), id, shared.Actor{MemberID: uuid.New()})
		testutil.AssertErrorIs(t, err, errs.ErrEventNotFound)
	})
}

func TestEventCommands_PromoteWaitlist(t *testing.T) {
	organizer := uuid.New()

	t.Run("promotes no more than the open spots", func(t *testing.T) {
		f := newEventFixture(t)
		waiting := builder.NewMemberIDs(3)
		ev := builder.NewEventBuilder().
			With(func(e *builder.EventBuilder) { e.OrganizerID = organizer }).
			WithCapacity(10).WithAttendeeCount(9).WithWaitlist(waiting...).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), gomock.Len(10), waiting[1:]).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, promotion, err := f.uc.PromoteWaitlist(context.Background(), ev.ID(), 5, shared.Actor{MemberID: organizer})
		require.NoError(t, err)
		assert.Equal(t, waiting[:1], promotion.Promoted)
		assert.Equal(t, waiting[1:], promotion.RemainingWaitlist)
	})

	t.Run("only the organizer or an admin may promote", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithWaitlist(uuid.New()).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)

		_, _, err := f.uc.PromoteWaitlist(context.Background(), ev.ID(), 1, shared.Actor{MemberID: uuid.New()})
		testutil.AssertErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("non-positive count", func(t *testing.T) {
		f := newEventFixture(t)
		_, _, err := f.uc.PromoteWaitlist(context.Background(), uuid.New(), 0, shared.Actor{MemberID: organizer, Role: shared.RoleAdmin})
		testutil.AssertErrorIs(t, err, event.ErrInvalidPromoCount)
	})
}

func TestEventCommands_Waitlist(t *testing.T) {
	t.Run("joining twice keeps one entry", func(t *testing.T) {
		f := newEventFixture(t)
		member := uuid.New()
		ev := builder.NewEventBuilder().WithCapacity(1).WithAttendeeCount(1).WithWaitlist(member).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), gomock.Len(1), []uuid.UUID{member}).Return(nil)

		updated, err := f.uc.JoinWaitlist(context.Background(), ev.ID(), shared.Actor{MemberID: member})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{member}, updated.Waitlist())
	})

	t.Run("attendees cannot join the waitlist", func(t *testing.T) {
		f := newEventFixture(t)
		member := uuid.New()
		ev := builder.NewEventBuilder().WithAttendees(member).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)

		_, err := f.uc.JoinWaitlist(context.Background(), ev.ID(), shared.Actor{MemberID: member})
		testutil.AssertErrorIs(t, err, event.ErrAlreadyAttending)
	})

	t.Run("leaving removes the member", func(t *testing.T) {
		f := newEventFixture(t)
		members := builder.NewMemberIDs(2)
		ev := builder.NewEventBuilder().WithCapacity(1).WithAttendeeCount(1).WithWaitlist(members...).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().SaveAttendance(gomock.Any(), ev.ID(), gomock.Any(), members[1:]).Return(nil)

		updated, err := f.uc.LeaveWaitlist(context.Background(), ev.ID(), shared.Actor{MemberID: members[0]})
		require.NoError(t, err)
		assert.Equal(t, members[1:], updated.Waitlist())
	})
}

func TestEventCommands_Review(t *testing.T) {
	t.Run("approve requires an admin", func(t *testing.T) {
		f := newEventFixture(t)
		_, err := f.uc.Approve(context.Background(), uuid.New(), shared.Actor{MemberID: uuid.New()})
		testutil.AssertErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("admin rejects a pending event with a reason", func(t *testing.T) {
		f := newEventFixture(t)
		ev := builder.NewEventBuilder().WithStatus(event.StatusPending).MustBuildStored()
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.events.EXPECT().UpdateStatus(gomock.Any(), ev).Return(nil)

		updated, err := f.uc.Reject(context.Background(), ev.ID(), " clashes with the townhall ", shared.Actor{MemberID: uuid.New(), Role: shared.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, event.StatusRejected, updated.Status())
		assert.Equal(t, "clashes with the townhall", updated.RejectionReason())
	})
}
