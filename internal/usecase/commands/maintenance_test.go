//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/domain/event"
	"hub-booking/internal/infra"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/commands"
	"hub-booking/tests/common/builder"
	"hub-booking/tests/common/testutil"
	commandsmock "hub-booking/tests/mock/commands"
	notifymock "hub-booking/tests/mock/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type maintenanceFixture struct {
	uowFixture
	uc          commands.MaintenanceCommands
	invalidator *commandsmock.MockSnapshotInvalidator
	publisher   *notifymock.MockPublisher
	now         time.Time
}

func newMaintenanceFixture(t *testing.T) maintenanceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := maintenanceFixture{
		uowFixture:  newUoWFixture(ctrl),
		invalidator: commandsmock.NewMockSnapshotInvalidator(ctrl),
		publisher:   notifymock.NewMockPublisher(ctrl),
		now:         jan6.Add(6 * time.Hour),
	}
	f.uc = commands.NewMaintenanceUseCase(
		f.uow, f.invalidator, f.publisher,
		commands.DefaultMaintenancePolicy(),
		clock.NewFixedClock(f.now),
		slog.New(slog.DiscardHandler),
	)
	return f
}

func TestMaintenanceCommands_AutoCheckout(t *testing.T) {
	t.Run("checks out overdue bookings and skips ones already handled", func(t *testing.T) {
		f := newMaintenanceFixture(t)
		overdue := builder.NewBookingBuilder().AsCheckedIn().BuildStored()
		alreadyOut := builder.NewBookingBuilder().AsCheckedIn().BuildStored()
		reloaded := builder.NewBookingBuilder().WithID(alreadyOut.ID()).WithStatus(booking.StatusCompleted).BuildStored()

		f.bookings.EXPECT().ListOverdueCheckedIn(gomock.Any(), f.now.Add(-time.Hour)).
			Return([]*booking.Booking{overdue, alreadyOut}, nil)
		f.bookings.EXPECT().LockByID(gomock.Any(), overdue.ID()).Return(overdue, nil)
		f.bookings.EXPECT().LockByID(gomock.Any(), alreadyOut.ID()).Return(reloaded, nil)
		f.bookings.EXPECT().Update(gomock.Any(), overdue).Return(nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any(), overdue.AmenityID())
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
			assert.Equal(t, notify.KindBookingCheckedOut, n.Kind)
			assert.Equal(t, true, n.Data["automatic"])
		})

		n, err := f.uc.AutoCheckout(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, booking.StatusCompleted, overdue.Status())
	})

	t.Run("one failing booking does not stop the batch", func(t *testing.T) {
		f := newMaintenanceFixture(t)
		broken := builder.NewBookingBuilder().AsCheckedIn().BuildStored()
		fine := builder.NewBookingBuilder().AsCheckedIn().BuildStored()

		f.bookings.EXPECT().ListOverdueCheckedIn(gomock.Any(), gomock.Any()).Return([]*booking.Booking{broken, fine}, nil)
		f.bookings.EXPECT().LockByID(gomock.Any(), broken.ID()).Return(nil, infra.WrapRepoErr("lock", errors.New("timeout")))
		f.bookings.EXPECT().LockByID(gomock.Any(), fine.ID()).Return(fine, nil)
		f.bookings.EXPECT().Update(gomock.Any(), fine).Return(nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any(), fine.AmenityID())
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		n, err := f.uc.AutoCheckout(context.Background())
		require.Error(t, err)
		testutil.AssertErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Equal(t, 1, n)
	})
}

func TestMaintenanceCommands_ReportStaleBookings(t *testing.T) {
	f := newMaintenanceFixture(t)
	stale := []*booking.Booking{
		builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildStored(),
		builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildStored(),
	}
	f.bookings.EXPECT().ListCompletedBefore(gomock.Any(), f.now.Add(-30*24*time.Hour), 100).Return(stale, nil)

	n, err := f.uc.ReportStaleBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMaintenanceCommands_SendEventReminders(t *testing.T) {
	f := newMaintenanceFixture(t)
	from := f.now.Add(24 * time.Hour)
	to := from.Add(time.Hour)

	attendees := builder.NewMemberIDs(2)
	upcoming := builder.NewEventBuilder().WithStartsAt(from.Add(10 * time.Minute)).WithAttendees(attendees...).MustBuildStored()
	pending := builder.NewEventBuilder().WithStartsAt(from).WithStatus(event.StatusPending).WithAttendees(uuid.New()).MustBuildStored()
	empty := builder.NewEventBuilder().WithStartsAt(from).MustBuildStored()

	f.events.EXPECT().ListStartingBetween(gomock.Any(), from, to).Return([]*event.Event{upcoming, pending, empty}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
		assert.Equal(t, notify.KindEventReminder, n.Kind)
		assert.Equal(t, upcoming.ID(), n.SubjectID)
		assert.Equal(t, attendees, n.Recipients)
	})

	sent, err := f.uc.SendEventReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}
