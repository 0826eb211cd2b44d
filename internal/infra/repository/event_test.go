//go:build unit

package repository_test

import (
	"context"
	"testing"

	"hub-booking/internal/infra"
	"hub-booking/internal/infra/repository"
	"hub-booking/internal/infra/repository/converter"
	"hub-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_FindByIDKeepsListOrder(t *testing.T) {
	ctx := context.Background()
	attendees := builder.NewMemberIDs(3)
	waitlist := builder.NewMemberIDs(2)
	stored := builder.NewEventBuilder().WithCapacity(3).WithAttendees(attendees...).WithWaitlist(waitlist...).MustBuildStored()
	rec := converter.EventToRecord(stored)

	db := &mockDBTX{}
	db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{stored.ID()}).Return(fakeRow{src: rec.ScanTargets()})

	got, err := repository.NewEventRepository(db).FindByID(ctx, stored.ID())

	require.NoError(t, err)
	if diff := cmp.Diff(attendees, got.Attendees()); diff != "" {
		t.Errorf("attendees mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(waitlist, got.Waitlist()); diff != "" {
		t.Errorf("waitlist mismatch (-want +got):\n%s", diff)
	}
}

func TestEventRepository_SaveAttendance(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("nil lists are stored as empty arrays", func(t *testing.T) {
		db := &mockDBTX{}
		db.On("Exec", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(args []any) bool {
			attendees, ok1 := args[1].([]uuid.UUID)
			waitlist, ok2 := args[2].([]uuid.UUID)
			return args[0] == eventID && ok1 && ok2 && attendees != nil && waitlist != nil
		})).Return(tagUpdated, nil)

		require.NoError(t, repository.NewEventRepository(db).SaveAttendance(ctx, eventID, nil, nil))
		db.AssertExpectations(t)
	})

	t.Run("order is passed through", func(t *testing.T) {
		attendees := builder.NewMemberIDs(2)
		waitlist := builder.NewMemberIDs(3)
		db := &mockDBTX{}
		db.On("Exec", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(args []any) bool {
			return cmp.Equal(args[1], attendees) && cmp.Equal(args[2], waitlist)
		})).Return(tagUpdated, nil)

		require.NoError(t, repository.NewEventRepository(db).SaveAttendance(ctx, eventID, attendees, waitlist))
		db.AssertExpectations(t)
	})

	t.Run("unknown event", func(t *testing.T) {
		db := &mockDBTX{}
		db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(tagNoRows, nil)

		err := repository.NewEventRepository(db).SaveAttendance(ctx, eventID, nil, nil)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
