package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-portal/internal/domain"
)

func TestDispatcher_PublishReachesSubscribersOfType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []EventType
	d.Subscribe(EventLoginSucceeded, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})
	d.Subscribe(EventLogout, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), New(EventLoginSucceeded, "202501", domain.RoleAdmin, nil)))
	assert.Equal(t, []EventType{EventLoginSucceeded}, got)
}

func TestDispatcher_HandlerErrorsDoNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	calls := 0
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), New(EventLoginFailed, "x", "", LoginFailedPayload{Reason: "identity_not_resolved"}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNew_StampsIDAndTime(t *testing.T) {
	e := New(EventTokenRefreshed, "2025001", domain.RoleStaff, nil)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, "2025001", e.SubjectID)
}
