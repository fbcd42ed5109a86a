package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/events"
)

func TestAuditService_LogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, zap.New(core)).RegisterHandlers()

	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventLoginSucceeded, "202501", domain.RoleAdmin, nil)))
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventLoginFailed, "2025001999", domain.RoleStaff,
		events.LoginFailedPayload{Reason: "credential_mismatch"})))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "LoginSucceeded", entries[0].Message)
	assert.Equal(t, "202501", entries[0].ContextMap()["subject_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "ADMIN", entries[0].ContextMap()["role"])
}
