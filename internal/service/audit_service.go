package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/school-portal/internal/events"
)

// AuditService writes auth lifecycle events to the structured log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventLogout, a.handleLogout)
	a.dispatcher.Subscribe(events.EventTokenRefreshed, a.handleTokenRefreshed)
}

func (a *AuditService) handleLoginSucceeded(_ context.Context, event events.Event) error {
	a.logger.Info("LoginSucceeded", a.fields(event)...)
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	a.logger.Warn("LoginFailed", a.fields(event)...)
	return nil
}

func (a *AuditService) handleLogout(_ context.Context, event events.Event) error {
	a.logger.Info("Logout", a.fields(event)...)
	return nil
}

func (a *AuditService) handleTokenRefreshed(_ context.Context, event events.Event) error {
	a.logger.Info("TokenRefreshed", a.fields(event)...)
	return nil
}

func (a *AuditService) fields(event events.Event) []zap.Field {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("subject_id", event.SubjectID),
		zap.Time("at", event.Timestamp),
	}
	if event.Role != "" {
		fields = append(fields, zap.String("role", string(event.Role)))
	}
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}
	return fields
}
