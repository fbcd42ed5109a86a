package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/events"
	"github.com/spec-kit/school-portal/internal/observability"
)

// LoginResult is returned on a successful login or refresh.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
}

// AuthService coordinates login, refresh and logout.
type AuthService struct {
	verifier   auth.CredentialVerifier
	tokens     *auth.TokenManager
	limiter    auth.LoginLimiter
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Verifier   auth.CredentialVerifier
	Tokens     *auth.TokenManager
	Limiter    auth.LoginLimiter
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	limiter := deps.Limiter
	if limiter == nil {
		limiter = auth.NoopLimiter{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		verifier:   deps.Verifier,
		tokens:     deps.Tokens,
		limiter:    limiter,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// Login resolves the identifier, verifies the secret and issues a token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	allowed, err := s.limiter.Allow(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.loginFailed(ctx, identifier, "", auth.ErrTooManyAttempts)
		return nil, auth.ErrTooManyAttempts
	}

	identity, err := auth.Resolve(identifier)
	if err != nil {
		s.loginFailed(ctx, identifier, "", err)
		return nil, err
	}

	if err := s.verifier.Verify(ctx, identity, password); err != nil {
		s.loginFailed(ctx, identifier, identity.Role, err)
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		s.metrics.RecordLogin("error")
		return nil, err
	}

	if err := s.limiter.Reset(ctx, identifier); err != nil {
		s.logger.Warn("reset login attempts", zap.String("identifier", identifier), zap.Error(err))
	}
	s.metrics.RecordLogin("success")
	s.publish(ctx, events.New(events.EventLoginSucceeded, identity.ID, identity.Role,
		events.TokenIssuedPayload{ExpiresAt: expiresAt}))

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// Refresh issues a new token for an already authenticated identity. The
// presented token stays valid until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, identity domain.Identity) (*LoginResult, error) {
	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventTokenRefreshed, identity.ID, identity.Role,
		events.TokenIssuedPayload{ExpiresAt: expiresAt}))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// Logout records the event. Tokens are stateless, so nothing is revoked.
func (s *AuthService) Logout(ctx context.Context, identity *domain.Identity) {
	if identity == nil {
		return
	}
	s.publish(ctx, events.New(events.EventLogout, identity.ID, identity.Role, nil))
}

func (s *AuthService) loginFailed(ctx context.Context, identifier string, role domain.Role, err error) {
	reason := failureReason(err)
	s.metrics.RecordLogin(reason)
	s.publish(ctx, events.New(events.EventLoginFailed, identifier, role,
		events.LoginFailedPayload{Reason: reason}))
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrIdentityNotResolved):
		return "identity_not_resolved"
	case errors.Is(err, auth.ErrCredentialMismatch):
		return "credential_mismatch"
	case errors.Is(err, auth.ErrAccountDisabled):
		return "account_disabled"
	case errors.Is(err, auth.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
