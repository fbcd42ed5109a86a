package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/events"
)

type fakeLimiter struct {
	mu      sync.Mutex
	allow   bool
	err     error
	allowed []string
	resets  []string
}

func (f *fakeLimiter) Allow(_ context.Context, identifier string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allowed = append(f.allowed, identifier)
	return f.allow, f.err
}

func (f *fakeLimiter) Reset(_ context.Context, identifier string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, identifier)
	return nil
}

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) handle(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeLimiter, *recorder) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", 24*time.Hour, "ldss-portal")
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher()
	rec := &recorder{}
	for _, et := range []events.EventType{
		events.EventLoginSucceeded, events.EventLoginFailed, events.EventLogout, events.EventTokenRefreshed,
	} {
		dispatcher.Subscribe(et, rec.handle)
	}

	limiter := &fakeLimiter{allow: true}
	svc := NewAuthService(AuthDependencies{
		Verifier:   auth.NewFixedSecretVerifier(auth.RoleSecrets{Admin: "LDSSadmin123", Staff: "LDSSstaff123", Learner: "LDSS2025"}),
		Tokens:     tokens,
		Limiter:    limiter,
		Dispatcher: dispatcher,
	})
	return svc, limiter, rec
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc, limiter, rec := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "202501", "LDSSadmin123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, domain.RoleAdmin, result.Identity.Role)
	assert.Equal(t, "Administrator", result.Identity.DisplayName)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.ExpiresAt, 5*time.Second)

	assert.Equal(t, []string{"202501"}, limiter.resets)
	assert.Equal(t, []events.EventType{events.EventLoginSucceeded}, rec.types())
}

func TestAuthService_LoginFailures(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		want       error
	}{
		{"unresolved identifier", "999", "LDSSadmin123", auth.ErrIdentityNotResolved},
		{"wrong staff secret", "2025001999", "wrong", auth.ErrCredentialMismatch},
		{"admin secret on learner", "202599990000", "LDSSadmin123", auth.ErrCredentialMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, limiter, rec := newAuthFixture(t)
			_, err := svc.Login(context.Background(), tt.identifier, tt.password)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, limiter.resets)
			assert.Equal(t, []events.EventType{events.EventLoginFailed}, rec.types())
		})
	}
}

func TestAuthService_LoginThrottled(t *testing.T) {
	svc, limiter, rec := newAuthFixture(t)
	limiter.allow = false

	_, err := svc.Login(context.Background(), "202501", "LDSSadmin123")
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)
	assert.Equal(t, []events.EventType{events.EventLoginFailed}, rec.types())
}

func TestAuthService_LoginLimiterError(t *testing.T) {
	svc, limiter, _ := newAuthFixture(t)
	boom := errors.New("limiter down")
	limiter.err = boom

	_, err := svc.Login(context.Background(), "202501", "LDSSadmin123")
	assert.ErrorIs(t, err, boom)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc, _, rec := newAuthFixture(t)
	identity := domain.Identity{ID: "2025001", Role: domain.RoleStaff, DepartmentID: "staff-dept", DisplayName: "Staff 2025001"}

	result, err := svc.Refresh(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, identity, result.Identity)
	assert.NotEmpty(t, result.Token)

	svc.Logout(context.Background(), &identity)
	svc.Logout(context.Background(), nil)

	assert.Equal(t, []events.EventType{events.EventTokenRefreshed, events.EventLogout}, rec.types())
}
