package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/observability"
)

const identityKey = "auth_identity"

// Authenticator extracts and validates tokens from incoming requests.
type Authenticator struct {
	tokens     *TokenManager
	cookieName string
	metrics    *observability.Metrics
}

// NewAuthenticator constructs the request authenticator.
func NewAuthenticator(tokens *TokenManager, cookieName string, metrics *observability.Metrics) *Authenticator {
	if cookieName == "" {
		cookieName = "jwt"
	}
	return &Authenticator{tokens: tokens, cookieName: cookieName, metrics: metrics}
}

// CookieName returns the name of the token cookie.
func (a *Authenticator) CookieName() string {
	return a.cookieName
}

// Authenticate verifies the request's token and reconstructs the caller identity.
// It never refreshes or extends the token.
func (a *Authenticator) Authenticate(c *fiber.Ctx) (*domain.Identity, error) {
	raw := a.extractToken(c)
	if raw == "" {
		return nil, ErrTokenMissing
	}
	claims, err := a.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	identity := claims.Identity()
	return &identity, nil
}

// Required rejects requests that do not carry a valid token.
func (a *Authenticator) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := a.Authenticate(c)
		if err != nil {
			a.metrics.RecordAuthRejection(rejectionReason(err))
			return ToDomainError(err)
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// Optional attaches the identity when a valid token is present and otherwise
// lets the request through anonymously.
func (a *Authenticator) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := a.Authenticate(c)
		if err == nil {
			c.Locals(identityKey, identity)
		} else if !errors.Is(err, ErrTokenMissing) {
			a.metrics.RecordAuthRejection(rejectionReason(err))
		}
		return c.Next()
	}
}

// extractToken prefers the cookie and falls back to a bearer header.
func (a *Authenticator) extractToken(c *fiber.Ctx) string {
	if token := c.Cookies(a.cookieName); token != "" {
		return token
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityFromContext retrieves the authenticated identity, if any.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok && identity != nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return "missing"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenInvalid):
		return "invalid"
	default:
		return "error"
	}
}
