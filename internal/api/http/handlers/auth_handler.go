package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-portal/internal/api/dto"
	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/service"
	apperrors "github.com/spec-kit/school-portal/pkg/util"
)

// CookieSettings controls the token cookie.
type CookieSettings struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// AuthHandler exposes login, logout, refresh and session endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieSettings
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie CookieSettings) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "jwt"
	}
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = auth.DefaultTokenTTL
	}
	return &AuthHandler{auth: authService, cookie: cookie}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Identifier, req.Password)
	if err != nil {
		return auth.ToDomainError(err)
	}

	h.setTokenCookie(c, result.Token)
	return c.JSON(fiber.Map{
		"success": true,
		"token":   result.Token,
		"user":    result.Identity,
		"message": "Login successful",
	})
}

// Logout handles POST /api/auth/logout. The cookie is cleared whether or not the
// caller was authenticated.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	h.auth.Logout(c.UserContext(), identity)
	h.clearTokenCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrAuthenticationRequired)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    identity,
	})
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrAuthenticationRequired)
	}

	result, err := h.auth.Refresh(c.UserContext(), *identity)
	if err != nil {
		return auth.ToDomainError(err)
	}

	h.setTokenCookie(c, result.Token)
	return c.JSON(fiber.Map{
		"success": true,
		"token":   result.Token,
		"user":    result.Identity,
		"message": "Token refreshed",
	})
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return c.JSON(fiber.Map{
			"success":       true,
			"authenticated": false,
		})
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"authenticated": true,
		"user":          identity,
	})
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge / time.Second),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
