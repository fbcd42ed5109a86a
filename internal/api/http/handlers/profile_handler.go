package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-portal/internal/api/dto"
	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/repository"
)

// ProfileHandler serves the role-specific profile routes.
type ProfileHandler struct {
	users repository.UserRepository
}

// NewProfileHandler constructs handler.
func NewProfileHandler(users repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get returns the caller's identity together with its stored account, when one exists.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.ToDomainError(auth.ErrAuthenticationRequired)
	}

	body := fiber.Map{"identity": identity}
	if h.users != nil {
		user, err := h.users.GetByID(c.UserContext(), identity.ID)
		switch {
		case err == nil:
			body["account"] = dto.NewUserResponse(user)
		case !errors.Is(err, repository.ErrUserNotFound):
			return err
		}
	}
	return c.JSON(fiber.Map{"success": true, "data": body})
}
