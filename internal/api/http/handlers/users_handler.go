package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-portal/internal/api/dto"
	"github.com/spec-kit/school-portal/internal/service"
	apperrors "github.com/spec-kit/school-portal/pkg/util"
)

// UsersHandler exposes admin account management.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Create handles POST /api/admin/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.CreateUser(c.UserContext(), service.CreateUserInput{
		ID:        req.ID,
		Password:  req.Password,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewUserResponse(user),
		"message": "User created successfully",
	})
}

// List handles GET /api/admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext(), c.QueryInt("limit", 0), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewUserResponses(users),
	})
}

// ListByRole handles GET /api/admin/users/role/:role.
func (h *UsersHandler) ListByRole(c *fiber.Ctx) error {
	users, err := h.users.ListUsersByRole(c.UserContext(), c.Params("role"), c.QueryInt("limit", 0), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewUserResponses(users),
	})
}

// UpdateStatus handles PATCH /api/admin/users/:userId/status.
func (h *UsersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateStatus(c.UserContext(), c.Params("userId"), req.Status)
	if err != nil {
		return err
	}

	verb := "activated"
	if !user.Active() {
		verb = "deactivated"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewUserResponse(user),
		"message": "User " + verb + " successfully",
	})
}

// Delete handles DELETE /api/admin/users/:userId.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.DeleteUser(c.UserContext(), c.Params("userId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

// Stats handles GET /api/admin/stats.
func (h *UsersHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.users.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
