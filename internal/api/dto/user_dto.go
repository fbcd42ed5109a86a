package dto

import (
	"time"

	"github.com/spec-kit/school-portal/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=64"`
	Password   string `json:"password" validate:"required,max=128"`
}

// CreateUserRequest payload for admin user creation.
type CreateUserRequest struct {
	ID        string  `json:"id" validate:"required,numeric,max=32"`
	Password  string  `json:"password" validate:"required,min=6,max=128"`
	Role      string  `json:"role" validate:"required"`
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
}

// UpdateStatusRequest payload for activating or deactivating an account.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive ACTIVE INACTIVE"`
}

// UserResponse is the public view of a stored account.
type UserResponse struct {
	ID        string              `json:"id"`
	Email     *string             `json:"email,omitempty"`
	Role      domain.ResourceRole `json:"role"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Phone     *string             `json:"phone,omitempty"`
	Status    domain.UserStatus   `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// NewUserResponse drops the password hash.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses maps a list of accounts.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
