package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/repository"
	apperrors "github.com/spec-kit/school-portal/pkg/util"
)

// UserService manages stored accounts for administrators.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// CreateUserInput describes a new account.
type CreateUserInput struct {
	ID        string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

// UserStats are account totals per resource role.
type UserStats struct {
	TotalUsers   int `json:"totalUsers"`
	AdminCount   int `json:"adminCount"`
	StaffCount   int `json:"staffCount"`
	LearnerCount int `json:"learnerCount"`
}

// CreateUser hashes the password and stores the account.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	role, ok := domain.ParseResourceRole(input.Role)
	if !ok {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": input.Role})
	}
	id := strings.TrimSpace(input.ID)
	if !isNumeric(id) {
		return nil, apperrors.NewValidationError("id must contain only digits", map[string]any{"id": input.ID})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           id,
		Email:        normalizeOptional(input.Email),
		PasswordHash: hash,
		Role:         role,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        normalizeOptional(input.Phone),
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, apperrors.NewConflict("User with this ID already exists", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// GetUser loads a single account.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns accounts newest first.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, repository.UserFilter{Limit: limit, Offset: offset})
}

// ListUsersByRole accepts a role label from either vocabulary.
func (s *UserService) ListUsersByRole(ctx context.Context, label string, limit, offset int) ([]domain.User, error) {
	role, ok := domain.ParseResourceRole(label)
	if !ok {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": label})
	}
	return s.users.List(ctx, repository.UserFilter{Role: &role, Limit: limit, Offset: offset})
}

// UpdateStatus activates or deactivates an account. status is "active" or
// "inactive", case-insensitively.
func (s *UserService) UpdateStatus(ctx context.Context, id, status string) (*domain.User, error) {
	var next domain.UserStatus
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		next = domain.UserStatusActive
	case "inactive":
		next = domain.UserStatusInactive
	default:
		return nil, apperrors.NewValidationError("status must be active or inactive", map[string]any{"status": status})
	}

	user, err := s.users.UpdateStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// Stats returns account totals.
func (s *UserService) Stats(ctx context.Context) (*UserStats, error) {
	counts, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	stats := &UserStats{
		AdminCount:   counts[domain.ResourceRoleAdmin],
		StaffCount:   counts[domain.ResourceRoleTeacher],
		LearnerCount: counts[domain.ResourceRoleStudent],
	}
	for _, n := range counts {
		stats.TotalUsers += n
	}
	return stats, nil
}

// SeedResult reports which default accounts were created.
type SeedResult struct {
	Created []string
	Skipped []string
}

// SeedDefaults creates one account per role using the configured role secrets.
// Existing ids are left untouched.
func (s *UserService) SeedDefaults(ctx context.Context, secrets auth.RoleSecrets) (*SeedResult, error) {
	defaults := []CreateUserInput{
		{ID: auth.AdminIdentifier, Password: secrets.Admin, Role: string(domain.ResourceRoleAdmin), FirstName: "System", LastName: "Administrator"},
		{ID: auth.StaffPrefix, Password: secrets.Staff, Role: string(domain.ResourceRoleTeacher), FirstName: "Default", LastName: "Teacher"},
		{ID: "202500123456", Password: secrets.Learner, Role: string(domain.ResourceRoleStudent), FirstName: "Default", LastName: "Student"},
	}

	result := &SeedResult{}
	for _, input := range defaults {
		_, err := s.CreateUser(ctx, input)
		if err == nil {
			result.Created = append(result.Created, input.ID)
			continue
		}
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "CONFLICT" {
			result.Skipped = append(result.Skipped, input.ID)
			continue
		}
		return result, err
	}
	return result, nil
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
