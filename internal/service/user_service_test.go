package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/repository"
	apperrors "github.com/spec-kit/school-portal/pkg/util"
)

func newUserService() *UserService {
	return NewUserService(repository.NewMemoryUserRepository(), bcrypt.MinCost)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, status, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	email := "  teacher@example.com "

	user, err := svc.CreateUser(ctx, CreateUserInput{
		ID: "2025001042", Password: "pw", Role: "staff", FirstName: "Grace", LastName: "Hopper", Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceRoleTeacher, user.Role)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	require.NotNil(t, user.Email)
	assert.Equal(t, "teacher@example.com", *user.Email)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "pw"))

	_, err = svc.CreateUser(ctx, CreateUserInput{ID: "2025001042", Password: "x", Role: "TEACHER", FirstName: "a", LastName: "b"})
	requireStatus(t, err, http.StatusConflict)

	_, err = svc.CreateUser(ctx, CreateUserInput{ID: "2025001043", Password: "x", Role: "janitor", FirstName: "a", LastName: "b"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.CreateUser(ctx, CreateUserInput{ID: "20x5", Password: "x", Role: "ADMIN", FirstName: "a", LastName: "b"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestUserService_StatusAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	_, err := svc.CreateUser(ctx, CreateUserInput{ID: "202599990000", Password: "pw", Role: "STUDENT", FirstName: "a", LastName: "b"})
	require.NoError(t, err)

	user, err := svc.UpdateStatus(ctx, "202599990000", "Inactive")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusInactive, user.Status)

	_, err = svc.UpdateStatus(ctx, "202599990000", "paused")
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.UpdateStatus(ctx, "202599990001", "active")
	requireStatus(t, err, http.StatusNotFound)

	require.NoError(t, svc.DeleteUser(ctx, "202599990000"))
	requireStatus(t, svc.DeleteUser(ctx, "202599990000"), http.StatusNotFound)

	_, err = svc.GetUser(ctx, "202599990000")
	requireStatus(t, err, http.StatusNotFound)
}

func TestUserService_SeedDefaultsAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()
	secrets := auth.RoleSecrets{Admin: "LDSSadmin123", Staff: "LDSSstaff123", Learner: "LDSS2025"}

	first, err := svc.SeedDefaults(ctx, secrets)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"202501", "2025001", "202500123456"}, first.Created)
	assert.Empty(t, first.Skipped)

	second, err := svc.SeedDefaults(ctx, secrets)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Len(t, second.Skipped, 3)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, UserStats{TotalUsers: 3, AdminCount: 1, StaffCount: 1, LearnerCount: 1}, *stats)

	students, err := svc.ListUsersByRole(ctx, "learner", 0, 0)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "202500123456", students[0].ID)

	_, err = svc.ListUsersByRole(ctx, "guest", 0, 0)
	requireStatus(t, err, http.StatusBadRequest)

	all, err := svc.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
