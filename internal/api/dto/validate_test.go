package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/school-portal/pkg/util"
)

func TestValidate_LoginRequest(t *testing.T) {
	assert.NoError(t, Validate(&LoginRequest{Identifier: "202501", Password: "x"}))

	err := Validate(&LoginRequest{Identifier: "202501"})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "password")
	assert.NotContains(t, domainErr.Details, "identifier")
}

func TestValidate_CreateUserRequest(t *testing.T) {
	bad := "not-an-email"
	err := Validate(&CreateUserRequest{ID: "20x", Password: "longenough", Role: "ADMIN", FirstName: "a", LastName: "b", Email: &bad})
	require.Error(t, err)
	details := apperrors.ToDomainError(err).Details
	assert.Contains(t, details, "id")
	assert.Contains(t, details, "email")
}

func TestValidate_UpdateStatusRequest(t *testing.T) {
	assert.NoError(t, Validate(&UpdateStatusRequest{Status: "inactive"}))
	assert.Error(t, Validate(&UpdateStatusRequest{Status: "paused"}))
}
