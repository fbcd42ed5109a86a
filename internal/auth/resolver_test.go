package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-portal/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		role       domain.Role
		dept       string
		display    string
	}{
		{"admin literal", "202501", domain.RoleAdmin, "admin-dept", "Administrator"},
		{"staff prefix exact", "2025001", domain.RoleStaff, "staff-dept", "Staff 2025001"},
		{"staff longer", "2025001999", domain.RoleStaff, "staff-dept", "Staff 2025001999"},
		{"learner", "202599990000", domain.RoleLearner, "learner-dept", "Learner 202599990000"},
		// Learner-length ids under the staff prefix are classified staff.
		{"staff prefix wins over learner", "202500123456", domain.RoleStaff, "staff-dept", "Staff 202500123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.identifier, got.ID)
			assert.Equal(t, tt.role, got.Role)
			assert.Equal(t, tt.dept, got.DepartmentID)
			assert.Equal(t, tt.display, got.DisplayName)
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	for _, id := range []string{
		"",
		"2025",
		"20250",
		"202502",
		"20250011a",
		"abc",
		"2025 001",
		"20259999000", // learner prefix, one digit short
		"1999001234567",
	} {
		t.Run(id, func(t *testing.T) {
			_, err := Resolve(id)
			assert.ErrorIs(t, err, ErrIdentityNotResolved)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := Resolve("2025001042")
	require.NoError(t, err)
	second, err := Resolve("2025001042")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
