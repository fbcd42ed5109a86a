package auth

import (
	"strings"

	"github.com/spec-kit/school-portal/internal/domain"
)

// Identifier shapes. The learner prefix is itself a prefix of the staff prefix,
// so checks must run admin, staff, learner in that order.
const (
	AdminIdentifier  = "202501"
	StaffPrefix      = "2025001"
	StaffMinLength   = 7
	LearnerPrefix    = "2025"
	LearnerMinLength = 12

	adminDepartment   = "admin-dept"
	staffDepartment   = "staff-dept"
	learnerDepartment = "learner-dept"
)

// Resolve classifies a login identifier by its shape and derives the identity.
func Resolve(identifier string) (domain.Identity, error) {
	if !isDigits(identifier) {
		return domain.Identity{}, ErrIdentityNotResolved
	}

	switch {
	case identifier == AdminIdentifier:
		return domain.Identity{
			ID:           identifier,
			Role:         domain.RoleAdmin,
			DepartmentID: adminDepartment,
			DisplayName:  "Administrator",
		}, nil
	case strings.HasPrefix(identifier, StaffPrefix) && len(identifier) >= StaffMinLength:
		return domain.Identity{
			ID:           identifier,
			Role:         domain.RoleStaff,
			DepartmentID: staffDepartment,
			DisplayName:  "Staff " + identifier,
		}, nil
	case strings.HasPrefix(identifier, LearnerPrefix) && len(identifier) >= LearnerMinLength:
		return domain.Identity{
			ID:           identifier,
			Role:         domain.RoleLearner,
			DepartmentID: learnerDepartment,
			DisplayName:  "Learner " + identifier,
		}, nil
	}
	return domain.Identity{}, ErrIdentityNotResolved
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
