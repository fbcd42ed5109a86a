package domain

import "strings"

// Role is the role label carried inside tokens.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStaff   Role = "STAFF"
	RoleLearner Role = "LEARNER"
)

// ResourceRole is the role label used by stored user records and route requirements.
type ResourceRole string

const (
	ResourceRoleAdmin   ResourceRole = "ADMIN"
	ResourceRoleTeacher ResourceRole = "TEACHER"
	ResourceRoleStudent ResourceRole = "STUDENT"
)

var (
	roleToResource = map[Role]ResourceRole{
		RoleAdmin:   ResourceRoleAdmin,
		RoleStaff:   ResourceRoleTeacher,
		RoleLearner: ResourceRoleStudent,
	}
	resourceToRole = map[ResourceRole]Role{
		ResourceRoleAdmin:   RoleAdmin,
		ResourceRoleTeacher: RoleStaff,
		ResourceRoleStudent: RoleLearner,
	}
)

// Valid reports whether r is one of the token roles.
func (r Role) Valid() bool {
	_, ok := roleToResource[r]
	return ok
}

// ResourceRole maps a token role onto the resource vocabulary.
func (r Role) ResourceRole() (ResourceRole, bool) {
	rr, ok := roleToResource[r]
	return rr, ok
}

// Valid reports whether r is one of the resource roles.
func (r ResourceRole) Valid() bool {
	_, ok := resourceToRole[r]
	return ok
}

// TokenRole maps a resource role back onto the token vocabulary.
func (r ResourceRole) TokenRole() (Role, bool) {
	role, ok := resourceToRole[r]
	return role, ok
}

// ParseResourceRole accepts a label from either vocabulary, case-insensitively,
// and returns its resource form.
func ParseResourceRole(label string) (ResourceRole, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if rr := ResourceRole(label); rr.Valid() {
		return rr, true
	}
	return Role(label).ResourceRole()
}

// Identity is the resolved caller. It is derived per login or request and never stored.
type Identity struct {
	ID           string `json:"id"`
	Role         Role   `json:"role"`
	DepartmentID string `json:"departmentId"`
	DisplayName  string `json:"name"`
}
