package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/observability"
)

// RoleSet is the set of resource roles a route admits.
type RoleSet map[domain.ResourceRole]struct{}

// NewRoleSet builds a set from the given roles.
func NewRoleSet(roles ...domain.ResourceRole) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (s RoleSet) Contains(role domain.ResourceRole) bool {
	_, ok := s[role]
	return ok
}

// Authorize decides whether identity may proceed. The token role is translated
// into the resource vocabulary before the membership check; an empty set admits
// nobody.
func Authorize(identity *domain.Identity, required RoleSet) error {
	if identity == nil {
		return ErrAuthenticationRequired
	}
	role, ok := identity.Role.ResourceRole()
	if !ok || !required.Contains(role) {
		return ErrInsufficientPermissions
	}
	return nil
}

// ShapeGuard re-checks an identity's identifier against its role's pattern,
// independently of Resolve.
type ShapeGuard struct {
	Name    string
	Message string
	Match   func(identity domain.Identity) bool
}

// Check returns a *ShapeError when the guard does not match.
func (g ShapeGuard) Check(identity *domain.Identity) error {
	if identity == nil || !g.Match(*identity) {
		return &ShapeError{Message: g.Message}
	}
	return nil
}

var (
	AdminShape = ShapeGuard{
		Name:    "admin",
		Message: "Admin access required",
		Match: func(id domain.Identity) bool {
			return id.Role == domain.RoleAdmin && id.ID == AdminIdentifier
		},
	}
	StaffShape = ShapeGuard{
		Name:    "staff",
		Message: "Staff access required",
		Match: func(id domain.Identity) bool {
			return id.Role == domain.RoleStaff &&
				strings.HasPrefix(id.ID, StaffPrefix) && len(id.ID) >= StaffMinLength
		},
	}
	LearnerShape = ShapeGuard{
		Name:    "learner",
		Message: "Learner access required",
		Match: func(id domain.Identity) bool {
			return id.Role == domain.RoleLearner &&
				strings.HasPrefix(id.ID, LearnerPrefix) && len(id.ID) >= LearnerMinLength
		},
	}
)

// Gate builds fiber handlers around Authorize. A nil *Gate records nothing.
type Gate struct {
	metrics *observability.Metrics
}

// NewGate constructs a gate that reports denials to metrics.
func NewGate(metrics *observability.Metrics) *Gate {
	return &Gate{metrics: metrics}
}

// RequireRoles admits identities whose mapped role is in roles.
func (g *Gate) RequireRoles(roles ...domain.ResourceRole) fiber.Handler {
	required := NewRoleSet(roles...)
	return g.handler("roles", required, nil)
}

// RequireAuthenticated admits any authenticated identity.
func (g *Gate) RequireAuthenticated() fiber.Handler {
	return g.handler("authenticated", NewRoleSet(
		domain.ResourceRoleAdmin,
		domain.ResourceRoleTeacher,
		domain.ResourceRoleStudent,
	), nil)
}

// RequireAdmin combines the ADMIN role check with AdminShape.
func (g *Gate) RequireAdmin() fiber.Handler {
	return g.handler(AdminShape.Name, NewRoleSet(domain.ResourceRoleAdmin), &AdminShape)
}

// RequireStaff combines the TEACHER role check with StaffShape.
func (g *Gate) RequireStaff() fiber.Handler {
	return g.handler(StaffShape.Name, NewRoleSet(domain.ResourceRoleTeacher), &StaffShape)
}

// RequireLearner combines the STUDENT role check with LearnerShape.
func (g *Gate) RequireLearner() fiber.Handler {
	return g.handler(LearnerShape.Name, NewRoleSet(domain.ResourceRoleStudent), &LearnerShape)
}

func (g *Gate) handler(name string, required RoleSet, guard *ShapeGuard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		err := Authorize(identity, required)
		if err == nil && guard != nil {
			err = guard.Check(identity)
		}
		if err != nil {
			if g != nil {
				g.metrics.RecordAuthorizationDenial(name)
			}
			return ToDomainError(err)
		}
		return c.Next()
	}
}
