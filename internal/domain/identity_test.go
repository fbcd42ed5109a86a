package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleVocabularyIsBidirectional(t *testing.T) {
	pairs := map[Role]ResourceRole{
		RoleAdmin:   ResourceRoleAdmin,
		RoleStaff:   ResourceRoleTeacher,
		RoleLearner: ResourceRoleStudent,
	}

	for role, resource := range pairs {
		got, ok := role.ResourceRole()
		assert.True(t, ok)
		assert.Equal(t, resource, got)

		back, ok := resource.TokenRole()
		assert.True(t, ok)
		assert.Equal(t, role, back)
	}
}

func TestUnknownRolesDoNotMap(t *testing.T) {
	_, ok := Role("TEACHER").ResourceRole()
	assert.False(t, ok)
	assert.False(t, Role("TEACHER").Valid())

	_, ok = ResourceRole("STAFF").TokenRole()
	assert.False(t, ok)
	assert.False(t, ResourceRole("LEARNER").Valid())
}

func TestParseResourceRole(t *testing.T) {
	tests := []struct {
		in   string
		want ResourceRole
		ok   bool
	}{
		{"ADMIN", ResourceRoleAdmin, true},
		{"teacher", ResourceRoleTeacher, true},
		{"staff", ResourceRoleTeacher, true},
		{" Learner ", ResourceRoleStudent, true},
		{"STUDENT", ResourceRoleStudent, true},
		{"parent", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseResourceRole(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
