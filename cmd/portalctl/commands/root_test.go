package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := GetRootCmd()

	for _, path := range [][]string{{"seed"}, {"migrate"}, {"user", "add"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestValidateAddFlags(t *testing.T) {
	saved := addFlags
	t.Cleanup(func() { addFlags = saved })

	addFlags.id, addFlags.password, addFlags.firstName, addFlags.lastName = "2025001042", "pw", "Grace", "Hopper"

	addFlags.role = ""
	assert.Error(t, validateAddFlags())

	addFlags.role = "janitor"
	assert.ErrorContains(t, validateAddFlags(), "unknown role")

	addFlags.role = "learner"
	assert.NoError(t, validateAddFlags())
}
