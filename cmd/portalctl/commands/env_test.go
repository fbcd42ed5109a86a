package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenEnv_RequiresDatabase(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_CREDENTIAL_MODE", "fixed")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("LOG_LEVEL", "error")

	e, err := openEnv(context.Background())
	assert.Nil(t, e)
	assert.ErrorContains(t, err, "POSTGRES_DSN is required")
}
