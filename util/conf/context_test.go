package conf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextWithConfig(t *testing.T) {
	ctx := ContextWithConfig(context.Background(), testConfig{LogLevel: "debug"})

	cfg, err := GetConfigFromContext[testConfig](ctx)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetConfigFromContext_Missing(t *testing.T) {
	_, err := GetConfigFromContext[testConfig](context.Background())
	assert.ErrorIs(t, err, ErrNoConfigInContext)
}

func TestGetConfigFromContext_WrongType(t *testing.T) {
	ctx := ContextWithConfig(context.Background(), "not a config")

	_, err := GetConfigFromContext[testConfig](ctx)
	assert.ErrorIs(t, err, ErrInvalidConfigInContext)
}
