package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"", FormatProduction, FormatDevelopment} {
		log, err := New(Options{Level: "debug", Format: format, App: "replica"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn").Level())
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("").Level())
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose").Level())
}

func TestLoggerFromContext(t *testing.T) {
	log := zap.NewNop()

	got, err := LoggerFromContext(ContextWithLogger(context.Background(), log))
	require.NoError(t, err)
	assert.Same(t, log, got)

	_, err = LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLoggerInContext)
}

func TestNamedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	NamedLogger("handler")(zap.New(core)).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "handler", logs.All()[0].LoggerName)
}
