package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestRun_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug"), 0o600))

	code := run(context.Background(), []string{appName, "--config", path, "serve"})

	assert.Equal(t, 1, code)
}

func TestRun_InvalidLambdaProxySource(t *testing.T) {
	code := run(context.Background(), []string{appName, "lambda", "--lambda-proxy-source", "SQS"})

	assert.Equal(t, 1, code)
}

func TestRun_Commands(t *testing.T) {
	names := make([]string, 0, len(rootApp.Commands))
	for _, c := range rootApp.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"serve", "lambda", "run"}, names)
}
