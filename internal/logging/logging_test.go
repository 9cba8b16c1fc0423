package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "carbonfoot.log")

	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	assert.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)
	assert.Equal(t, zerolog.DebugLevel, result.Logger.GetLevel())

	result.Logger.Info().Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewLoggerWithPath_FallsBackWithoutFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "warn", Output: OutputFile})
	t.Cleanup(func() { _ = result.Close() })

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.Equal(t, zerolog.WarnLevel, result.Logger.GetLevel())
}

func TestNewLoggerWithPath_InvalidLevel(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "loud"})
	assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
}

func TestLogPathResult_CloseIsIdempotent(t *testing.T) {
	var nilResult *LogPathResult
	require.NoError(t, nilResult.Close())

	result := NewLoggerWithPath(Config{})
	require.NoError(t, result.Close())
	require.NoError(t, result.Close())
}

func TestTraceHook_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(traceHook{})

	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
	logger.Info().Ctx(ctx).Msg("with trace")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "01TESTTRACE", line[TraceIDField])

	buf.Reset()
	logger.Info().Msg("without trace")
	assert.NotContains(t, buf.String(), TraceIDField)
}

func TestGetOrGenerateTraceID(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "existing")
	assert.Equal(t, "existing", GetOrGenerateTraceID(ctx))

	generated := GetOrGenerateTraceID(context.Background())
	assert.Len(t, generated, 26)
	assert.NotEqual(t, generated, GetOrGenerateTraceID(context.Background()))
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(zerolog.New(&buf), "estimate")
	logger.Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"component":"estimate"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")

	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}
