package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every entry carries the "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", "debug")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role", "")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "empty falls back to debug", level: "", want: zerolog.DebugLevel},
		{name: "unknown falls back to debug", level: "loud", want: zerolog.DebugLevel},
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewLogger("level-role", tt.level)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNewConsoleLogger_NotNil(t *testing.T) {
	l := NewConsoleLogger("cli", "info")
	require.NotNil(t, l)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "trace_id")

	buf.Reset()
	child.Info().Msg("child")
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("attached", "yes").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), `"attached":"yes"`)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("attached", "req").Logger()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(attached.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Contains(t, buf.String(), `"attached":"req"`)
}

func TestFromContext_NeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
