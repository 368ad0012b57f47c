package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates logger with valid config", func(t *testing.T) {
		cfg := &Config{Level: "debug", Format: "json", Output: "stdout"}
		l, err := New(cfg)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := &Config{Level: "bogus", Format: "console", Output: "stdout"}
		l, err := New(cfg)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		l, err := NewForEnvironment(env)
		require.NoError(t, err, "env=%q", env)
		require.NotNil(t, l)
	}
}

func TestContextHelpers(t *testing.T) {
	base, err := New(DefaultConfig())
	require.NoError(t, err)

	t.Run("logger round-trips through context", func(t *testing.T) {
		ctx := WithContext(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
	})

	t.Run("missing logger yields nop", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
	})

	t.Run("request id round-trips", func(t *testing.T) {
		ctx, enriched := WithRequestID(context.Background(), base, "req-123")
		assert.Equal(t, "req-123", GetRequestID(ctx))
		assert.NotNil(t, enriched)
		assert.Empty(t, GetRequestID(context.Background()))
	})

	t.Run("owner id round-trips", func(t *testing.T) {
		ctx, _ := WithOwnerID(context.Background(), base, "owner-1")
		assert.Equal(t, "owner-1", GetOwnerID(ctx))
	})
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"silent", "silent"},
		{"error", "error"},
		{"warn", "warn"},
		{"info", "info"},
		{"debug", "info"},
		{"anything", "warn"},
	}
	names := map[int]string{1: "silent", 2: "error", 3: "warn", 4: "info"}
	for _, tt := range tests {
		got := MapGormLogLevel(tt.in)
		assert.Equal(t, tt.want, names[int(got)], "input %q", tt.in)
	}
}
