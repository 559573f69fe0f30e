package log

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelDebug)

	logger.With(String("component", "detector")).Warn("epa iteration cap reached",
		Int("iterations", 100),
		Float64("depth", 0.5),
		Vec2("normal", mgl64.Vec2{0, 1}),
		Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "epa iteration cap reached", entries[0].Message)

	ctx := entries[0].ContextMap()
	require.Equal(t, "detector", ctx["component"])
	require.Equal(t, int64(100), ctx["iterations"])
	require.Equal(t, 0.5, ctx["depth"])
	require.Equal(t, []interface{}{0.0, 1.0}, ctx["normal"])
	require.Equal(t, "boom", ctx["error"])
}

func TestLogger_Level(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, LevelWarn, logger.GetLevel())

	logger.SetLevel(LevelDebug)
	logger.Debug("now shown")
	require.Equal(t, 2, logs.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	require.Equal(t, "warn", LevelWarn.String())
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		NewNop().Error("discarded", String("k", "v"))
	})
}
