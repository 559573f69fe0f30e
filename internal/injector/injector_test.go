package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/narrowphase/internal/config"
	"github.com/zeusync/narrowphase/internal/core/observability/log"
	"github.com/zeusync/narrowphase/internal/core/scene"
	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/pkg/geom"
)

func TestInitializeServer(t *testing.T) {
	c := config.Default()
	c.Log.Level = "error"
	c.Server.ListenAddr = "127.0.0.1:0"

	s, err := InitializeServer(c)
	require.NoError(t, err)
	require.NotNil(t, s.Handler())
	require.False(t, s.IsRunning())
}

func TestInitializeServer_InvalidConfig(t *testing.T) {
	c := config.Default()
	c.Server.MaxMessageSize = 0

	_, err := InitializeServer(c)
	require.Error(t, err)
}

func TestInitializeRunner(t *testing.T) {
	c := config.Default()
	c.Log.Level = "error"
	c.Scene.Workers = 2

	s, err := scene.Load("../core/scene/testdata/demo.yaml")
	require.NoError(t, err)

	report, err := InitializeRunner(c).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, report.Contacts, 10)
	require.Len(t, report.Overlapping(), 5)
}

func TestInitializeDetector(t *testing.T) {
	c := config.Default()
	c.Log.Level = "error"
	c.Detector.MaxGJKIterations = 7

	d := InitializeDetector(c)
	require.Equal(t, 7, d.Options().MaxGJKIterations)
	require.NotNil(t, d.Options().Logger)
}

func TestProvideDetector_UsesLogger(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := config.Default()
	c.Detector.MaxGJKIterations = 1

	d := ProvideDetector(c, log.NewWithCore(core, log.LevelWarn))

	box := shape.MustRectangle(2, 2)
	moved := geom.Identity()
	moved.Translate(0.5, 0.5)
	require.False(t, d.Detect(box, geom.Identity(), box, moved))
	require.Equal(t, 1, logs.FilterMessage("gjk iteration cap reached, reporting no intersection").Len())
}
