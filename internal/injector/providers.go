package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/narrowphase/internal/config"
	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/observability/log"
	"github.com/zeusync/narrowphase/internal/core/scene"
	"github.com/zeusync/narrowphase/internal/server"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideDetector,
	ProvideServerConfig,
	ProvideRunner,
	server.NewServer,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

func ProvideLogger(c config.Config) *log.Logger {
	return log.New(c.LogLevel())
}

func ProvideDetector(c config.Config, logger *log.Logger) *collision.Detector {
	opts := append(c.Detector.Options(), collision.WithLogger(logger))
	return collision.NewDetector(opts...)
}

func ProvideServerConfig(c config.Config) server.Config {
	return server.Config{
		ListenAddr:      c.Server.ListenAddr,
		ReadTimeout:     c.Server.ReadTimeout,
		WriteTimeout:    c.Server.WriteTimeout,
		ShutdownTimeout: c.Server.ShutdownTimeout,
		MaxMessageSize:  c.Server.MaxMessageSize,
	}
}

func ProvideRunner(c config.Config, logger *log.Logger) *scene.Runner {
	return scene.NewRunner(
		scene.WithWorkers(c.Scene.Workers),
		scene.WithPenetration(c.Scene.Penetration),
		scene.WithDetectorOptions(c.Detector.Options()...),
		scene.WithRunnerLogger(logger),
	)
}
