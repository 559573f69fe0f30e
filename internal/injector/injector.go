//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/narrowphase/internal/config"
	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/scene"
	"github.com/zeusync/narrowphase/internal/server"
)

func InitializeServer(c config.Config) (*server.Server, error) {
	wire.Build(ProviderSet)
	return nil, nil
}

func InitializeRunner(c config.Config) *scene.Runner {
	wire.Build(ProviderSet)
	return nil
}

func InitializeDetector(c config.Config) *collision.Detector {
	wire.Build(ProviderSet)
	return nil
}
