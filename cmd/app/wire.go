//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/equigrid-api/internal/bootstrap"
	"github.com/yanqian/equigrid-api/internal/domain/energy"
	"github.com/yanqian/equigrid-api/internal/infra/config"
	httpiface "github.com/yanqian/equigrid-api/internal/interface/http"
	"github.com/yanqian/equigrid-api/pkg/logger"
	"github.com/yanqian/equigrid-api/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideEnergyConfig,
		provideRand,
		provideClock,
		provideRegistry,
		metrics.NewRecorder,
		wire.Bind(new(energy.ProfileObserver), new(*metrics.Recorder)),
		energy.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
