package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yanqian/equigrid-api/internal/domain/energy"
	"github.com/yanqian/equigrid-api/internal/infra/config"
	"github.com/yanqian/equigrid-api/pkg/util"
)

func provideEnergyConfig(cfg *config.Config) energy.Config {
	return energy.Config{
		Seed: cfg.Energy.Seed,
	}
}

func provideRand(cfg energy.Config) energy.Rand {
	return energy.NewRand(cfg.Seed)
}

func provideClock() util.Clock {
	return util.SystemClock{}
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
