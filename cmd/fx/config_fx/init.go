package config_fx

import (
	"go.uber.org/fx"

	"itinera/internal/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() config.Config {
	config.SetupLogging()
	return config.Load()
}
