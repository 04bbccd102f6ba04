package middleware_fx

import (
	"go.uber.org/fx"

	"itinera/internal/config"
	"itinera/pkg/middleware"
	"itinera/pkg/utils"
)

var Module = fx.Provide(provideTokenParser, provideRateLimiter)

func provideTokenParser(cfg config.Config) *utils.TokenParser {
	return utils.NewTokenParser(cfg.JWTSecret)
}

func provideRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimitPerMinute)
}
