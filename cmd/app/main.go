package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"itinera/cmd/fx/config_fx"
	"itinera/cmd/fx/controllers_fx"
	"itinera/cmd/fx/db_fx"
	"itinera/cmd/fx/generator_fx"
	"itinera/cmd/fx/memcache_fx"
	"itinera/cmd/fx/middleware_fx"
	"itinera/cmd/fx/trip_fx"
	"itinera/internal/api/controllers"
	"itinera/internal/config"
	"itinera/pkg/middleware"
	"itinera/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		generator_fx.Module,
		memcache_fx.Module,
		trip_fx.Module,
		middleware_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	tokens *utils.TokenParser,
	limiter *middleware.RateLimiter) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.IdentityMiddleware(tokens))

	RegisterRoutes(r, tripController, limiter)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	limiter *middleware.RateLimiter) {

	r.GET("/healthz", controllers.Health)

	itineraries := r.Group("/itineraries")
	itineraries.POST("/generate", limiter.Limit(), tripController.GenerateItinerary)
	itineraries.GET("", middleware.RequireIdentity(), tripController.ListTrips)
	itineraries.GET("/:id", tripController.GetTrip)
	itineraries.DELETE("/:id", middleware.RequireIdentity(), tripController.DeleteTrip)
	itineraries.GET("/:id/pdf", tripController.DownloadTripPDF)
	itineraries.POST("/:id/share", tripController.ShareTrip)

	r.GET("/shared/:token", tripController.GetSharedTrip)
	r.GET("/shared/:token/pdf", tripController.DownloadSharedTripPDF)
}
