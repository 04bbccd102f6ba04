package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"itinera/internal/config"
	"itinera/internal/repositories"
	"itinera/internal/services"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	generator services.ItineraryGenerator,
	shares mem.ShareTokenStore,
	cfg config.Config,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, generator, shares, services.TripServiceConfig{
		ShareTTL:      cfg.ShareTTL,
		PublicBaseURL: cfg.PublicBaseURL,
		LogoPath:      cfg.PDFLogoPath,
	})
}
