package generator_fx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"itinera/internal/config"
	"itinera/internal/planner"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideItineraryGenerator)

// ProvideTextGenerator creates the AI client selected by AI_PROVIDER.
func ProvideTextGenerator(lc fx.Lifecycle, cfg config.Config) (utils.TextGenerator, error) {
	log.Info().Str("provider", cfg.AIProvider).Str("model", cfg.AIModel).Msg("Initializing text generation client")

	client, err := utils.NewTextGenerator(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.AIProvider, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvideItineraryGenerator(client utils.TextGenerator, cfg config.Config) services.ItineraryGenerator {
	return planner.NewGenerator(client, planner.WithBaseDelay(cfg.RetryBaseDelay))
}
