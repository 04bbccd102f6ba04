package main

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"itinera/internal/config"
	"itinera/internal/models/request_models"
	"itinera/internal/planner"
	"itinera/pkg/utils"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "ask the AI planner for an itinerary and save it as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "destination", Aliases: []string{"d"}, Required: true},
			&cli.IntFlag{Name: "days", Value: 3, Usage: "trip duration in days"},
			&cli.IntFlag{Name: "people", Value: 2, Usage: "number of travelers"},
			&cli.Float64Flag{Name: "budget", Required: true, Usage: "total budget for the whole group"},
			&cli.StringFlag{Name: "currency", Value: request_models.DefaultCurrency},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "itinerary.json"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()

			client, err := utils.NewTextGenerator(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel)
			if err != nil {
				return err
			}
			defer client.Close()

			req := request_models.TripRequest{
				Destination: c.String("destination"),
				Duration:    c.Int("days"),
				PeopleCount: c.Int("people"),
				Budget:      c.Float64("budget"),
				Currency:    c.String("currency"),
			}
			req.Normalize()

			generator := planner.NewGenerator(client, planner.WithBaseDelay(cfg.RetryBaseDelay))
			itinerary, err := generator.Generate(c.Context, req)
			if err != nil {
				return err
			}

			if err := writeTripFile(c.String("out"), &tripFile{Request: req, Itinerary: itinerary}); err != nil {
				return err
			}

			log.Info().Str("destination", req.Destination).Int("days", len(itinerary.Days)).Str("file", c.String("out")).Msg("itinerary saved")
			return nil
		},
	}
}
