package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"itinera/internal/config"
)

func main() {
	config.SetupLogging()

	app := &cli.App{
		Name:  "tripctl",
		Usage: "generate itineraries and render them to PDF from the command line",
		Commands: []*cli.Command{
			generateCommand(),
			renderCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
