package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/frotawatch/frotawatch/pkg/api"
	"github.com/frotawatch/frotawatch/pkg/tracker"

	_ "time/tzdata"
)

func main() {
	// Local development keeps credentials in a .env file.
	godotenv.Load()

	if os.Getenv("FROTAWATCH_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("FROTAWATCH_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "frotawatch",
		Description: "Fleet telemetry panel - polls the Trucks Control API and serves the aggregated snapshot",

		Commands: []*cli.Command{
			tracker.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
