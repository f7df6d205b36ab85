package api

import (
	"github.com/frotawatch/frotawatch/pkg/config"
	"github.com/frotawatch/frotawatch/pkg/snapshot"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the fleet web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "serve the persisted snapshot without polling",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":3001",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()

					store := snapshot.New(cfg.CacheFile)
					store.Load()

					return SetupServer(c.String("listen"), store)
				},
			},
		},
	}
}
