package tracker

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/frotawatch/frotawatch/pkg/api"
	"github.com/frotawatch/frotawatch/pkg/config"
	"github.com/frotawatch/frotawatch/pkg/snapshot"
	"github.com/frotawatch/frotawatch/pkg/truckscontrol"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "tracker",
		Usage: "Polls the fleet telemetry API and serves the aggregated snapshot",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the poller and the web API",
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

					client := truckscontrol.NewClient(cfg.Endpoint, cfg.Login, cfg.Password)
					poller := NewPoller(client, store)

					ctx, cancel := context.WithCancel(context.Background())

					var wg conc.WaitGroup
					wg.Go(func() {
						poller.Run(ctx)
					})

					go func() {
						if err := api.SetupServer(c.String("listen"), store); err != nil {
							log.Fatal().Err(err).Msg("Web server failed")
						}
					}()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					cancel()
					wg.Wait()

					// One last flush so a clean shutdown never loses state.
					store.Save()

					return nil
				},
			},
			{
				Name:      "fetch",
				Usage:     "one-shot fetch of a single entity kind, for debugging",
				ArgsUsage: "<vehicles|drivers|trailers|messages>",
				Action: func(c *cli.Context) error {
					cfg := config.Load()
					client := truckscontrol.NewClient(cfg.Endpoint, cfg.Login, cfg.Password)

					ctx := context.Background()

					switch c.Args().First() {
					case "vehicles":
						document, err := client.Vehicles(ctx)
						if err != nil || document == nil {
							return err
						}
						for _, raw := range document.Children("Veiculo") {
							pretty.Println(NormaliseVehicle(raw))
						}
					case "drivers":
						document, err := client.Drivers(ctx)
						if err != nil || document == nil {
							return err
						}
						for _, raw := range document.Children("Motorista") {
							pretty.Println(NormaliseDriver(raw))
						}
					case "trailers":
						document, err := client.Trailers(ctx, 0)
						if err != nil || document == nil {
							return err
						}
						for _, raw := range document.Children("Carretas") {
							pretty.Println(NormaliseTrailerPair(raw))
						}
					case "messages":
						document, err := client.Messages(ctx, "1")
						if err != nil || document == nil {
							return err
						}
						for _, raw := range document.Children("MensagemCB") {
							pretty.Println(NormaliseMessage(raw))
						}
					default:
						return errors.New("unknown entity kind")
					}

					return nil
				},
			},
		},
	}
}
