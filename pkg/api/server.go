// Package api serves the two read-only views over the snapshot store: the
// aggregated fleet view and a health/introspection document.
package api

import (
	"time"

	"github.com/frotawatch/frotawatch/pkg/fleetview"
	"github.com/frotawatch/frotawatch/pkg/snapshot"
	"github.com/gofiber/fiber/v2"
)

var startTime = time.Now()

func SetupServer(listen string, store *snapshot.Store) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/api")

	group.Get("/fleet", func(c *fiber.Ctx) error {
		return c.JSON(fleetview.Build(store.Snapshot()))
	})

	group.Get("/health", func(c *fiber.Ctx) error {
		health := store.Health()

		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": int(time.Since(startTime).Seconds()),

			"vehicles":   health.Vehicles,
			"positions":  health.Positions,
			"drivers":    health.Drivers,
			"cursor":     health.Cursor,
			"cycles":     health.Cycles,
			"lastUpdate": health.LastUpdate,
		})
	})

	return webApp.Listen(listen)
}
