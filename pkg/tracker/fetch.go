package tracker

import (
	"context"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/frotawatch/frotawatch/pkg/truckscontrol"
	"github.com/rs/zerolog/log"
)

// Every fetch body is fault isolated: it logs and returns on failure so a
// broken cycle never takes the scheduler down with it.

func (p *Poller) fetchVehicles(ctx context.Context) {
	document, err := p.client.Vehicles(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch vehicle list")
		return
	}
	if document == nil {
		return
	}

	rawVehicles := document.Children("Veiculo")

	vehicles := make([]fleet.Vehicle, 0, len(rawVehicles))
	for _, raw := range rawVehicles {
		vehicles = append(vehicles, NormaliseVehicle(raw))
	}

	p.store.PutVehicles(vehicles)
	p.store.Save()

	log.Info().Int("vehicles", len(vehicles)).Msg("Refreshed vehicle list")
}

func (p *Poller) fetchDrivers(ctx context.Context) {
	document, err := p.client.Drivers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch driver list")
		return
	}
	if document == nil {
		return
	}

	rawDrivers := document.Children("Motorista")

	drivers := make([]fleet.Driver, 0, len(rawDrivers))
	for _, raw := range rawDrivers {
		drivers = append(drivers, NormaliseDriver(raw))
	}

	p.store.PutDrivers(drivers)
	p.store.Save()

	log.Info().Int("drivers", len(drivers)).Msg("Refreshed driver list")
}

func (p *Poller) fetchMessages(ctx context.Context) {
	document, err := p.client.Messages(ctx, p.store.Cursor())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch messages")
		return
	}
	if document == nil {
		return
	}

	messages := document.Children("MensagemCB")
	if len(messages) == 0 {
		log.Info().Msg("No new messages this cycle")
		return
	}

	cursor := NewCursor(p.store.Cursor())
	accepted := 0

	for _, raw := range messages {
		cursor.Observe(raw.Field("mId"))

		position := NormaliseMessage(raw)
		if position.VehicleID == "" {
			continue
		}

		// A message that names a trailer updates the link map immediately,
		// independent of the bulk roster reconciliation.
		if position.Trailer != nil {
			p.store.SetTrailerLink(position.VehicleID, *position.Trailer)
		}

		var previous *fleet.Position
		if existing, ok := p.store.Position(position.VehicleID); ok {
			previous = &existing
		}

		if merged, ok := MergePosition(previous, position); ok {
			p.store.SetPosition(merged)
			accepted++
		}
	}

	p.store.SetCursor(cursor.Value())
	p.store.MarkUpdated()
	p.store.Save()

	log.Info().
		Int("retrieved", len(messages)).
		Int("accepted", accepted).
		Str("cursor", cursor.Value()).
		Msg("Processed message batch")
}

// fetchTrailers tries every request format the upstream has accepted over
// time, with a delay between attempts. If nothing resolves, the existing
// link map is kept: stale links beat losing them to a transient outage.
func (p *Poller) fetchTrailers(ctx context.Context, attempts int) {
	for format := 0; format < truckscontrol.TrailerRequestFormats; format++ {
		for attempt := 0; attempt < attempts; attempt++ {
			if format > 0 || attempt > 0 {
				if !pause(ctx, trailerRetryDelay) {
					return
				}
			}

			document, err := p.client.Trailers(ctx, format)
			if err != nil {
				log.Warn().
					Err(err).
					Int("format", format+1).
					Int("attempt", attempt+1).
					Msg("Trailer roster fetch failed")
				continue
			}
			if document == nil || document.Name != "ResponseCarretas" {
				continue
			}

			rawPairs := document.Children("Carretas")
			if len(rawPairs) == 0 {
				return
			}

			pairs := make([]TrailerPair, 0, len(rawPairs))
			for _, raw := range rawPairs {
				pairs = append(pairs, NormaliseTrailerPair(raw))
			}

			links := ResolveTrailerLinks(pairs, p.store.Vehicles())
			if len(links) > 0 {
				p.store.ReplaceTrailerLinks(links)
				p.store.Save()
			}

			log.Info().Int("roster", len(rawPairs)).Int("linked", len(links)).Msg("Reconciled trailer roster")
			return
		}
	}

	if retained := p.store.TrailerLinkCount(); retained > 0 {
		log.Info().Int("retained", retained).Msg("Trailer roster unavailable, keeping cached links")
	} else {
		log.Warn().Msg("Trailer roster unavailable and no cached links")
	}
}
