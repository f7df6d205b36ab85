// Package snapshot owns the authoritative in-memory fleet state. Fetch
// handlers are the only writers; the web layer takes read-only copies.
package snapshot

import (
	"sync"
	"time"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type Store struct {
	mu sync.RWMutex

	// saveMu serialises writers to the snapshot file. Both poll cycles
	// save; without it two truncate and write sequences can interleave
	// and leave a torn document on disk.
	saveMu sync.Mutex

	path string

	vehicles     map[string]fleet.Vehicle
	positions    map[string]fleet.Position
	drivers      map[string]fleet.Driver
	trailerLinks map[string]string

	cursor     string
	lastUpdate *time.Time
	cycles     int
}

// Data is a point-in-time deep copy of the store, safe to read while fetch
// cycles keep mutating the live maps.
type Data struct {
	Vehicles     map[string]fleet.Vehicle
	Positions    map[string]fleet.Position
	Drivers      map[string]fleet.Driver
	TrailerLinks map[string]string

	Cursor     string
	LastUpdate *time.Time
	Cycles     int
}

func New(path string) *Store {
	return &Store{
		path: path,

		vehicles:     map[string]fleet.Vehicle{},
		positions:    map[string]fleet.Position{},
		drivers:      map[string]fleet.Driver{},
		trailerLinks: map[string]string{},

		cursor: "1",
	}
}

func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := Data{
		Vehicles:     map[string]fleet.Vehicle{},
		Positions:    map[string]fleet.Position{},
		Drivers:      map[string]fleet.Driver{},
		TrailerLinks: map[string]string{},

		Cursor:     s.cursor,
		LastUpdate: s.lastUpdate,
		Cycles:     s.cycles,
	}

	if err := copier.CopyWithOption(&data.Vehicles, s.vehicles, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Msg("Failed to copy vehicle table")
	}
	if err := copier.CopyWithOption(&data.Positions, s.positions, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Msg("Failed to copy position table")
	}
	if err := copier.CopyWithOption(&data.Drivers, s.drivers, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Msg("Failed to copy driver table")
	}
	for id, trailer := range s.trailerLinks {
		data.TrailerLinks[id] = trailer
	}

	return data
}

func (s *Store) PutVehicles(vehicles []fleet.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vehicle := range vehicles {
		if vehicle.ID == "" {
			continue
		}
		s.vehicles[vehicle.ID] = vehicle
	}
}

func (s *Store) PutDrivers(drivers []fleet.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, driver := range drivers {
		if driver.ID == "" {
			continue
		}
		s.drivers[driver.ID] = driver
	}
}

func (s *Store) Position(vehicleID string) (fleet.Position, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	position, ok := s.positions[vehicleID]
	return position, ok
}

func (s *Store) SetPosition(position fleet.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.positions[position.VehicleID] = position
}

// Vehicles returns a copy of the vehicle table keyed by id.
func (s *Store) Vehicles() map[string]fleet.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := make(map[string]fleet.Vehicle, len(s.vehicles))
	for id, vehicle := range s.vehicles {
		vehicles[id] = vehicle
	}

	return vehicles
}

func (s *Store) VehicleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vehicles)
}

func (s *Store) SetTrailerLink(vehicleID string, trailer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trailerLinks[vehicleID] = trailer
}

// ReplaceTrailerLinks swaps in a freshly reconciled roster. Callers must
// only do this when at least one link resolved; an outage must not erase
// known links.
func (s *Store) ReplaceTrailerLinks(links map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trailerLinks = links
}

func (s *Store) TrailerLinkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trailerLinks)
}

func (s *Store) Cursor() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cursor
}

func (s *Store) SetCursor(cursor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = cursor
}

// MarkUpdated records a completed message cycle.
func (s *Store) MarkUpdated() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.lastUpdate = &now
	s.cycles++
}

type Health struct {
	Vehicles  int    `json:"vehicles"`
	Positions int    `json:"positions"`
	Drivers   int    `json:"drivers"`
	Cursor    string `json:"cursor"`
	Cycles    int    `json:"cycles"`

	LastUpdate *time.Time `json:"lastUpdate"`
}

func (s *Store) Health() Health {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Health{
		Vehicles:  len(s.vehicles),
		Positions: len(s.positions),
		Drivers:   len(s.drivers),
		Cursor:    s.cursor,
		Cycles:    s.cycles,

		LastUpdate: s.lastUpdate,
	}
}
