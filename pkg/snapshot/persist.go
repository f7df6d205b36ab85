package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/frotawatch/frotawatch/pkg/reference"
	"github.com/rs/zerolog/log"
)

// document is the on-disk snapshot layout. Sections absent from an older
// file simply load as empty.
type document struct {
	Vehicles     map[string]fleet.Vehicle  `json:"vehicles"`
	Positions    map[string]fleet.Position `json:"positions"`
	Drivers      map[string]fleet.Driver   `json:"drivers"`
	TrailerLinks map[string]string         `json:"trailerLinks"`

	Cursor  string    `json:"cursor"`
	SavedAt time.Time `json:"savedAt"`
}

// Load restores the persisted snapshot, if any. A missing or corrupt file
// means starting empty, never failing. Cached alert annotations are
// re-derived from the current reference table so a catalogue change takes
// effect retroactively, and retired codes are dropped.
func (s *Store) Load() {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("Failed to read snapshot file")
		}
		return
	}

	var doc document
	if err := json.Unmarshal(contents, &doc); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Snapshot file corrupt, starting empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Vehicles != nil {
		s.vehicles = doc.Vehicles
	}
	if doc.Drivers != nil {
		s.drivers = doc.Drivers
	}
	if doc.TrailerLinks != nil {
		s.trailerLinks = doc.TrailerLinks
	}
	if doc.Cursor != "" {
		s.cursor = doc.Cursor
	}

	for id, position := range doc.Positions {
		position.Alerts = reclassifyAlerts(position.Alerts)
		s.positions[id] = position
	}

	log.Info().
		Int("vehicles", len(s.vehicles)).
		Int("positions", len(s.positions)).
		Int("drivers", len(s.drivers)).
		Str("cursor", s.cursor).
		Msg("Loaded snapshot from disk")
}

func reclassifyAlerts(alerts []fleet.Alert) []fleet.Alert {
	var reclassified []fleet.Alert

	for _, alert := range alerts {
		event, ok := reference.EventByCode(alert.Code)
		if !ok {
			continue
		}

		alert.Description = event.Description
		alert.Severity = event.Severity
		alert.Icon = event.Icon

		reclassified = append(reclassified, alert)
	}

	return reclassified
}

// Save writes the full current state. Persistence is best effort: a write
// failure is logged and the in-memory state stays the source of truth.
// Saves are serialised and the document is written to a temporary file and
// renamed into place, so a concurrent save or a crash mid-write can never
// leave a torn file behind.
func (s *Store) Save() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	doc := document{
		Vehicles:     s.vehicles,
		Positions:    s.positions,
		Drivers:      s.drivers,
		TrailerLinks: s.trailerLinks,

		Cursor:  s.cursor,
		SavedAt: time.Now(),
	}

	contents, err := json.Marshal(doc)
	s.mu.RUnlock()

	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode snapshot")
		return
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to create snapshot temp file")
		return
	}

	_, writeErr := tempFile.Write(contents)
	closeErr := tempFile.Close()

	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Chmod(tempFile.Name(), 0644)
	}
	if writeErr == nil {
		writeErr = os.Rename(tempFile.Name(), s.path)
	}

	if writeErr != nil {
		log.Warn().Err(writeErr).Str("path", s.path).Msg("Failed to write snapshot file")
		os.Remove(tempFile.Name())
	}
}
