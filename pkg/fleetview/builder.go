// Package fleetview derives the display model from a snapshot: one row per
// vehicle with a status category, plus fleet-wide statistics. It is a pure
// derivation recomputed on every read.
package fleetview

import (
	"fmt"
	"strings"
	"time"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/frotawatch/frotawatch/pkg/snapshot"
	"github.com/frotawatch/frotawatch/pkg/util"
	"golang.org/x/exp/slices"
)

type Status string

const (
	StatusMoving        Status = "moving"
	StatusIgnitionOn    Status = "ignition-on"
	StatusStopped       Status = "stopped"
	StatusIndeterminate Status = "indeterminate"
	StatusNoSignal      Status = "no-signal"
)

type VehicleRow struct {
	VehicleID      string `json:"vehicleId"`
	Plate          string `json:"plate"`
	Identification string `json:"identification"`
	Equipment      string `json:"equipment"`
	Driver         string `json:"driver"`
	InMaintenance  bool   `json:"inMaintenance"`

	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`

	Municipality    string `json:"municipality"`
	State           string `json:"state"`
	Highway         string `json:"highway"`
	Street          string `json:"street"`
	LocationSummary string `json:"locationSummary"`

	Speed     *int    `json:"speed"`
	Odometer  *int    `json:"odometer"`
	Ignition  *bool   `json:"ignition"`
	Timestamp *string `json:"timestamp"`

	Alerts         []fleet.Alert `json:"alerts"`
	CriticalAlerts int           `json:"criticalAlerts"`
	HighAlerts     int           `json:"highAlerts"`
	TelemetryAlert *string       `json:"telemetryAlert"`

	Macro *string `json:"macro"`

	Trailer           *string `json:"trailer"`
	TrailerBattery    *int    `json:"trailerBattery"`
	FleetDriveBattery *int    `json:"fleetDriveBattery"`

	ControlPoint *string `json:"controlPoint"`
	RoutePoint   *string `json:"routePoint"`

	RPM          *int `json:"rpm"`
	Temperature1 *int `json:"temperature1"`
	Temperature2 *int `json:"temperature2"`
	Temperature3 *int `json:"temperature3"`
	Humidity1    *int `json:"humidity1"`
	Humidity2    *int `json:"humidity2"`
	Humidity3    *int `json:"humidity3"`

	Origin *string `json:"origin"`

	Status      Status `json:"status"`
	StatusText  string `json:"statusText"`
	StatusColor string `json:"statusColor"`
}

type Statistics struct {
	Total      int `json:"total"`
	Moving     int `json:"moving"`
	IgnitionOn int `json:"ignitionOn"`
	Stopped    int `json:"stopped"`
	NoSignal   int `json:"noSignal"`

	Alerts         int `json:"alerts"`
	CriticalAlerts int `json:"criticalAlerts"`
	HighAlerts     int `json:"highAlerts"`
}

type Fleet struct {
	Vehicles   []VehicleRow `json:"vehicles"`
	Statistics Statistics   `json:"statistics"`

	LastUpdate *time.Time `json:"lastUpdate"`
}

// Build derives the full fleet view from a snapshot. Vehicles known only
// from the registration list and vehicles known only from positions both
// get a row.
func Build(snap snapshot.Data) Fleet {
	ids := map[string]bool{}
	for id := range snap.Vehicles {
		ids[id] = true
	}
	for id := range snap.Positions {
		ids[id] = true
	}

	rows := make([]VehicleRow, 0, len(ids))
	var stats Statistics

	for id := range ids {
		vehicle := snap.Vehicles[id]

		var position *fleet.Position
		if pos, ok := snap.Positions[id]; ok {
			position = &pos
		}

		row := buildRow(id, vehicle, position, snap.TrailerLinks)

		switch row.Status {
		case StatusMoving:
			stats.Moving++
		case StatusIgnitionOn:
			stats.IgnitionOn++
		case StatusStopped:
			stats.Stopped++
		default:
			// Indeterminate counts as no signal in the headline numbers.
			stats.NoSignal++
		}

		for _, alert := range row.Alerts {
			if alert.Severity != fleet.SeverityInfo {
				stats.Alerts++
			}
		}
		stats.CriticalAlerts += row.CriticalAlerts
		stats.HighAlerts += row.HighAlerts

		rows = append(rows, row)
	}

	stats.Total = len(rows)

	slices.SortFunc(rows, func(a, b VehicleRow) int {
		if a.Plate == "" && b.Plate == "" {
			return 0
		}
		if a.Plate == "" {
			return 1
		}
		if b.Plate == "" {
			return -1
		}

		return strings.Compare(a.Plate, b.Plate)
	})

	return Fleet{
		Vehicles:   rows,
		Statistics: stats,

		LastUpdate: snap.LastUpdate,
	}
}

func buildRow(id string, vehicle fleet.Vehicle, position *fleet.Position, trailerLinks map[string]string) VehicleRow {
	row := VehicleRow{
		VehicleID:      id,
		Identification: vehicle.Identification,
		Equipment:      vehicle.Equipment,
		Driver:         vehicle.Driver,
		InMaintenance:  vehicle.InMaintenance,
	}

	plate := vehicle.Plate
	if plate == "" && position != nil {
		plate = position.Plate
	}
	// A digit-only "plate" is an upstream internal id, not a registration.
	if !util.IsDigitsOnly(plate) {
		row.Plate = plate
	}

	row.Status, row.StatusText, row.StatusColor = deriveStatus(position)

	if trailer, ok := trailerLinks[id]; ok {
		row.Trailer = &trailer
	}

	if position == nil {
		return row
	}

	row.Latitude = &position.Latitude
	row.Longitude = &position.Longitude

	row.Municipality = position.Municipality
	row.State = position.State
	row.Highway = position.Highway
	row.Street = position.Street

	var locationParts []string
	for _, part := range []string{position.Municipality, position.State} {
		if part != "" {
			locationParts = append(locationParts, part)
		}
	}
	row.LocationSummary = strings.Join(locationParts, "/")

	row.Speed = position.Speed
	row.Odometer = position.Odometer
	row.Ignition = position.Ignition
	if position.Timestamp != "" {
		timestamp := position.Timestamp
		row.Timestamp = &timestamp
	}

	row.Alerts = position.Alerts
	for _, alert := range position.Alerts {
		switch alert.Severity {
		case fleet.SeverityCritical:
			row.CriticalAlerts++
		case fleet.SeverityHigh:
			row.HighAlerts++
		}
	}
	row.TelemetryAlert = position.TelemetryAlert

	row.Macro = position.Macro

	if position.DriverName != nil {
		row.Driver = *position.DriverName
	}

	if position.Trailer != nil {
		row.Trailer = position.Trailer
	}
	row.TrailerBattery = position.TrailerBattery
	row.FleetDriveBattery = position.FleetDriveBattery

	row.ControlPoint = position.ControlPoint
	row.RoutePoint = position.RoutePoint

	row.RPM = position.RPM
	row.Temperature1 = position.Temperature1
	row.Temperature2 = position.Temperature2
	row.Temperature3 = position.Temperature3
	row.Humidity1 = position.Humidity1
	row.Humidity2 = position.Humidity2
	row.Humidity3 = position.Humidity3

	row.Origin = position.Origin

	return row
}

// deriveStatus classifies a vehicle from its latest position. Precedence:
// moving beats ignition state, known ignition beats indeterminate, and no
// position at all is no signal.
func deriveStatus(position *fleet.Position) (Status, string, string) {
	if position == nil || position.Timestamp == "" {
		return StatusNoSignal, "No Signal", "#6b7280"
	}

	if position.Speed != nil && *position.Speed > 0 {
		return StatusMoving, fmt.Sprintf("Moving (%d km/h)", *position.Speed), "#10b981"
	}

	if position.Ignition != nil {
		if *position.Ignition {
			return StatusIgnitionOn, "Stopped (Ignition On)", "#f59e0b"
		}

		return StatusStopped, "Stopped", "#1436a6"
	}

	return StatusIndeterminate, "Indeterminate", "#8b5cf6"
}
