package tracker

import (
	"strconv"
	"strings"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/frotawatch/frotawatch/pkg/reference"
	"github.com/frotawatch/frotawatch/pkg/truckscontrol"
)

// Normalisers turn raw upstream records into typed ones. They are defensive
// throughout: one unparseable field becomes nil or a placeholder, it never
// aborts the batch.

func NormaliseVehicle(raw *truckscontrol.Element) fleet.Vehicle {
	equipmentCode, _ := strconv.Atoi(raw.Field("eqp"))

	return fleet.Vehicle{
		ID: raw.Field("veiID"),

		Plate:          raw.Field("placa"),
		EquipmentCode:  equipmentCode,
		Equipment:      reference.Equipment(equipmentCode),
		Identification: raw.Field("ident"),
		Driver:         raw.Field("mot"),

		InMaintenance:   raw.Field("vManut") == "1",
		FirmwareVersion: optionalString(raw, "vs"),

		HasTempSensor1: raw.Field("st1") == "1",
		HasTempSensor2: raw.Field("st2") == "1",
		HasTempSensor3: raw.Field("st3") == "1",

		HasMacroKeypad: raw.Field("tMac") == "1",
		CanSendCommand: raw.Field("eCmd") == "1",

		HasIgnitionInterlock: raw.Field("dIE") == "1",
		IgnitionInterlockOn:  raw.Field("IE") == "1",
	}
}

func NormaliseDriver(raw *truckscontrol.Element) fleet.Driver {
	return fleet.Driver{
		ID:       raw.Field("motID"),
		Name:     raw.Field("mot"),
		Document: raw.Field("cpf"),
	}
}

func NormaliseMessage(raw *truckscontrol.Element) fleet.Position {
	position := fleet.Position{
		MessageID: raw.Field("mId"),
		VehicleID: raw.Field("veiID"),
		Plate:     raw.Field("placa"),

		Timestamp: raw.Field("dt"),

		Latitude:  parseDecimal(raw.Field("lat")),
		Longitude: parseDecimal(raw.Field("lon")),

		Municipality: raw.Field("mun"),
		State:        raw.Field("uf"),
		Highway:      raw.Field("rod"),
		Street:       raw.Field("rua"),

		Speed:    normaliseSpeed(raw.Field("vel")),
		Ignition: normaliseIgnition(raw),

		Odometer: optionalInt(raw, "odm"),
		RPM:      optionalInt(raw, "rpm"),

		Temperature1: optionalInt(raw, "st1"),
		Temperature2: optionalInt(raw, "st2"),
		Temperature3: optionalInt(raw, "st3"),
		Humidity1:    optionalInt(raw, "umd1"),
		Humidity2:    optionalInt(raw, "umd2"),
		Humidity3:    optionalInt(raw, "umd3"),

		Alerts:         normaliseAlerts(raw),
		TelemetryAlert: optionalString(raw, "alrtTelem"),

		Macro: optionalString(raw, "dMac"),

		DriverName: optionalString(raw, "mot"),
		DriverID:   optionalString(raw, "motID"),

		ControlPoint: optionalString(raw, "pcNome"),
		RoutePoint:   optionalString(raw, "prNome"),

		Trailer:           optionalString(raw, "carreta"),
		TrailerBattery:    optionalInt(raw, "carretaBateria"),
		FleetDriveBattery: optionalInt(raw, "fleetDriveBateria"),

		OriginCode:   optionalInt(raw, "ori"),
		MessageType:  optionalInt(raw, "tpMsg"),
		TriggerEvent: optionalInt(raw, "evtG"),
	}

	if position.OriginCode != nil {
		if origin, ok := reference.Origin(*position.OriginCode); ok {
			position.Origin = &origin
		}
	}

	return position
}

// parseDecimal reads an upstream coordinate, which arrives with a decimal
// comma in some locales.
func parseDecimal(value string) float64 {
	value = strings.ReplaceAll(value, ",", ".")

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}

// normaliseSpeed maps the upstream "not reported" sentinel (-1), and
// anything unparseable, to nil rather than a number.
func normaliseSpeed(value string) *int {
	speed, err := strconv.Atoi(value)
	if err != nil || speed == -1 {
		return nil
	}

	return &speed
}

// normaliseIgnition keeps evt4's three-valued semantics: 1 is on, 0 is off,
// anything else (including an absent field) is unknown.
func normaliseIgnition(raw *truckscontrol.Element) *bool {
	if !raw.Has("evt4") {
		return nil
	}

	switch raw.Field("evt4") {
	case "1":
		on := true
		return &on
	case "0":
		off := false
		return &off
	}

	return nil
}

func normaliseAlerts(raw *truckscontrol.Element) []fleet.Alert {
	var alerts []fleet.Alert

	for _, code := range reference.EventCodes() {
		value := raw.Field(code)
		if value != "1" && value != "true" {
			continue
		}

		event, _ := reference.EventByCode(code)
		alerts = append(alerts, fleet.Alert{
			Code:        code,
			Description: event.Description,
			Severity:    event.Severity,
			Icon:        event.Icon,
		})
	}

	return alerts
}

func optionalString(raw *truckscontrol.Element, name string) *string {
	if !raw.Has(name) {
		return nil
	}

	value := raw.Field(name)
	if value == "" {
		return nil
	}

	return &value
}

func optionalInt(raw *truckscontrol.Element, name string) *int {
	if !raw.Has(name) {
		return nil
	}

	value, err := strconv.Atoi(raw.Field(name))
	if err != nil {
		return nil
	}

	return &value
}
