package tracker

import "github.com/frotawatch/frotawatch/pkg/fleet"

// MergePosition reconciles an incoming position with the stored one for the
// same vehicle. A message older than the stored record is dropped (out of
// order delivery is frequent and expected). On acceptance the sparse,
// sensor-dependent fields fall back to the previous value when the incoming
// message omitted them; kinematic and alert fields always reflect the
// incoming message.
func MergePosition(previous *fleet.Position, incoming fleet.Position) (fleet.Position, bool) {
	if previous == nil {
		return incoming, true
	}

	if incoming.Timestamp < previous.Timestamp {
		return *previous, false
	}

	if incoming.Odometer == nil {
		incoming.Odometer = previous.Odometer
	}
	if incoming.RPM == nil {
		incoming.RPM = previous.RPM
	}

	if incoming.Temperature1 == nil {
		incoming.Temperature1 = previous.Temperature1
	}
	if incoming.Temperature2 == nil {
		incoming.Temperature2 = previous.Temperature2
	}
	if incoming.Temperature3 == nil {
		incoming.Temperature3 = previous.Temperature3
	}
	if incoming.Humidity1 == nil {
		incoming.Humidity1 = previous.Humidity1
	}
	if incoming.Humidity2 == nil {
		incoming.Humidity2 = previous.Humidity2
	}
	if incoming.Humidity3 == nil {
		incoming.Humidity3 = previous.Humidity3
	}

	if incoming.TrailerBattery == nil {
		incoming.TrailerBattery = previous.TrailerBattery
	}
	if incoming.FleetDriveBattery == nil {
		incoming.FleetDriveBattery = previous.FleetDriveBattery
	}

	if incoming.DriverName == nil {
		incoming.DriverName = previous.DriverName
	}
	if incoming.DriverID == nil {
		incoming.DriverID = previous.DriverID
	}
	if incoming.Trailer == nil {
		incoming.Trailer = previous.Trailer
	}

	return incoming, true
}
