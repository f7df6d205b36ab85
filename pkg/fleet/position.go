package fleet

// Alert is an active event flag resolved against the reference table. It
// reflects the latest accepted message only, it is not an accumulating log.
type Alert struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Icon        string   `json:"icon"`
}

// Position is the last accepted telemetry report for a vehicle. Optional
// fields are pointers so that "not reported" never collapses into zero.
type Position struct {
	MessageID string `json:"messageId"`
	VehicleID string `json:"vehicleId"`
	Plate     string `json:"plate"`

	// Upstream timestamp, kept verbatim. The format sorts lexicographically
	// which is what the merge engine relies on.
	Timestamp string `json:"timestamp"`

	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`

	Municipality string `json:"municipality"`
	State        string `json:"state"`
	Highway      string `json:"highway"`
	Street       string `json:"street"`

	Speed    *int  `json:"speed"`
	Ignition *bool `json:"ignition"`

	Odometer *int `json:"odometer"`
	RPM      *int `json:"rpm"`

	Temperature1 *int `json:"temperature1"`
	Temperature2 *int `json:"temperature2"`
	Temperature3 *int `json:"temperature3"`
	Humidity1    *int `json:"humidity1"`
	Humidity2    *int `json:"humidity2"`
	Humidity3    *int `json:"humidity3"`

	Alerts         []Alert `json:"alerts"`
	TelemetryAlert *string `json:"telemetryAlert"`

	Macro *string `json:"macro"`

	DriverName *string `json:"driverName"`
	DriverID   *string `json:"driverId"`

	ControlPoint *string `json:"controlPoint"`
	RoutePoint   *string `json:"routePoint"`

	Trailer           *string `json:"trailer"`
	TrailerBattery    *int    `json:"trailerBattery"`
	FleetDriveBattery *int    `json:"fleetDriveBattery"`

	OriginCode   *int    `json:"originCode"`
	Origin       *string `json:"origin"`
	MessageType  *int    `json:"messageType"`
	TriggerEvent *int    `json:"triggerEvent"`
}
