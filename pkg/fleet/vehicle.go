package fleet

// Vehicle is the registration record for one tracked unit. A vehicle-list
// refresh replaces the whole record, it is never partially merged.
type Vehicle struct {
	ID string `json:"vehicleId"`

	Plate          string `json:"plate"`
	EquipmentCode  int    `json:"equipmentCode"`
	Equipment      string `json:"equipment"`
	Identification string `json:"identification"`
	Driver         string `json:"driver"`

	InMaintenance   bool    `json:"inMaintenance"`
	FirmwareVersion *string `json:"firmwareVersion"`

	HasTempSensor1 bool `json:"hasTempSensor1"`
	HasTempSensor2 bool `json:"hasTempSensor2"`
	HasTempSensor3 bool `json:"hasTempSensor3"`

	HasMacroKeypad bool `json:"hasMacroKeypad"`
	CanSendCommand bool `json:"canSendCommand"`

	HasIgnitionInterlock bool `json:"hasIgnitionInterlock"`
	IgnitionInterlockOn  bool `json:"ignitionInterlockOn"`
}

type Driver struct {
	ID       string `json:"driverId"`
	Name     string `json:"name"`
	Document string `json:"document"`
}
