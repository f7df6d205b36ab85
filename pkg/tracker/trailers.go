package tracker

import (
	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/frotawatch/frotawatch/pkg/truckscontrol"
	"github.com/frotawatch/frotawatch/pkg/util"
)

// TrailerPair is one roster entry: the tractor's plate and the trailer's
// display name.
type TrailerPair struct {
	TractorPlate string
	TrailerName  string
}

func NormaliseTrailerPair(raw *truckscontrol.Element) TrailerPair {
	return TrailerPair{
		TractorPlate: raw.Field("cavalo"),
		TrailerName:  raw.Field("carreta"),
	}
}

// ResolveTrailerLinks matches roster pairs against the known vehicle table
// by normalised plate and returns vehicle id to trailer name links. Pairs
// whose tractor plate is unknown are skipped.
func ResolveTrailerLinks(pairs []TrailerPair, vehicles map[string]fleet.Vehicle) map[string]string {
	plateToVehicleID := map[string]string{}
	for id, vehicle := range vehicles {
		if vehicle.Plate != "" {
			plateToVehicleID[util.NormalisePlate(vehicle.Plate)] = id
		}
	}

	links := map[string]string{}

	for _, pair := range pairs {
		plate := util.NormalisePlate(pair.TractorPlate)
		if plate == "" || pair.TrailerName == "" {
			continue
		}

		if vehicleID, ok := plateToVehicleID[plate]; ok {
			links[vehicleID] = pair.TrailerName
		}
	}

	return links
}
