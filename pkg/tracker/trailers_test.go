package tracker

import (
	"testing"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/stretchr/testify/assert"
)

func TestResolveTrailerLinksMatchesNormalisedPlates(t *testing.T) {
	vehicles := map[string]fleet.Vehicle{
		"10": {ID: "10", Plate: "ABC-1234"},
		"11": {ID: "11", Plate: "xyz 9876"},
		"12": {ID: "12"}, // no plate, never matchable
	}

	links := ResolveTrailerLinks([]TrailerPair{
		{TractorPlate: "abc1234", TrailerName: "SR-0042"},
		{TractorPlate: "XYZ-9876", TrailerName: "SR-0099"},
	}, vehicles)

	assert.Equal(t, map[string]string{
		"10": "SR-0042",
		"11": "SR-0099",
	}, links)
}

func TestResolveTrailerLinksSkipsUnknownAndIncompletePairs(t *testing.T) {
	vehicles := map[string]fleet.Vehicle{
		"10": {ID: "10", Plate: "ABC-1234"},
	}

	links := ResolveTrailerLinks([]TrailerPair{
		{TractorPlate: "ZZZ-0000", TrailerName: "SR-0001"},
		{TractorPlate: "", TrailerName: "SR-0002"},
		{TractorPlate: "ABC-1234", TrailerName: ""},
	}, vehicles)

	assert.Empty(t, links)
}
