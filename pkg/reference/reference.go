// Package reference holds the static upstream code tables: equipment types,
// event flags and message origins. The tables ship embedded with the binary
// so a deploy is all it takes to roll out a catalogue change.
package reference

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFiles embed.FS

type Event struct {
	Description string         `yaml:"description"`
	Severity    fleet.Severity `yaml:"severity"`
	Icon        string         `yaml:"icon"`
}

var (
	equipment  map[int]string
	events     map[string]Event
	eventCodes []string
	origins    map[int]string
)

func init() {
	mustLoad("data/equipment.yaml", &equipment)
	mustLoad("data/events.yaml", &events)
	mustLoad("data/origins.yaml", &origins)

	// Alert lists are rebuilt on every accepted message; keep the flag scan
	// order deterministic by sorting codes numerically.
	eventCodes = make([]string, 0, len(events))
	for code := range events {
		eventCodes = append(eventCodes, code)
	}
	slices.SortFunc(eventCodes, func(a, b string) int {
		return eventNumber(a) - eventNumber(b)
	})
}

func mustLoad(name string, out any) {
	contents, err := dataFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("reference table %s missing from embed: %s", name, err))
	}

	if err := yaml.Unmarshal(contents, out); err != nil {
		panic(fmt.Sprintf("reference table %s malformed: %s", name, err))
	}
}

func eventNumber(code string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(code, "evt"))
	return n
}

// Equipment resolves an equipment type code, falling back to a generated
// placeholder for codes the table does not know yet.
func Equipment(code int) string {
	if name, ok := equipment[code]; ok {
		return name
	}

	return fmt.Sprintf("Tipo %d", code)
}

func EventByCode(code string) (Event, bool) {
	event, ok := events[code]
	return event, ok
}

// EventCodes returns every catalogued flag code in numeric order.
func EventCodes() []string {
	return eventCodes
}

func Origin(code int) (string, bool) {
	name, ok := origins[code]
	return name, ok
}
