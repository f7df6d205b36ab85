package reference

import (
	"testing"

	"github.com/frotawatch/frotawatch/pkg/fleet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentLookup(t *testing.T) {
	assert.Equal(t, "Smart GSM", Equipment(8))
	assert.Equal(t, "Connect Smart Híbrido", Equipment(55))

	// Unknown codes get a generated placeholder rather than failing.
	assert.Equal(t, "Tipo 999", Equipment(999))
}

func TestEventLookup(t *testing.T) {
	event, ok := EventByCode("evt5")
	require.True(t, ok)
	assert.Equal(t, "Botão de Pânico", event.Description)
	assert.Equal(t, fleet.SeverityCritical, event.Severity)

	_, ok = EventByCode("evt26")
	assert.False(t, ok, "evt26 was retired from the catalogue")

	_, ok = EventByCode("evt4")
	assert.False(t, ok, "ignition is a position field, not an alert")
}

func TestEventCodesNumericOrder(t *testing.T) {
	codes := EventCodes()
	require.NotEmpty(t, codes)

	assert.Equal(t, "evt1", codes[0])

	previous := 0
	for _, code := range codes {
		number := eventNumber(code)
		assert.Greater(t, number, previous, "codes must be strictly increasing")
		previous = number
	}
}

func TestOriginLookup(t *testing.T) {
	origin, ok := Origin(1)
	require.True(t, ok)
	assert.Equal(t, "Satélite", origin)

	_, ok = Origin(99)
	assert.False(t, ok)
}
