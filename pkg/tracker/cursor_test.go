package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorAdvancesOnLargerID(t *testing.T) {
	cursor := NewCursor("100")

	cursor.Observe("250")
	assert.Equal(t, "250", cursor.Value())
}

func TestCursorNeverDecreases(t *testing.T) {
	cursor := NewCursor("500")

	cursor.Observe("499")
	cursor.Observe("1")
	assert.Equal(t, "500", cursor.Value())
}

func TestCursorExactComparisonBeyondFloatPrecision(t *testing.T) {
	// These two ids collapse to the same float64; exact comparison must
	// still tell them apart or the fetch loop would spin forever.
	cursor := NewCursor("9007199254740993")

	cursor.Observe("9007199254740992")
	assert.Equal(t, "9007199254740993", cursor.Value())

	cursor.Observe("9007199254740994")
	assert.Equal(t, "9007199254740994", cursor.Value())
}

func TestCursorReplayIsIdempotent(t *testing.T) {
	batch := []string{"10", "30", "20"}

	cursor := NewCursor("1")
	for _, id := range batch {
		cursor.Observe(id)
	}
	assert.Equal(t, "30", cursor.Value())

	// Submitting the same batch again must not move the watermark.
	for _, id := range batch {
		cursor.Observe(id)
	}
	assert.Equal(t, "30", cursor.Value())
}

func TestCursorIgnoresMalformedIDs(t *testing.T) {
	cursor := NewCursor("42")

	cursor.Observe("")
	cursor.Observe("not-a-number")
	assert.Equal(t, "42", cursor.Value())
}

func TestCursorDefaultsToOne(t *testing.T) {
	assert.Equal(t, "1", NewCursor("").Value())
}
