package tracker

import "math/big"

// Cursor tracks the highest message id seen across fetch batches. Ids can
// exceed float64's exact integer range, so comparison uses big.Int; a lossy
// compare here would re-fetch or skip messages forever.
type Cursor struct {
	value string
}

func NewCursor(value string) *Cursor {
	if value == "" {
		value = "1"
	}

	return &Cursor{value: value}
}

// Observe advances the cursor if id is larger than the current watermark.
// Malformed ids are ignored.
func (c *Cursor) Observe(id string) {
	observed, ok := new(big.Int).SetString(id, 10)
	if !ok {
		return
	}

	current, ok := new(big.Int).SetString(c.value, 10)
	if !ok {
		c.value = id
		return
	}

	if observed.Cmp(current) > 0 {
		c.value = id
	}
}

func (c *Cursor) Value() string {
	return c.value
}
