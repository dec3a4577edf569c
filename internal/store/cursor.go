package store

import "time"

// Cursor tracks the oldest loaded timestamp of a conversation window and
// whether older history remains. The zero value has no history to offer;
// Reset arms it once a conversation is bound and its first page seeded.
// Mutated only by the backward-load path and on conversation changes.
type Cursor struct {
	OldestLoaded time.Time
	HasMore      bool
}

func (c *Cursor) Reset() {
	*c = Cursor{HasMore: true}
}

func (c *Cursor) Advance(oldest time.Time) {
	c.OldestLoaded = oldest
}

func (c *Cursor) Exhaust() {
	c.HasMore = false
}

// Before returns the strict upper bound for the next history fetch, or nil
// when nothing has been loaded yet.
func (c Cursor) Before() *time.Time {
	if c.OldestLoaded.IsZero() {
		return nil
	}
	ts := c.OldestLoaded
	return &ts
}
