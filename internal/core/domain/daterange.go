package domain

import (
	"time"
)

// DateRange is a half-open stay window: nights are spent from CheckIn
// (inclusive) to CheckOut (exclusive).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the whole-day length of the stay, never less than 1.
func (d DateRange) Nights() int {
	nights := int(d.CheckOut.Sub(d.CheckIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// Overlaps reports whether two stay windows share at least one night.
// Back-to-back stays (one checks out the day the other checks in) do not
// overlap.
func (d DateRange) Overlaps(other DateRange) bool {
	return d.CheckIn.Before(other.CheckOut) && d.CheckOut.After(other.CheckIn)
}

// Contains reports whether the given date falls inside the stay window.
func (d DateRange) Contains(date time.Time) bool {
	return !date.Before(d.CheckIn) && date.Before(d.CheckOut)
}
