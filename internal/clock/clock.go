// Package clock supplies "today" to the tracker.
//
// Journal entries carry a display date and question events an ISO date; both
// come from the same Clock so a single operation never straddles two days.
package clock

import (
	"time"

	"github.com/roach88/codelog/internal/record"
)

// DisplayDateLayout matches the en-US short date the browser version
// stored for journal entries, e.g. "3/14/2025".
const DisplayDateLayout = "1/2/2006"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local time zone.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// ISODate returns today's date from c as YYYY-MM-DD.
func ISODate(c Clock) string {
	return c.Now().Format(record.ISODateLayout)
}

// DisplayDate returns today's date from c in DisplayDateLayout.
func DisplayDate(c Clock) string {
	return c.Now().Format(DisplayDateLayout)
}
