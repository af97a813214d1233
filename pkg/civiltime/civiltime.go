package civiltime

import "time"

// The service anchors every user-facing time to a single fixed-offset
// zone. IST has no daylight saving, so a fixed offset is exact.
const (
	ZoneName   = "IST"
	IANAName   = "Asia/Kolkata" // for collaborators that need an IANA id
	zoneOffset = 5*3600 + 30*60 // UTC+05:30
	displayFmt = "Mon, 02 Jan 15:04"
	dateFmt    = "02/01/2006"
)

// Clock supplies the current instant. Injected so scheduling logic is
// testable against fixed times.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Authority converts between universal time and the civil zone.
type Authority struct {
	clock Clock
	loc   *time.Location
}

// New creates an Authority backed by the given clock.
func New(clock Clock) *Authority {
	return &Authority{
		clock: clock,
		loc:   time.FixedZone(ZoneName, zoneOffset),
	}
}

// Now returns the current instant expressed in the civil zone.
func (a *Authority) Now() time.Time {
	return a.clock.Now().In(a.loc)
}

// DayBoundsUTC returns the UTC instants bracketing "today" in the civil
// zone. End is exclusive. Correct for any stored representation of the
// current instant because the calendar math happens in the fixed zone.
func (a *Authority) DayBoundsUTC() (start, end time.Time) {
	now := a.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
	return dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC()
}

// Format renders an instant as a short display string in the civil zone.
func (a *Authority) Format(t time.Time) string {
	return t.In(a.loc).Format(displayFmt)
}

// FormatDate renders the date label used by the daily digest.
func (a *Authority) FormatDate(t time.Time) string {
	return t.In(a.loc).Format(dateFmt)
}

// Location exposes the civil zone, for callers that build prompts or
// parse zone-anchored timestamps.
func (a *Authority) Location() *time.Location {
	return a.loc
}
