package providers

import "time"

// ResolveTimezone loads the location used to decide which date counts as
// "today" (games roll over on Eastern time by default). Returns nil for an
// empty or unknown zone so callers can fall back to UTC.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
