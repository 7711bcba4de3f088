package timezone

import (
	"time"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
)

const DefaultTimezone = "Asia/Jerusalem"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today is the hospital-local calendar date.
func Today(tz string) calendar.Date {
	return calendar.FromTime(NowIn(tz))
}
