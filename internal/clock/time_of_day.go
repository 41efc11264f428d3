package clock

import "time"

// TimeOfDay is a snapshot of the wall-clock context that transport evaluators
// and scorers depend on. Deriving it once per comparison keeps every module
// agreed on the same peak/night boundaries and makes the pipeline a pure
// function of its inputs.
type TimeOfDay struct {
	// Hour is the local hour of day, 0-23.
	Hour int
	// IsPeak reports whether the hour falls in a commute rush window
	// (morning 8-11, evening 18-21).
	IsPeak bool
	// IsNight reports whether the hour falls in the night window
	// (22:00 onward, or before 05:00), which triggers safety penalties.
	IsNight bool
}

// TimeOfDayAt derives the time-of-day context from a wall-clock instant.
func TimeOfDayAt(t time.Time) TimeOfDay {
	h := t.Hour()
	return TimeOfDay{
		Hour:    h,
		IsPeak:  (h >= 8 && h <= 11) || (h >= 18 && h <= 21),
		IsNight: h >= 22 || h < 5,
	}
}

// CurrentTimeOfDay derives the time-of-day context from a clock.
func CurrentTimeOfDay(c Clock) TimeOfDay {
	return TimeOfDayAt(c.Now())
}
