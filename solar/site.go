package solar

import "math"

// Site is a location together with the clock convention of its climate file.
type Site struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Timezone  float64 // offset of clock time from UTC, h
	Timeshift float64 // climate-file time convention, h
}

// TimeDifference returns the solar time correction for the site, h.
func (s Site) TimeDifference(day int, equationOfTimeOnly bool) float64 {
	return TimeDifference(day, equationOfTimeOnly, s.Longitude, s.Timezone, s.Timeshift)
}

// SolarPosition returns the position of the sun at a clock hour.
func (s Site) SolarPosition(day int, clockHour float64) Position {
	return PositionAt(day, clockHour+s.TimeDifference(day, false), s.Latitude)
}

/*
SunriseSunset calculates sunrise and sunset as clock hours.

	Args:
		day: day of the year
		equationOfTimeOnly: apply only the equation of time correction

	Returns:
		(1) sunrise, h, no earlier than 1
		(2) sunset, h, no later than 24

	Notes:
		The limits are the first and last hourly rows of a climate file day.
*/
func (s Site) SunriseSunset(day int, equationOfTimeOnly bool) (float64, float64) {
	sunset, sunrise := RiseSetTimes(day, s.Latitude)
	dt := s.TimeDifference(day, equationOfTimeOnly)
	return math.Max(1, sunrise+dt), math.Min(24, sunset+dt)
}
