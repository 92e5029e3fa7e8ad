package solar

import "math"

// Position is the apparent position of the sun at one instant.
type Position struct {
	Declination float64 // declination, rad
	HourAngle   float64 // hour angle from midnight, rad
	Altitude    float64 // altitude above the horizon, rad (0 when the sun is down)
	Azimuth     float64 // azimuth clockwise from north, rad
}

// Zenith returns the zenith angle of the sun, rad.
func (p Position) Zenith() float64 {
	return math.Pi/2 - p.Altitude
}

// IsUp reports whether the sun is above the horizon.
func (p Position) IsUp() bool {
	return p.Altitude > 0
}

/*
PositionAt calculates the position of the sun.

	Args:
		day: day of the year
		hour: solar hour, h
		latitude: latitude, degrees

	Returns:
		position of the sun
*/
func PositionAt(day int, hour, latitude float64) Position {
	phi := radians(latitude)
	dec := DeclinationAngle(day)
	alt := altitude(hour, phi, dec)

	return Position{
		Declination: dec,
		HourAngle:   hourAngle(hour),
		Altitude:    alt,
		Azimuth:     azimuth(hour, phi, alt, dec),
	}
}

/*
AnnualPositions calculates the position of the sun for every hour of the year.

	Args:
		site: location and clock convention

	Returns:
		positions, [8760]

	Notes:
		Step n covers clock hour n%24 + 1 on day n/24 + 1, matching the row order of an
		hourly climate file. The time difference is evaluated once per day.
*/
func AnnualPositions(site Site) []Position {
	return AnnualPositionsWith(site, Spencer)
}

// SunPathDays are the days traced on a sun-path diagram, from the winter to the summer
// solstice at roughly monthly intervals.
var SunPathDays = []int{355, 325, 294, 264, 233, 202, 172}

/*
SunPath traces the daytime path of the sun across the sky.

	Args:
		day: day of the year
		latitude: latitude, degrees

	Returns:
		positions from sunrise to sunset in solar time

	Notes:
		The first and last points lie on the horizon. When the sun never sets the path covers
		hours 0 to 24.
*/
func SunPath(day int, latitude float64) []Position {
	sunset, sunrise := RiseSetTimes(day, latitude)

	if sunset >= 24 {
		path := make([]Position, 0, 25)
		for h := 0; h <= 24; h++ {
			path = append(path, PositionAt(day, float64(h), latitude))
		}
		return path
	}

	path := []Position{PositionAt(day, sunrise, latitude)}

	// symmetrical about noon
	last := float64(int(sunrise) + 2*(12-int(sunrise)))
	for hour := math.Ceil(sunrise); hour < last; hour++ {
		path = append(path, PositionAt(day, hour, latitude))
	}

	return append(path, PositionAt(day, sunset, latitude))
}

/*
Stereographic projects a position onto a polar sun-path chart.

	Args:
		p: position of the sun

	Returns:
		(1) x, degrees from the zenith towards east
		(2) y, degrees from the zenith towards north

	Notes:
		The radius is the zenith angle in degrees, so the horizon maps to a circle of radius 90.
*/
func Stereographic(p Position) (float64, float64) {
	r := 90 - p.Altitude*180/math.Pi
	return r * math.Sin(p.Azimuth), r * math.Cos(p.Azimuth)
}
