package analysis

import (
	"math"

	"climate_analysis/solar"
)

// SunPathPoint is one point of a sun-path diagram.
type SunPathPoint struct {
	Day       int     `csv:"day"`
	SolarHour float64 `csv:"solar_hour"` // h
	Altitude  float64 `csv:"altitude"`   // degrees
	Azimuth   float64 `csv:"azimuth"`    // degrees clockwise from north
	X         float64 `csv:"x"`          // degrees from the zenith towards east
	Y         float64 `csv:"y"`          // degrees from the zenith towards north
}

/*
SunPathChart traces the sun paths of solar.SunPathDays on a polar chart.

	Args:
		latitude: latitude, degrees

	Returns:
		points of every traced day, sunrise first
*/
func SunPathChart(latitude float64) []SunPathPoint {
	var points []SunPathPoint
	for _, day := range solar.SunPathDays {
		for _, p := range solar.SunPath(day, latitude) {
			x, y := solar.Stereographic(p)
			points = append(points, SunPathPoint{
				Day:       day,
				SolarHour: p.HourAngle * 12 / math.Pi,
				Altitude:  p.Altitude * 180 / math.Pi,
				Azimuth:   p.Azimuth * 180 / math.Pi,
				X:         x,
				Y:         y,
			})
		}
	}
	return points
}
