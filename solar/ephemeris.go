package solar

import (
	"github.com/soniakeys/meeus/v3/julian"
	meeus "github.com/soniakeys/meeus/v3/solar"
)

// DeclinationModel returns the solar declination on a day of the year, rad.
type DeclinationModel func(day int) float64

// Spencer is the Fourier series declination used throughout the package.
var Spencer DeclinationModel = DeclinationAngle

/*
Ephemeris returns a declination model that evaluates the apparent position of the sun at noon
UT on each day of a given year.

	Args:
		year: Gregorian calendar year

	Returns:
		declination model

	Notes:
		Meeus, Astronomical Algorithms, ch. 25 (low accuracy). Days past the end of a non-leap
		year run on into the next year.
*/
func Ephemeris(year int) DeclinationModel {
	start := julian.CalendarGregorianToJD(year, 1, 1.5)
	return func(day int) float64 {
		_, dec := meeus.ApparentEquatorial(start + float64(day-1))
		return dec.Rad()
	}
}

/*
AnnualPositionsWith calculates the position of the sun for every hour of the year using a
given declination model.

	Args:
		site: location and clock convention
		model: declination model

	Returns:
		positions, [8760]
*/
func AnnualPositionsWith(site Site, model DeclinationModel) []Position {
	positions := make([]Position, daysInYear*24)

	phi := radians(site.Latitude)

	off := 0
	for day := 1; day <= daysInYear; day++ {
		dec := model(day)
		dt := site.TimeDifference(day, false)

		for h := 1; h <= 24; h++ {
			hour := float64(h) + dt
			alt := altitude(hour, phi, dec)
			positions[off] = Position{
				Declination: dec,
				HourAngle:   hourAngle(hour),
				Altitude:    alt,
				Azimuth:     azimuth(hour, phi, alt, dec),
			}
			off++
		}
	}

	return positions
}
