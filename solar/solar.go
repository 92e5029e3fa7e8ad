// Package solar calculates the apparent position of the sun and the incidence of its beam on
// tilted planes.
//
// Hours are measured in solar time from midnight, so the hour angle is π·hour/12 and noon lies at
// π. Azimuth is measured clockwise from north. Latitudes and longitudes are given in degrees,
// every other angle in radians.
package solar

import "math"

// length of the model year, d
const daysInYear = 365

/*
arccos is an inverse cosine that clamps its argument to [-1, 1].

	Notes:
		-tan(lat)·tan(dec) leaves [-1, 1] inside the polar circles; the clamp turns
		polar day into 0 and polar night into π instead of NaN.
*/
func arccos(x float64) float64 {
	if x >= 1 {
		return 0
	}
	if x <= -1 {
		return math.Pi
	}
	return math.Acos(x)
}

// arcsin is an inverse sine that clamps its argument to [-1, 1].
func arcsin(x float64) float64 {
	if x >= 1 {
		return math.Pi / 2
	}
	if x <= -1 {
		return -math.Pi / 2
	}
	return math.Asin(x)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

/*
DeclinationAngle calculates the declination of the sun.

	Args:
		day: day of the year, 1 = 1st January

	Returns:
		declination, rad

	Notes:
		Spencer (1971) Fourier series truncated after the third harmonic.
*/
func DeclinationAngle(day int) float64 {
	tau := 2 * math.Pi * float64(day-1) / daysInYear
	return 0.006918 -
		0.399912*math.Cos(tau) + 0.070257*math.Sin(tau) -
		0.006758*math.Cos(2*tau) + 0.000907*math.Sin(2*tau) -
		0.002697*math.Cos(3*tau) + 0.00148*math.Sin(3*tau)
}

/*
TimeDifference calculates the difference between solar time and clock time.

	Args:
		day: day of the year
		equationOfTimeOnly: return only the equation of time correction
		longitude: longitude, degrees (east positive)
		timezone: offset of local clock time from UTC, h
		timeshift: climate-file time convention, h (-0.5 for hour-centred readings)

	Returns:
		time difference to add to clock time to obtain solar time, h
*/
func TimeDifference(day int, equationOfTimeOnly bool, longitude, timezone, timeshift float64) float64 {
	b := 2 * math.Pi * float64(day-1) / daysInYear

	// the earth turns one degree every 4 minutes
	eqt := (4 * 180 / math.Pi) * (0.000075 +
		0.001868*math.Cos(b) - 0.032077*math.Sin(b) -
		0.014615*math.Cos(2*b) - 0.040849*math.Sin(2*b))

	if equationOfTimeOnly {
		return eqt / 60
	}

	return (4*longitude - 60*timezone + 60*timeshift + eqt) / 60
}

/*
DayLength calculates the number of hours the sun spends above the horizon.

	Args:
		day: day of the year
		latitude: latitude, degrees

	Returns:
		day length, h (0 during polar night, 24 during polar day)
*/
func DayLength(day int, latitude float64) float64 {
	phi := radians(latitude)
	return 24 * arccos(-math.Tan(phi)*math.Tan(DeclinationAngle(day))) / math.Pi
}

/*
RiseSetTimes calculates sunset and sunrise in solar time.

	Args:
		day: day of the year
		latitude: latitude, degrees

	Returns:
		(1) sunset, h
		(2) sunrise, h
*/
func RiseSetTimes(day int, latitude float64) (float64, float64) {
	dl := DayLength(day, latitude)
	return 12 + dl/2, 12 - dl/2
}

/*
AltitudeAngle calculates the solar altitude.

	Args:
		day: day of the year
		hour: solar hour, h
		latitude: latitude, degrees

	Returns:
		solar altitude, rad

	Notes:
		A sun below the horizon is reported at altitude 0.
*/
func AltitudeAngle(day int, hour, latitude float64) float64 {
	return altitude(hour, radians(latitude), DeclinationAngle(day))
}

// hourAngle measures the rotation of the earth since solar midnight, rad.
func hourAngle(hour float64) float64 {
	return math.Pi * hour / 12
}

func altitude(hour, phi, dec float64) float64 {
	h := hourAngle(hour)
	alt := arcsin(math.Sin(phi)*math.Sin(dec) - math.Cos(phi)*math.Cos(dec)*math.Cos(h))
	return math.Max(alt, 0)
}

/*
AzimuthAngle calculates the solar azimuth.

	Args:
		hour: solar hour, h
		latitude: latitude, degrees
		altitude: solar altitude, rad
		declination: declination, rad

	Returns:
		solar azimuth clockwise from north, rad, in [0, 2π)

	Notes:
		Before solar noon the sun is in the eastern half of the sky (arccos), afterwards in the
		western half (2π - arccos).
*/
func AzimuthAngle(hour, latitude, altitude, declination float64) float64 {
	return azimuth(hour, radians(latitude), altitude, declination)
}

func azimuth(hour, phi, alt, dec float64) float64 {
	h := hourAngle(hour)

	x := (-math.Sin(phi)*math.Sin(alt) + math.Sin(dec)) / (math.Cos(phi) * math.Cos(alt))
	if math.IsNaN(x) {
		x = 0
	}

	if h < math.Pi {
		return arccos(x)
	}

	az := 2*math.Pi - arccos(x)
	if az >= 2*math.Pi {
		az -= 2 * math.Pi
	}
	return az
}

/*
CosineAngleOfIncidence calculates the cosine of the angle between the sun's rays and the normal
of a tilted plane.

	Args:
		wallAzimuth: azimuth of the plane normal, clockwise from north, rad
		tilt: tilt of the plane from horizontal, rad
		altitude: solar altitude, rad
		azimuth: solar azimuth, rad

	Returns:
		cosine of the angle of incidence, in [0, 1]

	Notes:
		A plane facing away from the sun shades itself, so negative values are set to zero.
*/
func CosineAngleOfIncidence(wallAzimuth, tilt, altitude, azimuth float64) float64 {
	wallSolarAzimuth := math.Abs(azimuth - wallAzimuth)
	cai := math.Cos(altitude)*math.Cos(wallSolarAzimuth)*math.Sin(tilt) +
		math.Sin(altitude)*math.Cos(tilt)
	return math.Min(math.Max(cai, 0), 1)
}
