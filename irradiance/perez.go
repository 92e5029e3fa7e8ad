// Package irradiance splits horizontal irradiance readings into the beam, sky-diffuse and
// ground-reflected parts received by a tilted plane, using either an isotropic sky or the Perez
// (1990) anisotropic sky, and converts irradiance to illuminance.
package irradiance

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a clearness bin outside 1..8 is looked up.
var ErrOutOfRange = errors.New("clearness bin out of range")

const (
	// solar constant, W/m2
	solarConstant = 1367.0

	// lowest solar altitude used by the Perez model, rad
	minPerezAltitude = 5 * math.Pi / 180

	// number of sky clearness categories
	clearnessBins = 8
)

// upper limits of the clearness categories 1 to 6; 7 ends at 6.2 and 8 is open ended
var clearnessBounds = [...]float64{1.065, 1.23, 1.5, 1.95, 2.8, 4.5}

/*
ClearnessIndex calculates the Perez sky clearness ε.

	Args:
		altitude: solar altitude, rad
		idh: diffuse horizontal irradiance, W/m2
		ibn: beam normal irradiance, W/m2

	Returns:
		sky clearness, -

	Notes:
		ε = ((idh + ibn)/idh + κθz³)/(1 + κθz³) with κ = 5.535e-6 and θz in degrees.
		With idh = 0 the index is infinite or NaN.
*/
func ClearnessIndex(altitude, idh, ibn float64) float64 {
	thetaZ := (math.Pi/2 - altitude) * 180 / math.Pi
	k := 5.535e-6 * thetaZ * thetaZ * thetaZ
	return ((idh+ibn)/idh + k) / (1 + k)
}

/*
ClearnessBin classifies a sky clearness into one of the eight Perez categories.

	Args:
		index: sky clearness, -

	Returns:
		category, 1 (overcast) to 8 (clear)

	Notes:
		A value exactly on a category limit belongs to the lower category, except 6.2 which
		opens category 8. Values below 1 (negative beam from noisy readings) are overcast; NaN and
		infinite values are clear.
*/
func ClearnessBin(index float64) int {
	if math.IsNaN(index) || index >= 6.2 {
		return clearnessBins
	}
	for i, upper := range clearnessBounds {
		if index <= upper {
			return i + 1
		}
	}
	return 7
}

// PerezClearness returns the clearness category of the sky.
func PerezClearness(altitude, idh, ibn float64) int {
	return ClearnessBin(ClearnessIndex(altitude, idh, ibn))
}

/*
ExtraterrestrialIrradiance calculates the irradiance at the top of the atmosphere.

	Args:
		day: day of the year

	Returns:
		extraterrestrial normal irradiance, W/m2
*/
func ExtraterrestrialIrradiance(day int) float64 {
	return solarConstant * (1 + 0.033*math.Cos(2*math.Pi*float64(day)/365))
}

/*
PerezBrightness calculates the Perez sky brightness Δ.

	Args:
		day: day of the year
		altitude: solar altitude, rad
		idh: diffuse horizontal irradiance, W/m2

	Returns:
		sky brightness, -

	Notes:
		Δ = m·idh/I0 with the relative air mass m taken as 1/sin(altitude).
*/
func PerezBrightness(day int, altitude, idh float64) float64 {
	airmass := 1 / math.Sin(altitude)
	return airmass * idh / ExtraterrestrialIrradiance(day)
}

// PerezCoefficients are the circumsolar (F1x) and horizon (F2x) brightening coefficients of one
// clearness category.
type PerezCoefficients struct {
	F11, F12, F13 float64
	F21, F22, F23 float64
}

var perezTable = [clearnessBins]PerezCoefficients{
	{F11: -0.0083, F12: 0.5877, F13: -0.0621, F21: -0.0596, F22: 0.0721, F23: -0.022},
	{F11: 0.1299, F12: 0.6826, F13: -0.1514, F21: -0.0189, F22: 0.066, F23: -0.0289},
	{F11: 0.3297, F12: 0.4869, F13: -0.2211, F21: 0.0554, F22: -0.064, F23: -0.0261},
	{F11: 0.5682, F12: 0.1875, F13: -0.2951, F21: 0.1089, F22: -0.1519, F23: -0.014},
	{F11: 0.873, F12: -0.392, F13: -0.3616, F21: 0.2256, F22: -0.462, F23: 0.0012},
	{F11: 1.1326, F12: -1.2367, F13: -0.4118, F21: 0.2878, F22: -0.823, F23: 0.0559},
	{F11: 1.0602, F12: -1.5999, F13: -0.3589, F21: 0.2642, F22: -1.1272, F23: 0.1311},
	{F11: 0.6777, F12: -0.3273, F13: -0.2504, F21: 0.1561, F22: -1.3765, F23: 0.2506},
}

// PerezCoefficientsFor returns the coefficients of a clearness category.
func PerezCoefficientsFor(bin int) (PerezCoefficients, error) {
	if bin < 1 || bin > clearnessBins {
		return PerezCoefficients{}, fmt.Errorf("perez coefficients for bin %d: %w", bin, ErrOutOfRange)
	}
	return perezTable[bin-1], nil
}

/*
DiffuseOnTiltedPlanePerez calculates the sky-diffuse irradiance on a tilted plane with the
Perez anisotropic sky.

	Args:
		day: day of the year
		cai: cosine of the angle of incidence on the plane, -
		altitude: solar altitude, rad
		idh: diffuse horizontal irradiance, W/m2
		ibn: beam normal irradiance, W/m2
		tilt: tilt of the plane from horizontal, rad

	Returns:
		diffuse irradiance on the plane, W/m2

	Notes:
		The altitude is raised to 5° before use, which also bounds the circumsolar
		denominator at sin(5°).
*/
func DiffuseOnTiltedPlanePerez(day int, cai, altitude, idh, ibn, tilt float64) float64 {
	altitude = math.Max(altitude, minPerezAltitude)

	c := perezTable[PerezClearness(altitude, idh, ibn)-1]

	thetaZ := math.Pi/2 - altitude
	brightness := PerezBrightness(day, altitude, idh)

	// circumsolar brightening
	f1 := math.Max(c.F11+c.F12*brightness+c.F13*thetaZ, 0)

	// horizon brightening
	f2 := c.F21 + c.F22*brightness + c.F23*thetaZ

	a1 := math.Max(math.Sin(altitude), math.Sin(minPerezAltitude))

	return idh * ((1-f1)*SkyViewFactor(tilt) + f1*cai/a1 + f2*math.Sin(tilt))
}
