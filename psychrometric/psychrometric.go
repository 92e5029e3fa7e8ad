// Package psychrometric solves the state of humid air from dry-bulb temperature together with
// relative humidity, moisture content or wet-bulb temperature.
package psychrometric

import (
	"errors"
	"math"
)

var (
	// ErrOutOfRange is returned when a temperature lies outside the fitted range of the
	// interaction coefficient regression.
	ErrOutOfRange = errors.New("psychrometric: input out of supported range")

	// ErrNotConverged is returned when a bisection solver exhausts its iteration budget.
	ErrNotConverged = errors.New("psychrometric: solver did not converge")
)

// convergence limit of the moisture content bisection
const moistureTolerance = 1e-5

// iteration cap of the bisection solvers
const maxIterations = 64

// upper limit of the interaction coefficient regression, degree C
const maxTemperature = 60.0

/*
SaturatedVapourPressure calculates the saturated vapour pressure.

	Args:
		dbt: dry-bulb temperature, degree C

	Returns:
		saturated vapour pressure, kPa

	Notes:
		Two regressions are used, one over water (dbt >= 0) and one over ice (dbt < 0).
*/
func SaturatedVapourPressure(dbt float64) float64 {
	if dbt >= 0 {
		t := dbt + 273.16
		suf := 30.59051 - 8.2*math.Log10(t) + 0.0024804*t
		suf = suf - 3142.31/t
		return math.Pow(10, suf)
	}

	return math.Pow(10, 9.5380997-2663.91/(dbt+273.15))
}

/*
InteractionCoefficient provides the enhancement factor of moist air.

	Args:
		dbt: dry-bulb temperature, degree C

	Returns:
		interaction coefficient, -

	Notes:
		Linear in absolute temperature over the brackets (-inf, 11), [11, 26) and [26, 60].
		Above 60 degree C the regression is undefined and ErrOutOfRange is returned.
*/
func InteractionCoefficient(dbt float64) (float64, error) {
	t := dbt + 273.15
	switch {
	case dbt < 11:
		return -7.3e-06*t + 1.00444, nil
	case dbt < 26:
		return 1.32e-05*t + 1.004205, nil
	case dbt <= maxTemperature:
		return 4.05e-05*t + 1.003497, nil
	default:
		return 0, ErrOutOfRange
	}
}

/*
SaturatedMoistureContent calculates the moisture content of saturated air.

	Args:
		fs: interaction coefficient, -
		pss: saturated vapour pressure, kPa

	Returns:
		saturated moisture content, kg/kg(DA)
*/
func SaturatedMoistureContent(fs, pss float64) float64 {
	return molecularWeightRatio * fs * pss / (atmosphericPressure - fs*pss)
}

/*
MoistureContent calculates moisture content from dry-bulb temperature and relative humidity.

	Args:
		dbt: dry-bulb temperature, degree C
		rh: relative humidity, %

	Returns:
		moisture content, kg/kg(DA)

	Notes:
		Bisection over [0, 1] kg/kg until |rh * g_sat - 100 * g| < 1e-5.
		Negative humidity never converges and returns ErrNotConverged.
*/
func MoistureContent(dbt, rh float64) (float64, error) {
	fs, err := InteractionCoefficient(dbt)
	if err != nil {
		return 0, err
	}

	lhs := rh * SaturatedMoistureContent(fs, SaturatedVapourPressure(dbt))

	low, high := 0.0, 1.0
	for i := 0; i < maxIterations; i++ {
		middle := low + (high-low)/2
		rhMiddle := 100 * middle
		if lhs < rhMiddle {
			high = middle
		} else {
			low = middle
		}
		if math.Abs(lhs-rhMiddle) < moistureTolerance {
			return middle, nil
		}
	}

	return 0, ErrNotConverged
}

/*
SaturationTemperature calculates the temperature at which air of the given moisture content
becomes saturated.

	Args:
		mc: moisture content, kg/kg(DA)

	Returns:
		saturation temperature, degree C

	Notes:
		Decreasing-step search from 60 degree C. The step starts at 64 and halves while it is
		greater than 0.05, so the answer lies on a 0.0625 degree C grid.
*/
func SaturationTemperature(mc float64) (float64, error) {
	step := 64.0
	t := maxTemperature
	for step > 0.05 {
		previous := t
		t -= step
		gsat, err := MoistureContent(t, saturated)
		if err != nil {
			return 0, err
		}
		if gsat < mc {
			t = previous
		}
		step /= 2
	}

	return t, nil
}

/*
VapourPressure calculates the vapour pressure of air at a given moisture content.

	Args:
		mc: moisture content, kg/kg(DA)

	Returns:
		vapour pressure, kPa
*/
func VapourPressure(mc float64) float64 {
	return atmosphericPressure * mc / (0.622 + mc)
}

/*
RelativeHumidity calculates relative humidity from moisture content and dry-bulb temperature.

	Args:
		mc: moisture content, kg/kg(DA)
		dbt: dry-bulb temperature, degree C

	Returns:
		relative humidity, %
*/
func RelativeHumidity(mc, dbt float64) float64 {
	return 100 * VapourPressure(mc) / SaturatedVapourPressure(dbt)
}
