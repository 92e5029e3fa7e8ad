package psychrometric

// Coefficients selects the psychrometer correction table used to relate wet-bulb (or screen)
// temperature to vapour pressure.
type Coefficients int

const (
	// ReferenceCoefficients reproduces the reference psychrometric charts: 5.94 for a wet bulb
	// below freezing, 6.66 in every other case, whatever the screen flag.
	ReferenceCoefficients Coefficients = iota

	// ExclusiveCoefficients distinguishes all four wet/screen and above/below freezing cases.
	ExclusiveCoefficients
)

func (c Coefficients) String() string {
	switch c {
	case ReferenceCoefficients:
		return "reference"
	case ExclusiveCoefficients:
		return "exclusive"
	default:
		return "unknown"
	}
}

// CoefficientsFromString parses the names returned by String.
func CoefficientsFromString(str string) (Coefficients, bool) {
	switch str {
	case "reference", "":
		return ReferenceCoefficients, true
	case "exclusive":
		return ExclusiveCoefficients, true
	default:
		return ReferenceCoefficients, false
	}
}

/*
correction returns the psychrometer correction coefficient.

	Args:
		wb: wet-bulb or screen temperature, degree C
		screen: true for a screen (unventilated) thermometer

	Returns:
		correction coefficient, 1e-4 / K
*/
func (c Coefficients) correction(wb float64, screen bool) float64 {
	if c == ExclusiveCoefficients {
		switch {
		case wb >= 0 && screen:
			return 7.99
		case wb < 0 && screen:
			return 7.2
		case wb < 0:
			return 5.94
		default:
			return 6.66
		}
	}

	if wb < 0 && !screen {
		return 5.94
	}
	return 6.66
}

/*
PartialVapourPressure calculates the partial pressure of water vapour mixed with dry air.

	Args:
		dbt: dry-bulb temperature, degree C
		wb: wet-bulb or screen temperature, degree C
		screen: true for a screen temperature

	Returns:
		partial vapour pressure, kPa
*/
func (c Coefficients) PartialVapourPressure(dbt, wb float64, screen bool) float64 {
	corr := c.correction(wb, screen)
	return SaturatedVapourPressure(wb) - atmosphericPressure*corr*1e-4*(dbt-wb)
}

/*
WetBulbTemperature calculates the wet-bulb (or screen) temperature from dry-bulb temperature
and relative humidity.

	Args:
		dbt: dry-bulb temperature, degree C
		rh: relative humidity, %
		screen: true to return the screen temperature

	Returns:
		wet-bulb or screen temperature, degree C

	Notes:
		Decreasing-step search downward from dbt. The step starts at 64 and halves while it is
		greater than 0.25, so the answer lies on a 0.5 degree C grid.
*/
func (c Coefficients) WetBulbTemperature(dbt, rh float64, screen bool) float64 {
	psuper := SaturatedVapourPressure(dbt)

	step := 64.0
	twet := dbt
	for step > 0.25 {
		previous := twet
		twet -= step
		rhWet := 100 * c.PartialVapourPressure(dbt, twet, screen) / psuper
		if rhWet < rh {
			twet = previous
		}
		step /= 2
	}

	return twet
}

// PartialVapourPressure calls ReferenceCoefficients.PartialVapourPressure.
func PartialVapourPressure(dbt, wb float64, screen bool) float64 {
	return ReferenceCoefficients.PartialVapourPressure(dbt, wb, screen)
}

// WetBulbTemperature calls ReferenceCoefficients.WetBulbTemperature.
func WetBulbTemperature(dbt, rh float64, screen bool) float64 {
	return ReferenceCoefficients.WetBulbTemperature(dbt, rh, screen)
}

/*
MoistureContentFromWetBulb calculates moisture content from dry-bulb and wet-bulb temperatures.

	Args:
		dbt: dry-bulb temperature, degree C
		wb: wet-bulb temperature, degree C

	Returns:
		moisture content, kg/kg(DA)

	Notes:
		The vapour pressure is handled in hPa here. Both coefficient tables agree for a
		ventilated wet bulb.
*/
func MoistureContentFromWetBulb(dbt, wb float64) (float64, error) {
	fs, err := InteractionCoefficient(dbt)
	if err != nil {
		return 0, err
	}

	pst := 10 * PartialVapourPressure(dbt, wb, false)
	return molecularWeightRatio * fs * pst / (10*atmosphericPressure - fs*pst), nil
}
