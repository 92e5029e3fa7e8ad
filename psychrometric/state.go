package psychrometric

import "fmt"

// State is the psychrometric state of one hourly reading.
type State struct {
	DryBulb          float64 // dry-bulb temperature, degree C
	RelativeHumidity float64 // relative humidity, %
	MoistureContent  float64 // moisture content, kg/kg(DA)
	WetBulb          float64 // wet-bulb or screen temperature, degree C
	Enthalpy         float64 // specific enthalpy, kJ/kg(DA)
}

// NewState resolves the full state from a dry-bulb temperature and relative humidity.
func NewState(dbt, rh float64, c Coefficients, screen bool) (State, error) {
	mc, err := MoistureContent(dbt, rh)
	if err != nil {
		return State{}, fmt.Errorf("state at %.1f C, %.1f%%: %w", dbt, rh, err)
	}

	return State{
		DryBulb:          dbt,
		RelativeHumidity: rh,
		MoistureContent:  mc,
		WetBulb:          c.WetBulbTemperature(dbt, rh, screen),
		Enthalpy:         enthalpy(dbt, mc),
	}, nil
}

/*
Enthalpy calculates the specific enthalpy of humid air.

	Args:
		dbt: dry-bulb temperature, degree C
		rh: relative humidity, %

	Returns:
		specific enthalpy, kJ/kg(DA)
*/
func Enthalpy(dbt, rh float64) (float64, error) {
	mc, err := MoistureContent(dbt, rh)
	if err != nil {
		return 0, err
	}
	return enthalpy(dbt, mc), nil
}

func enthalpy(dbt, mc float64) float64 {
	var air float64
	if dbt >= 0 {
		air = 1.007*dbt - 0.026
	} else {
		air = 1.005 * dbt
	}
	return air + mc*(latentHeat+cpVapour*dbt)
}

// CoolingOptions configures direct evaporative cooling.
type CoolingOptions struct {
	Efficiency    float64 // fraction of the wet-bulb depression removed, -
	LowerLimit    float64 // dry-bulb temperature from which air is cooled, degree C
	MartinezLimit bool    // derive the lower limit from moisture content instead of LowerLimit
	Screen        bool
	Coefficients  Coefficients
}

/*
EvaporativeCooling moves a state along its wet-bulb line to mimic adiabatic cooling.

	Args:
		dbt: dry-bulb temperature, degree C
		rh: relative humidity, %
		opts: cooler settings

	Returns:
		(1) dry-bulb temperature after cooling, degree C
		(2) moisture content after cooling, kg/kg(DA)

	Notes:
		With the Martinez limit the lower limit is 29 + g / -0.0055, the slope of the passive
		downdraught evaporative cooling line. States below the limit are returned unchanged.
*/
func EvaporativeCooling(dbt, rh float64, opts CoolingOptions) (float64, float64, error) {
	g, err := MoistureContent(dbt, rh)
	if err != nil {
		return 0, 0, err
	}

	twet := opts.Coefficients.WetBulbTemperature(dbt, rh, opts.Screen)
	depression := dbt - twet

	limit := opts.LowerLimit
	if opts.MartinezLimit {
		limit = 29 + g/-0.0055
	}

	if dbt < limit {
		return dbt, g, nil
	}

	cooled := dbt - opts.Efficiency*depression
	mc, err := MoistureContentFromWetBulb(cooled, twet)
	if err != nil {
		return 0, 0, err
	}
	return cooled, mc, nil
}
