package analysis

import (
	"fmt"

	"climate_analysis/psychrometric"
	"climate_analysis/weather"
)

/*
PsychrometricStates resolves the state of the air for every hour of the year.

	Args:
		w: weather data
		c: psychrometer coefficients
		screen: readings come from a screen rather than a wet-bulb

	Returns:
		states, [8760]
*/
func PsychrometricStates(w *weather.Weather, c psychrometric.Coefficients, screen bool) ([]psychrometric.State, error) {
	states := make([]psychrometric.State, w.Len())
	for n := range states {
		s, err := psychrometric.NewState(w.DryBulb[n], w.RelativeHumidity[n], c, screen)
		if err != nil {
			return nil, fmt.Errorf("hour %d: %w", n+1, err)
		}
		states[n] = s
	}
	return states, nil
}

// CooledAir is the supply air of a direct evaporative cooler.
type CooledAir struct {
	DryBulb         float64 // dry-bulb temperature, degree C
	MoistureContent float64 // moisture content, kg/kg(DA)
	Cooled          bool    // the cooler ran this hour
}

/*
EvaporativeCooling passes the air of every hour through a direct evaporative cooler.

	Args:
		w: weather data
		opts: cooler settings

	Returns:
		supply air, [8760]
*/
func EvaporativeCooling(w *weather.Weather, opts psychrometric.CoolingOptions) ([]CooledAir, error) {
	air := make([]CooledAir, w.Len())
	for n := range air {
		dbt, mc, err := psychrometric.EvaporativeCooling(w.DryBulb[n], w.RelativeHumidity[n], opts)
		if err != nil {
			return nil, fmt.Errorf("hour %d: %w", n+1, err)
		}
		air[n] = CooledAir{DryBulb: dbt, MoistureContent: mc, Cooled: dbt != w.DryBulb[n]}
	}
	return air, nil
}
