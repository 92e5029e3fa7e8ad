// Package analysis runs the solar, sky and psychrometric models over a year of climate data.
package analysis

import (
	"runtime"

	"climate_analysis/irradiance"
	"climate_analysis/solar"
	"climate_analysis/weather"
)

// Options selects the sky model and the resources of a sweep.
type Options struct {
	Isotropic         bool                   // isotropic sky instead of the Perez sky
	DiffuseOnly       bool                   // count the sky-diffuse component alone
	GroundReflectance float64                // ground reflectance, -
	Workers           int                    // concurrent surfaces, 0 means one per CPU
	Declination       solar.DeclinationModel // nil means the Spencer series
	Facades           []solar.Orientation    // surfaces of FacadesIrradiation, nil means all
}

// DefaultOptions returns the Perez sky over ground of reflectance 0.2.
func DefaultOptions() Options {
	return Options{GroundReflectance: irradiance.DefaultGroundReflectance}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) facades() []solar.Orientation {
	if len(o.Facades) == 0 {
		return solar.Orientations
	}
	return o.Facades
}

func (o Options) positions(site solar.Site) []solar.Position {
	if o.Declination == nil {
		return solar.AnnualPositions(site)
	}
	return solar.AnnualPositionsWith(site, o.Declination)
}

/*
SunriseSunset calculates the clock times of sunrise and sunset for every day of the year.

	Args:
		site: location and clock convention
		equationOfTimeOnly: correct solar time by the equation of time alone

	Returns:
		(1) sunrise, h, [365]
		(2) sunset, h, [365]
*/
func SunriseSunset(site solar.Site, equationOfTimeOnly bool) ([]float64, []float64) {
	sunrise := make([]float64, weather.DaysInYear)
	sunset := make([]float64, weather.DaysInYear)
	for d := range sunrise {
		sunrise[d], sunset[d] = site.SunriseSunset(d+1, equationOfTimeOnly)
	}
	return sunrise, sunset
}

/*
HourlyIlluminance converts the irradiance readings of a year to horizontal illuminance.

	Args:
		w: weather data
		site: location and clock convention
		global: global illuminance when true, diffuse illuminance otherwise

	Returns:
		horizontal illuminance, klx, [8760]
*/
func HourlyIlluminance(w *weather.Weather, site solar.Site, global bool) []float64 {
	positions := solar.AnnualPositions(site)

	lux := make([]float64, len(positions))
	for n, p := range positions {
		day := n/24 + 1
		lux[n] = irradiance.Illuminance(global, day, p.Altitude, w.Global[n], w.Diffuse[n]) * 1e-3
	}
	return lux
}
