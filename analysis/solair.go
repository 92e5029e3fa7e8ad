package analysis

import (
	"climate_analysis/irradiance"
	"climate_analysis/solar"
	"climate_analysis/weather"
)

// SolAirSurface describes the outside face of an opaque envelope element.
type SolAirSurface struct {
	Absorptance       float64 `yaml:"absorptance"`        // solar absorptance, -
	Emissivity        float64 `yaml:"emissivity"`         // long-wave emissivity, -
	SurfaceResistance float64 `yaml:"surface_resistance"` // outside surface resistance, m2K/W
	NightRadiation    float64 `yaml:"night_radiation"`    // net long-wave loss of a horizontal surface, W/m2
}

// DefaultSolAirSurface is a mid-coloured wall with the standard outside surface resistance.
func DefaultSolAirSurface() SolAirSurface {
	return SolAirSurface{
		Absorptance:       0.8,
		Emissivity:        0.9,
		SurfaceResistance: 0.04,
		NightRadiation:    63,
	}
}

/*
SolAirTemperature calculates the equivalent outdoor temperature of a surface for every hour.

	Args:
		w: weather data
		site: location and clock convention
		o: orientation of the surface
		s: surface properties
		opts: sky model

	Returns:
		sol-air temperature, degree C, [8760]

	Notes:
		theta_o + R_so * (a_s * I - eps * RN * F_sky). The long-wave loss is weighted by the
		sky view factor of the surface, so a horizontal roof loses the full NightRadiation and a
		wall half of it.
*/
func SolAirTemperature(w *weather.Weather, site solar.Site, o solar.Orientation, s SolAirSurface, opts Options) []float64 {
	positions := opts.positions(site)
	wallAzimuth, tilt := o.Azimuth(), o.Tilt()
	longWave := s.Emissivity * s.NightRadiation * irradiance.SkyViewFactor(tilt)

	theta := make([]float64, len(positions))
	for n, p := range positions {
		i := surfaceHour(w, n, p, wallAzimuth, tilt, opts).Total
		theta[n] = w.DryBulb[n] + s.SurfaceResistance*(s.Absorptance*i-longWave)
	}
	return theta
}

// SolAirRow is the sol-air temperature of every orientation for one hour.
type SolAirRow struct {
	Hour   int     `csv:"hour"`
	S      float64 `csv:"s"`
	SW     float64 `csv:"sw"`
	W      float64 `csv:"w"`
	NW     float64 `csv:"nw"`
	N      float64 `csv:"n"`
	NE     float64 `csv:"ne"`
	E      float64 `csv:"e"`
	SE     float64 `csv:"se"`
	Top    float64 `csv:"top"`
	Bottom float64 `csv:"bottom"`
}

// SolAirTemperatures evaluates SolAirTemperature for every orientation.
func SolAirTemperatures(w *weather.Weather, site solar.Site, s SolAirSurface, opts Options) []SolAirRow {
	series := make(map[solar.Orientation][]float64, len(solar.Orientations))
	for _, o := range solar.Orientations {
		series[o] = SolAirTemperature(w, site, o, s, opts)
	}

	rows := make([]SolAirRow, w.Len())
	for n := range rows {
		rows[n] = SolAirRow{
			Hour:   n + 1,
			S:      series[solar.OrientationS][n],
			SW:     series[solar.OrientationSW][n],
			W:      series[solar.OrientationW][n],
			NW:     series[solar.OrientationNW][n],
			N:      series[solar.OrientationN][n],
			NE:     series[solar.OrientationNE][n],
			E:      series[solar.OrientationE][n],
			SE:     series[solar.OrientationSE][n],
			Top:    series[solar.OrientationTop][n],
			Bottom: series[solar.OrientationBottom][n],
		}
	}
	return rows
}
