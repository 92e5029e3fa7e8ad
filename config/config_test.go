package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate_analysis/psychrometric"
	"climate_analysis/solar"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 53.7, cfg.Site.Latitude)
	assert.Equal(t, -0.5, cfg.Site.Timeshift)
	assert.Equal(t, 0.2, cfg.Sky.GroundReflectance)
	assert.Equal(t, 15.5, cfg.DegreeDays.HeatingBase)
	assert.Equal(t, 18.0, cfg.DegreeDays.CoolingBase)
	assert.Len(t, cfg.Ground.Depths, 21)
	assert.Equal(t, 20.0, cfg.Ground.Depths[20])
	assert.Equal(t, 16, cfg.Wind.Sectors)
	assert.Equal(t, 0.04, cfg.SolAir.SurfaceResistance)
	assert.Equal(t, psychrometric.ReferenceCoefficients, cfg.Coefficients())
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
site:
  latitude: 40.5
sky:
  isotropic: true
grid:
  tilt_step: 15
cooling:
  efficiency: 0.8
  martinez_limit: false
psychrometric:
  coefficients: exclusive
  screen: true
`))
	require.NoError(t, err)

	assert.Equal(t, 40.5, cfg.Site.Latitude)
	assert.Equal(t, -1.0, cfg.Site.Longitude)
	assert.True(t, cfg.Sky.Isotropic)
	assert.Equal(t, 0.2, cfg.Sky.GroundReflectance)
	assert.Equal(t, 15.0, cfg.Grid.TiltStep)
	assert.Equal(t, 10.0, cfg.Grid.AzimuthStep)
	assert.Equal(t, 90.0, cfg.Grid.MaxTilt)

	opts := cfg.CoolingOptions()
	assert.Equal(t, 0.8, opts.Efficiency)
	assert.False(t, opts.MartinezLimit)
	assert.True(t, opts.Screen)
	assert.Equal(t, psychrometric.ExclusiveCoefficients, opts.Coefficients)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"latitude":     "site: {latitude: 91}",
		"preset":       "site: {preset: atlantis}",
		"reflectance":  "sky: {ground_reflectance: 1.5}",
		"grid":         "grid: {azimuth_step: 0}",
		"depth":        "ground: {depths: [0, -1]}",
		"coefficients": "psychrometric: {coefficients: wrong}",
		"efficiency":   "cooling: {efficiency: -0.1}",
		"sectors":      "wind: {sectors: 0}",
		"absorptance":  "sol_air: {absorptance: 1.2}",
		"resistance":   "sol_air: {surface_resistance: 0}",
		"workers":      "workers: -2",
		"facades":      "facades: [s, up]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("site: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  preset: phoenix\nworkers: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)

	site := cfg.SolarSite()
	assert.Equal(t, 33.43, site.Latitude)
	assert.Equal(t, -7.0, site.Timezone)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSitePreset(t *testing.T) {
	s, err := SitePreset("finningley")
	require.NoError(t, err)
	assert.Equal(t, solar.Site{Latitude: 53.7, Longitude: -1, Timezone: 0, Timeshift: -0.5}, s)

	_, err = SitePreset("sheffield")
	assert.NoError(t, err)

	_, err = SitePreset("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAnalysisOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.AnalysisOptions()
	assert.Nil(t, opts.Declination)
	assert.Equal(t, 0.2, opts.GroundReflectance)

	cfg.Sky.EphemerisYear = 2023
	cfg.Workers = 3
	opts = cfg.AnalysisOptions()
	require.NotNil(t, opts.Declination)
	assert.InDelta(t, solar.DeclinationAngle(172), opts.Declination(172), 0.5*math.Pi/180)
	assert.Equal(t, 3, opts.Workers)
	assert.Nil(t, opts.Facades)
}

func TestAnalysisOptions_Facades(t *testing.T) {
	cfg, err := Parse([]byte("facades: [s, n, top]\n"))
	require.NoError(t, err)

	opts := cfg.AnalysisOptions()
	assert.Equal(t, []solar.Orientation{solar.OrientationS, solar.OrientationN, solar.OrientationTop}, opts.Facades)
}
