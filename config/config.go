// Package config reads the run settings of a climate analysis from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"climate_analysis/analysis"
	"climate_analysis/irradiance"
	"climate_analysis/psychrometric"
	"climate_analysis/solar"
)

// ErrInvalid wraps every rejected setting.
var ErrInvalid = errors.New("invalid configuration")

// SiteConfig locates the climate file. A named preset overrides the coordinates.
type SiteConfig struct {
	Preset    string  `yaml:"preset"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  float64 `yaml:"timezone"`
	Timeshift float64 `yaml:"timeshift"`
}

// SkyConfig selects the sky and sun models.
type SkyConfig struct {
	Isotropic         bool    `yaml:"isotropic"`
	DiffuseOnly       bool    `yaml:"diffuse_only"`
	GroundReflectance float64 `yaml:"ground_reflectance"`
	EphemerisYear     int     `yaml:"ephemeris_year"` // 0 keeps the Spencer declination
}

// DegreeDayConfig sets the degree-day base temperatures, degree C.
type DegreeDayConfig struct {
	HeatingBase float64 `yaml:"heating_base"`
	CoolingBase float64 `yaml:"cooling_base"`
}

// GroundConfig lists the depths of the ground temperature profile, m.
type GroundConfig struct {
	Depths []float64 `yaml:"depths"`
}

// PsychrometricConfig selects the psychrometer coefficients and ventilation.
type PsychrometricConfig struct {
	Coefficients string `yaml:"coefficients"`
	Screen       bool   `yaml:"screen"`
}

// CoolingConfig describes the direct evaporative cooler.
type CoolingConfig struct {
	Efficiency    float64 `yaml:"efficiency"`
	LowerLimit    float64 `yaml:"lower_limit"`
	MartinezLimit bool    `yaml:"martinez_limit"`
}

// WindConfig sets the number of direction sectors of the roses.
type WindConfig struct {
	Sectors int `yaml:"sectors"`
}

// Config is the whole run configuration.
type Config struct {
	Site          SiteConfig             `yaml:"site"`
	Sky           SkyConfig              `yaml:"sky"`
	Grid          analysis.Grid          `yaml:"grid"`
	DegreeDays    DegreeDayConfig        `yaml:"degree_days"`
	Ground        GroundConfig           `yaml:"ground"`
	Psychrometric PsychrometricConfig    `yaml:"psychrometric"`
	Cooling       CoolingConfig          `yaml:"cooling"`
	Wind          WindConfig             `yaml:"wind"`
	SolAir        analysis.SolAirSurface `yaml:"sol_air"`
	Facades       []string               `yaml:"facades"` // orientation names, empty reports all
	Workers       int                    `yaml:"workers"`
}

// Default returns the settings for the Finningley climate file.
func Default() Config {
	depths := make([]float64, 21)
	for i := range depths {
		depths[i] = float64(i)
	}

	return Config{
		Site: SiteConfig{
			Preset:    "",
			Latitude:  53.7,
			Longitude: -1,
			Timezone:  0,
			Timeshift: -0.5,
		},
		Sky: SkyConfig{
			GroundReflectance: irradiance.DefaultGroundReflectance,
		},
		Grid: analysis.DefaultGrid(),
		DegreeDays: DegreeDayConfig{
			HeatingBase: 15.5,
			CoolingBase: 18,
		},
		Ground: GroundConfig{Depths: depths},
		Psychrometric: PsychrometricConfig{
			Coefficients: psychrometric.ReferenceCoefficients.String(),
		},
		Cooling: CoolingConfig{
			Efficiency:    0.7,
			LowerLimit:    25,
			MartinezLimit: true,
		},
		Wind:   WindConfig{Sectors: 16},
		SolAir: analysis.DefaultSolAirSurface(),
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting outside its domain.
func (c Config) Validate() error {
	if c.Site.Preset != "" {
		if _, err := SitePreset(c.Site.Preset); err != nil {
			return err
		}
	}
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return fmt.Errorf("%w: latitude %g", ErrInvalid, c.Site.Latitude)
	}
	if c.Site.Longitude < -180 || c.Site.Longitude > 180 {
		return fmt.Errorf("%w: longitude %g", ErrInvalid, c.Site.Longitude)
	}
	if c.Sky.GroundReflectance < 0 || c.Sky.GroundReflectance > 1 {
		return fmt.Errorf("%w: ground reflectance %g", ErrInvalid, c.Sky.GroundReflectance)
	}
	if c.Grid.TiltStep <= 0 || c.Grid.AzimuthStep <= 0 {
		return fmt.Errorf("%w: grid steps must be positive", ErrInvalid)
	}
	if c.Grid.MaxTilt < 0 || c.Grid.MaxTilt > 180 {
		return fmt.Errorf("%w: max tilt %g", ErrInvalid, c.Grid.MaxTilt)
	}
	for _, d := range c.Ground.Depths {
		if d < 0 {
			return fmt.Errorf("%w: ground depth %g", ErrInvalid, d)
		}
	}
	if _, ok := psychrometric.CoefficientsFromString(c.Psychrometric.Coefficients); !ok {
		return fmt.Errorf("%w: coefficients %q", ErrInvalid, c.Psychrometric.Coefficients)
	}
	if c.Cooling.Efficiency < 0 || c.Cooling.Efficiency > 1 {
		return fmt.Errorf("%w: cooling efficiency %g", ErrInvalid, c.Cooling.Efficiency)
	}
	if c.Wind.Sectors < 1 {
		return fmt.Errorf("%w: wind sectors %d", ErrInvalid, c.Wind.Sectors)
	}
	if c.SolAir.Absorptance < 0 || c.SolAir.Absorptance > 1 || c.SolAir.Emissivity < 0 || c.SolAir.Emissivity > 1 {
		return fmt.Errorf("%w: sol-air absorptance and emissivity must lie in [0, 1]", ErrInvalid)
	}
	if c.SolAir.SurfaceResistance <= 0 {
		return fmt.Errorf("%w: surface resistance %g", ErrInvalid, c.SolAir.SurfaceResistance)
	}
	for _, f := range c.Facades {
		if _, err := solar.OrientationFromString(f); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	return nil
}

// SolarSite returns the preset site when one is named, otherwise the configured coordinates.
func (c Config) SolarSite() solar.Site {
	if c.Site.Preset != "" {
		if s, err := SitePreset(c.Site.Preset); err == nil {
			return s
		}
	}
	return solar.Site{
		Latitude:  c.Site.Latitude,
		Longitude: c.Site.Longitude,
		Timezone:  c.Site.Timezone,
		Timeshift: c.Site.Timeshift,
	}
}

// AnalysisOptions builds the sweep options.
func (c Config) AnalysisOptions() analysis.Options {
	opts := analysis.Options{
		Isotropic:         c.Sky.Isotropic,
		DiffuseOnly:       c.Sky.DiffuseOnly,
		GroundReflectance: c.Sky.GroundReflectance,
		Workers:           c.Workers,
	}
	if c.Sky.EphemerisYear != 0 {
		opts.Declination = solar.Ephemeris(c.Sky.EphemerisYear)
	}
	for _, f := range c.Facades {
		if o, err := solar.OrientationFromString(f); err == nil {
			opts.Facades = append(opts.Facades, o)
		}
	}
	return opts
}

// Coefficients returns the psychrometer table. Validate has already rejected unknown names.
func (c Config) Coefficients() psychrometric.Coefficients {
	coef, _ := psychrometric.CoefficientsFromString(c.Psychrometric.Coefficients)
	return coef
}

// CoolingOptions builds the evaporative cooler settings.
func (c Config) CoolingOptions() psychrometric.CoolingOptions {
	return psychrometric.CoolingOptions{
		Efficiency:    c.Cooling.Efficiency,
		LowerLimit:    c.Cooling.LowerLimit,
		MartinezLimit: c.Cooling.MartinezLimit,
		Screen:        c.Psychrometric.Screen,
		Coefficients:  c.Coefficients(),
	}
}

/*
SitePreset returns the site of a bundled climate file.

	Args:
		name: finningley, sheffield or phoenix

	Returns:
		site in degrees with its clock convention
*/
func SitePreset(name string) (solar.Site, error) {
	switch name {
	case "finningley":
		return solar.Site{Latitude: 53.7, Longitude: -1, Timezone: 0, Timeshift: -0.5}, nil
	case "sheffield":
		return solar.Site{Latitude: 53.38, Longitude: -1.47, Timezone: 0, Timeshift: -0.5}, nil
	case "phoenix":
		return solar.Site{Latitude: 33.43, Longitude: -112.02, Timezone: -7, Timeshift: -0.5}, nil
	default:
		return solar.Site{}, fmt.Errorf("%w: unknown site preset %q", ErrInvalid, name)
	}
}
