package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"climate_analysis/analysis"
	"climate_analysis/config"
	"climate_analysis/ground"
	"climate_analysis/report"
	"climate_analysis/weather"
)

/*
run executes the climate analysis and saves the results.

	Args:
		ctx: cancels the irradiation sweep
		cfg: run configuration
		weatherPath: path of the hourly climate file
		outputDir: output directory
*/
func run(ctx context.Context, cfg config.Config, weatherPath, outputDir string) error {
	out, err := report.NewWriter(outputDir)
	if err != nil {
		return err
	}

	w, err := weather.LoadFile(weatherPath)
	if err != nil {
		return err
	}

	site := cfg.SolarSite()
	opts := cfg.AnalysisOptions()
	logrus.Infof("Site latitude %.2f, longitude %.2f, timezone %g", site.Latitude, site.Longitude, site.Timezone)
	logrus.Infof("Annual global irradiation %.1f kWh/m2, diffuse fraction %.3f", w.AnnualGlobalIrradiation(), w.DiffuseFraction())
	logrus.Infof("Wind kinetic energy %.1f kWh/m2", w.WindKineticEnergy())

	// ---- climate statistics ----

	if err := out.Rows("monthly dry-bulb statistics", "monthly_statistics.csv", weather.MonthlyStatistics(w.DryBulb)); err != nil {
		return err
	}

	monthly := weather.MonthlyMatrix(w.DryBulb)
	_, hours := monthly.Dims()
	if err := out.Matrix("monthly dry-bulb temperature", "monthly_dry_bulb.csv", "month", weather.MonthNames[:], report.MonthHourLabels(hours), monthly); err != nil {
		return err
	}
	if err := out.Rows("diurnal range", "diurnal_range.csv", report.DiurnalRangeRows(weather.DiurnalRanges(w.DryBulb))); err != nil {
		return err
	}

	dd := w.DegreeDays(cfg.DegreeDays.HeatingBase, cfg.DegreeDays.CoolingBase)
	if err := out.Rows("degree-days", "degree_days.csv", report.DegreeDayRows(dd)); err != nil {
		return err
	}

	if err := out.Rows("temperature histogram", "temperature_histogram.csv", report.HistogramRows(w.TemperatureHistogram())); err != nil {
		return err
	}
	if err := out.Rows("wind speed histogram", "wind_speed_histogram.csv", report.HistogramRows(w.WindSpeedHistogram())); err != nil {
		return err
	}

	speedRose, err := w.SpeedRose(cfg.Wind.Sectors)
	if err != nil {
		return err
	}
	if err := out.RoseMatrix("wind speed rose", "wind_rose.csv", "speed", speedRose); err != nil {
		return err
	}

	tempRose, err := w.TemperatureRose(cfg.Wind.Sectors)
	if err != nil {
		return err
	}
	if err := out.RoseMatrix("temperature rose", "temperature_rose.csv", "temperature", tempRose); err != nil {
		return err
	}

	// ---- ground ----

	profile := ground.MonthlyProfile(w.GroundParams(), cfg.Ground.Depths)
	if err := out.Matrix("ground temperature", "ground_temperature.csv", "month", weather.MonthNames[:], report.Labels(cfg.Ground.Depths), profile); err != nil {
		return err
	}

	// ---- solar ----

	sunrise, sunset := analysis.SunriseSunset(site, false)
	if err := out.Rows("sunrise and sunset", "sunrise_sunset.csv", report.SunriseSunsetRows(sunrise, sunset)); err != nil {
		return err
	}

	if err := out.Rows("sun path", "sun_path.csv", analysis.SunPathChart(site.Latitude)); err != nil {
		return err
	}

	irradiation, err := analysis.AnnualIrradiation(ctx, w, site, cfg.Grid, opts)
	if err != nil {
		return err
	}
	if err := out.Matrix("annual irradiation", "annual_irradiation.csv", "tilt", report.Labels(cfg.Grid.Tilts()), report.Labels(cfg.Grid.Azimuths()), irradiation); err != nil {
		return err
	}

	if err := out.Rows("facade irradiation", "facade_irradiation.csv", analysis.FacadesIrradiation(w, site, opts)); err != nil {
		return err
	}

	solAir := analysis.SolAirTemperatures(w, site, cfg.SolAir, opts)
	if err := out.Rows("sol-air temperature", "sol_air_temperature.csv", solAir); err != nil {
		return err
	}

	// ---- psychrometrics ----

	states, err := analysis.PsychrometricStates(w, cfg.Coefficients(), cfg.Psychrometric.Screen)
	if err != nil {
		return err
	}
	cooled, err := analysis.EvaporativeCooling(w, cfg.CoolingOptions())
	if err != nil {
		return err
	}
	illuminance := analysis.HourlyIlluminance(w, site, true)

	return out.Rows("hourly psychrometrics", "hourly.csv", report.HourRows(states, illuminance, cooled))
}

func main() {
	var configPath string
	flag.StringVarP(&configPath, "config", "c", "", "YAML configuration file (defaults when empty)")

	var weatherPath string
	flag.StringVarP(&weatherPath, "weather", "w", "", "hourly climate CSV file")

	var site string
	flag.StringVar(&site, "site", "", "site preset: finningley, sheffield or phoenix")

	var outputDir string
	flag.StringVarP(&outputDir, "output", "o", ".", "output directory")

	var isotropic bool
	flag.BoolVar(&isotropic, "isotropic", false, "use the isotropic sky instead of the Perez sky")

	var workers int
	flag.IntVar(&workers, "workers", 0, "concurrent surfaces in the irradiation sweep (0 = one per CPU)")

	var logLevel string
	flag.StringVar(&logLevel, "log", "error", "log level")

	flag.Parse()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logrus.SetLevel(level)

	if weatherPath == "" {
		fmt.Fprintln(os.Stderr, "--weather is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			logrus.Fatal(err)
		}
	}
	if site != "" {
		cfg.Site.Preset = site
	}
	if flag.CommandLine.Changed("isotropic") {
		cfg.Sky.Isotropic = isotropic
	}
	if flag.CommandLine.Changed("workers") {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	start := time.Now()

	if err := run(context.Background(), cfg, weatherPath, outputDir); err != nil {
		logrus.Fatal(err)
	}

	elapsedTime := time.Since(start)
	logrus.Infof("elapsed_time: %v [sec]", elapsedTime.Seconds())
}
