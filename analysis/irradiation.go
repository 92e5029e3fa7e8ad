package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"climate_analysis/irradiance"
	"climate_analysis/solar"
	"climate_analysis/weather"
)

// ErrEmptyGrid is returned when a grid holds no surface.
var ErrEmptyGrid = errors.New("grid has no surfaces")

const deg = math.Pi / 180

// Grid spans collector tilts and azimuths, degrees.
type Grid struct {
	TiltStep    float64 `yaml:"tilt_step"`
	AzimuthStep float64 `yaml:"azimuth_step"`
	MaxTilt     float64 `yaml:"max_tilt"`
}

// DefaultGrid covers tilts 0 to 90 and azimuths 0 to 350 in 10 degree steps.
func DefaultGrid() Grid {
	return Grid{TiltStep: 10, AzimuthStep: 10, MaxTilt: 90}
}

// Tilts returns the tilts of the grid from 0 to MaxTilt inclusive, degrees.
func (g Grid) Tilts() []float64 {
	if g.TiltStep <= 0 || g.MaxTilt < 0 {
		return nil
	}
	var tilts []float64
	for i := 0; float64(i)*g.TiltStep <= g.MaxTilt+1e-9; i++ {
		tilts = append(tilts, float64(i)*g.TiltStep)
	}
	return tilts
}

// Azimuths returns the azimuths of the grid from 0 up to but excluding 360, degrees.
func (g Grid) Azimuths() []float64 {
	if g.AzimuthStep <= 0 {
		return nil
	}
	var azimuths []float64
	for i := 0; float64(i)*g.AzimuthStep < 360-1e-9; i++ {
		azimuths = append(azimuths, float64(i)*g.AzimuthStep)
	}
	return azimuths
}

/*
AnnualIrradiation sums the irradiation received over a year by every surface of a grid.

	Args:
		ctx: cancels the sweep
		w: weather data
		site: location and clock convention
		grid: surfaces to evaluate
		opts: sky model and workers

	Returns:
		annual irradiation, Wh/m2, [len(tilts) x len(azimuths)]

	Notes:
		Surfaces are evaluated concurrently. Solar positions are computed once beforehand and
		only read by the workers; each surface accumulates into its own cell.
*/
func AnnualIrradiation(ctx context.Context, w *weather.Weather, site solar.Site, grid Grid, opts Options) (*mat.Dense, error) {
	tilts, azimuths := grid.Tilts(), grid.Azimuths()
	if len(tilts) == 0 || len(azimuths) == 0 {
		return nil, ErrEmptyGrid
	}

	start := time.Now()
	logrus.Debugf("annual irradiation over %d tilts x %d azimuths", len(tilts), len(azimuths))

	positions := opts.positions(site)
	cols := len(azimuths)
	data := make([]float64, len(tilts)*cols)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, tilt := range tilts {
		for j, az := range azimuths {
			cell := i*cols + j
			tilt, az := tilt, az
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				data[cell] = surfaceSum(w, positions, az*deg, tilt*deg, opts).Total
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("annual irradiation: %w", err)
	}

	logrus.Debugf("annual irradiation done in %s", time.Since(start))

	return mat.NewDense(len(tilts), cols, data), nil
}

/*
SurfaceIrradiation sums the irradiation received over a year by a building surface.

	Args:
		w: weather data
		site: location and clock convention
		o: orientation of the surface
		opts: sky model

	Returns:
		annual beam, diffuse, ground-reflected and total irradiation, Wh/m2
*/
func SurfaceIrradiation(w *weather.Weather, site solar.Site, o solar.Orientation, opts Options) irradiance.TiltedIrradiance {
	return surfaceSum(w, opts.positions(site), o.Azimuth(), o.Tilt(), opts)
}

// FacadeIrradiation is the annual irradiation of one building surface.
type FacadeIrradiation struct {
	Orientation solar.Orientation `csv:"orientation"`
	Beam        float64           `csv:"beam"`
	Diffuse     float64           `csv:"diffuse"`
	Ground      float64           `csv:"ground"`
	Total       float64           `csv:"total"`
}

// FacadesIrradiation sums the annual irradiation of opts.Facades, or of every orientation.
func FacadesIrradiation(w *weather.Weather, site solar.Site, opts Options) []FacadeIrradiation {
	positions := opts.positions(site)
	facades := opts.facades()

	rows := make([]FacadeIrradiation, 0, len(facades))
	for _, o := range facades {
		sum := surfaceSum(w, positions, o.Azimuth(), o.Tilt(), opts)
		rows = append(rows, FacadeIrradiation{
			Orientation: o,
			Beam:        sum.Beam,
			Diffuse:     sum.Diffuse,
			Ground:      sum.Ground,
			Total:       sum.Total,
		})
	}
	return rows
}

func surfaceSum(w *weather.Weather, positions []solar.Position, wallAzimuth, tilt float64, opts Options) irradiance.TiltedIrradiance {
	var sum irradiance.TiltedIrradiance
	for n, p := range positions {
		sum.Add(surfaceHour(w, n, p, wallAzimuth, tilt, opts))
	}
	return sum
}

// surfaceHour is the irradiance on a surface during hour n (0-based) of the year.
func surfaceHour(w *weather.Weather, n int, p solar.Position, wallAzimuth, tilt float64, opts Options) irradiance.TiltedIrradiance {
	day := n/24 + 1
	cai := solar.CosineAngleOfIncidence(wallAzimuth, tilt, p.Altitude, p.Azimuth)
	t := irradiance.TiltedPlane(day, cai, w.Global[n], w.Diffuse[n], p.Altitude, tilt, opts.GroundReflectance, opts.Isotropic)
	if opts.DiffuseOnly {
		return irradiance.TiltedIrradiance{Diffuse: t.Diffuse, Total: t.Diffuse}
	}
	return t
}
