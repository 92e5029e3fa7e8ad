package weather

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// density of air, kg/m3
const airDensity = 1.2

// WindKineticEnergy returns the annual kinetic energy flux of the wind, kWh/m2.
func (w *Weather) WindKineticEnergy() float64 {
	var e float64
	for _, v := range w.WindSpeed {
		e += 0.5 * airDensity * v * v * v / 1000
	}
	return e
}

// WindRose counts the hours the wind blows from each sector.
type WindRose struct {
	Sectors int     // number of direction sectors
	Offset  float64 // value of the first radial bin
	Counts  *mat.Dense
}

/*
SpeedRose bins hours by wind speed and direction.

	Args:
		sectors: number of direction sectors, the first centred clockwise of north

	Returns:
		counts, [int(max speed)+1 x sectors]; row i holds speeds in [i, i+1) m/s

	Notes:
		Calm hours (speed below 1 m/s from north) are dropped.
*/
func (w *Weather) SpeedRose(sectors int) (WindRose, error) {
	rose, err := w.rose(sectors, w.WindSpeed, 0)
	if err != nil {
		return WindRose{}, err
	}
	rose.Counts.Set(0, 0, 0)
	return rose, nil
}

/*
TemperatureRose bins hours by dry-bulb temperature and wind direction.

	Args:
		sectors: number of direction sectors

	Returns:
		counts; row i holds temperatures truncated to int(min)+i
*/
func (w *Weather) TemperatureRose(sectors int) (WindRose, error) {
	return w.rose(sectors, w.DryBulb, math.Trunc(floats.Min(w.DryBulb)))
}

func (w *Weather) rose(sectors int, radial []float64, offset float64) (WindRose, error) {
	if sectors < 1 {
		return WindRose{}, fmt.Errorf("wind rose needs at least one sector, got %d", sectors)
	}

	rows := int(math.Trunc(floats.Max(radial))-offset) + 1
	counts := mat.NewDense(rows, sectors, nil)

	width := 360 / float64(sectors)
	for i, dir := range w.WindDirection {
		// 360 is north
		sector := int(dir/width) % sectors
		if sector < 0 {
			sector += sectors
		}
		r := int(math.Trunc(radial[i]) - offset)
		if r < 0 {
			r = 0
		}
		counts.Set(r, sector, counts.At(r, sector)+1)
	}

	return WindRose{Sectors: sectors, Offset: offset, Counts: counts}, nil
}
