package weather

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"climate_analysis/ground"
)

// DaysInMonth for a non-leap year.
var DaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInYear is the number of days covered by a climate file.
const DaysInYear = 365

// MonthNames are the abbreviated month names used in reports.
var MonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// maximum number of hours in a month
const maxMonthHours = 31 * 24

/*
MonthlyHours splits an hourly series by month.

	Args:
		series: hourly values, [8760]

	Returns:
		hourly values of each month
*/
func MonthlyHours(series []float64) [12][]float64 {
	var months [12][]float64
	off := 0
	for m, days := range DaysInMonth {
		n := days * 24
		months[m] = series[off : off+n]
		off += n
	}
	return months
}

/*
MonthlyMatrix arranges an hourly series one month per row.

	Args:
		series: hourly values, [8760]

	Returns:
		hourly values, [12 x 744]; rows of short months are padded with NaN
*/
func MonthlyMatrix(series []float64) *mat.Dense {
	m := mat.NewDense(12, maxMonthHours, nil)
	for i, hours := range MonthlyHours(series) {
		row := make([]float64, maxMonthHours)
		copy(row, hours)
		for j := len(hours); j < maxMonthHours; j++ {
			row[j] = math.NaN()
		}
		m.SetRow(i, row)
	}
	return m
}

// DailyMeans returns the mean of each day of an hourly series, [365].
func DailyMeans(series []float64) []float64 {
	means := make([]float64, len(series)/24)
	for d := range means {
		means[d] = stat.Mean(series[d*24:(d+1)*24], nil)
	}
	return means
}

// DiurnalRanges returns the daily range of an hourly series, grouped by month.
func DiurnalRanges(series []float64) [12][]float64 {
	var ranges [12][]float64
	for m, hours := range MonthlyHours(series) {
		ranges[m] = make([]float64, len(hours)/24)
		for d := range ranges[m] {
			day := hours[d*24 : (d+1)*24]
			ranges[m][d] = floats.Max(day) - floats.Min(day)
		}
	}
	return ranges
}

// MonthStats summarises one month of hourly values.
type MonthStats struct {
	Month  string  `csv:"month"`
	Mean   float64 `csv:"mean"`
	Min    float64 `csv:"min"`
	P5     float64 `csv:"p5"`
	P25    float64 `csv:"p25"`
	Median float64 `csv:"median"`
	P75    float64 `csv:"p75"`
	P95    float64 `csv:"p95"`
	Max    float64 `csv:"max"`
}

// MonthlyStatistics summarises an hourly series month by month.
func MonthlyStatistics(series []float64) []MonthStats {
	stats := make([]MonthStats, 0, 12)
	for m, hours := range MonthlyHours(series) {
		sorted := make([]float64, len(hours))
		copy(sorted, hours)
		sort.Float64s(sorted)

		q := func(p float64) float64 {
			return stat.Quantile(p, stat.Empirical, sorted, nil)
		}

		stats = append(stats, MonthStats{
			Month:  MonthNames[m],
			Mean:   stat.Mean(sorted, nil),
			Min:    sorted[0],
			P5:     q(0.05),
			P25:    q(0.25),
			Median: q(0.5),
			P75:    q(0.75),
			P95:    q(0.95),
			Max:    sorted[len(sorted)-1],
		})
	}
	return stats
}

// DegreeDays are heating and cooling degree-days, K d.
type DegreeDays struct {
	Heating      [12]float64
	Cooling      [12]float64
	TotalHeating float64
	TotalCooling float64
}

/*
DegreeDays accumulates degree-days from daily mean temperatures.

	Args:
		heatingBase: heating degree-day base temperature, degree C
		coolingBase: cooling degree-day base temperature, degree C

	Returns:
		monthly and annual degree-days
*/
func (w *Weather) DegreeDays(heatingBase, coolingBase float64) DegreeDays {
	var dd DegreeDays

	means := DailyMeans(w.DryBulb)
	day := 0
	for m, days := range DaysInMonth {
		for i := 0; i < days; i++ {
			t := means[day]
			if t > coolingBase {
				dd.Cooling[m] += t - coolingBase
			}
			if t < heatingBase {
				dd.Heating[m] += heatingBase - t
			}
			day++
		}
	}

	dd.TotalHeating = floats.Sum(dd.Heating[:])
	dd.TotalCooling = floats.Sum(dd.Cooling[:])

	return dd
}

/*
GroundParams derives the annual temperature cycle that drives the ground temperature model.

	Returns:
		annual mean temperature, half the range of daily mean temperature, and the day of the
		year (1 = 1st January) of the coldest daily mean
*/
func (w *Weather) GroundParams() ground.Params {
	means := DailyMeans(w.DryBulb)
	return ground.Params{
		Mean:         w.MeanTemperature(),
		Swing:        0.5 * (floats.Max(means) - floats.Min(means)),
		DayOfMinimum: float64(floats.MinIdx(means) + 1),
	}
}

// AnnualGlobalIrradiation returns the sum of global horizontal irradiance, kWh/m2.
func (w *Weather) AnnualGlobalIrradiation() float64 {
	return floats.Sum(w.Global) / 1000
}

// DiffuseFraction returns the share of annual global irradiation that is diffuse.
func (w *Weather) DiffuseFraction() float64 {
	global := floats.Sum(w.Global)
	if global == 0 {
		return 0
	}
	return floats.Sum(w.Diffuse) / global
}

// Histogram counts values in unit-width bins.
type Histogram struct {
	Edges      []float64 // bin edges, [len(Counts)+1]
	Counts     []float64 // values in [Edges[i], Edges[i+1])
	Cumulative []float64 // values below Edges[i+1]
	Exceedance []float64 // values at or above Edges[i]
}

/*
NewHistogram counts an hourly series in unit-width bins.

	Args:
		series: values

	Returns:
		histogram with bins from floor(min) to floor(max)+1
*/
func NewHistogram(series []float64) Histogram {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	lo := math.Floor(sorted[0])
	hi := math.Floor(sorted[len(sorted)-1]) + 1

	edges := make([]float64, 0, int(hi-lo)+1)
	for e := lo; e <= hi; e++ {
		edges = append(edges, e)
	}

	counts := stat.Histogram(nil, edges, sorted, nil)

	cumulative := make([]float64, len(counts))
	floats.CumSum(cumulative, counts)

	exceedance := make([]float64, len(counts))
	total := float64(len(sorted))
	for i := range counts {
		exceedance[i] = total
		if i > 0 {
			exceedance[i] -= cumulative[i-1]
		}
	}

	return Histogram{
		Edges:      edges,
		Counts:     counts,
		Cumulative: cumulative,
		Exceedance: exceedance,
	}
}

// TemperatureHistogram counts dry-bulb temperatures in 1 K bins.
func (w *Weather) TemperatureHistogram() Histogram {
	return NewHistogram(w.DryBulb)
}

// WindSpeedHistogram counts wind speeds in 1 m/s bins.
func (w *Weather) WindSpeedHistogram() Histogram {
	return NewHistogram(w.WindSpeed)
}
