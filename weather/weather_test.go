package weather

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v float64) []float64 {
	s := make([]float64, HoursInYear)
	for i := range s {
		s[i] = v
	}
	return s
}

func newWeather(t *testing.T, dryBulb, windSpeed, windDirection []float64) *Weather {
	t.Helper()
	w, err := New(dryBulb, constant(50), constant(100), constant(40), windSpeed, windDirection)
	require.NoError(t, err)
	return w
}

func climateFile(rows int) string {
	var b strings.Builder
	b.WriteString("Finningley,53.7,-1.0\n")
	b.WriteString("location header\n")
	b.WriteString("date,time,hour,dbt,rh,global,diffuse,windspeed,winddir,comment\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "1/1,%d:00,%d,%.1f, 80,%d,%d,3.5,%d,x\n", i%24, i+1, float64(i%24)-5, i%24*10, i%24*4, i%360)
	}
	return b.String()
}

func TestNew(t *testing.T) {
	_, err := New(constant(1), constant(1), constant(1), constant(1), constant(1), make([]float64, 10))
	assert.ErrorIs(t, err, ErrRowCount)

	w, err := New(constant(1), constant(2), constant(3), constant(4), constant(5), constant(6))
	require.NoError(t, err)
	assert.Equal(t, HoursInYear, w.Len())
	assert.Equal(t, 1.0, w.MeanTemperature())
}

func TestLoad(t *testing.T) {
	w, err := Load(strings.NewReader(climateFile(HoursInYear)))
	require.NoError(t, err)

	assert.Equal(t, -5.0, w.DryBulb[0])
	assert.Equal(t, 18.0, w.DryBulb[23])
	assert.Equal(t, 80.0, w.RelativeHumidity[100])
	assert.Equal(t, 230.0, w.Global[23])
	assert.Equal(t, 92.0, w.Diffuse[23])
	assert.Equal(t, 3.5, w.WindSpeed[8759])
	assert.Equal(t, float64(8759%360), w.WindDirection[8759])
}

func TestLoad_RowCount(t *testing.T) {
	_, err := Load(strings.NewReader(climateFile(10)))
	assert.ErrorIs(t, err, ErrRowCount)
}

func TestLoad_ShortRow(t *testing.T) {
	data := "a\nb\nc\n1,2,3,4,5,6\n"
	_, err := Load(strings.NewReader(data))
	assert.Error(t, err)
}

func TestLoad_BadNumber(t *testing.T) {
	data := "a\nb\nc\n1,2,3,warm,5,6,7,8,9\n"
	_, err := Load(strings.NewReader(data))
	assert.Error(t, err)
}

func TestMonthlyHours(t *testing.T) {
	months := MonthlyHours(constant(1))
	assert.Len(t, months[0], 744)
	assert.Len(t, months[1], 672)
	assert.Len(t, months[3], 720)

	total := 0
	for _, m := range months {
		total += len(m)
	}
	assert.Equal(t, HoursInYear, total)
}

func TestMonthlyMatrix(t *testing.T) {
	m := MonthlyMatrix(constant(3))
	r, c := m.Dims()
	assert.Equal(t, 12, r)
	assert.Equal(t, 744, c)

	assert.Equal(t, 3.0, m.At(1, 671))
	assert.True(t, math.IsNaN(m.At(1, 672)))
	assert.Equal(t, 3.0, m.At(11, 743))
}

func TestDailyMeansAndDiurnalRanges(t *testing.T) {
	s := make([]float64, HoursInYear)
	for i := range s {
		s[i] = float64(i/24) + float64(i%24)
	}

	means := DailyMeans(s)
	require.Len(t, means, DaysInYear)
	assert.Equal(t, 11.5, means[0])
	assert.Equal(t, 364+11.5, means[364])

	ranges := DiurnalRanges(s)
	assert.Len(t, ranges[0], 31)
	assert.Len(t, ranges[1], 28)
	for _, month := range ranges {
		for _, r := range month {
			assert.Equal(t, 23.0, r)
		}
	}
}

func TestMonthlyStatistics(t *testing.T) {
	s := make([]float64, HoursInYear)
	for m, hours := range MonthlyHours(s) {
		for i := range hours {
			hours[i] = float64(m*1000 + i)
		}
	}

	stats := MonthlyStatistics(s)
	require.Len(t, stats, 12)

	jan := stats[0]
	assert.Equal(t, "Jan", jan.Month)
	assert.Equal(t, 0.0, jan.Min)
	assert.Equal(t, 743.0, jan.Max)
	assert.InDelta(t, 371.5, jan.Mean, 1e-9)
	assert.InDelta(t, 371.5, jan.Median, 1)
	assert.InDelta(t, 37, jan.P5, 1)
	assert.InDelta(t, 186, jan.P25, 1)
	assert.InDelta(t, 558, jan.P75, 1)
	assert.InDelta(t, 707, jan.P95, 1)

	feb := stats[1]
	assert.Equal(t, "Feb", feb.Month)
	assert.Equal(t, 1000.0, feb.Min)
	assert.Equal(t, 1671.0, feb.Max)
}

func TestDegreeDays(t *testing.T) {
	w := newWeather(t, constant(10), constant(1), constant(0))
	dd := w.DegreeDays(15.5, 18)
	assert.InDelta(t, 31*5.5, dd.Heating[0], 1e-9)
	assert.InDelta(t, 28*5.5, dd.Heating[1], 1e-9)
	assert.InDelta(t, 365*5.5, dd.TotalHeating, 1e-9)
	assert.Equal(t, 0.0, dd.TotalCooling)

	w = newWeather(t, constant(20), constant(1), constant(0))
	dd = w.DegreeDays(15.5, 18)
	assert.Equal(t, 0.0, dd.TotalHeating)
	assert.InDelta(t, 30*2.0, dd.Cooling[5], 1e-9)
	assert.InDelta(t, 365*2.0, dd.TotalCooling, 1e-9)
}

func TestGroundParams(t *testing.T) {
	temp := constant(10)
	for h := 0; h < 24; h++ {
		temp[40*24+h] = 0
		temp[200*24+h] = 24
	}
	w := newWeather(t, temp, constant(1), constant(0))

	p := w.GroundParams()
	assert.InDelta(t, (363*10+24)/365.0, p.Mean, 1e-9)
	assert.Equal(t, 12.0, p.Swing)
	assert.Equal(t, 41.0, p.DayOfMinimum)
}

func TestIrradiationTotals(t *testing.T) {
	w := newWeather(t, constant(10), constant(1), constant(0))
	assert.InDelta(t, 876.0, w.AnnualGlobalIrradiation(), 1e-9)
	assert.InDelta(t, 0.4, w.DiffuseFraction(), 1e-12)
}

func TestNewHistogram(t *testing.T) {
	h := NewHistogram([]float64{2.9, 0.5, 1.5, 2.0, 1.7})
	assert.Equal(t, []float64{0, 1, 2, 3}, h.Edges)
	assert.Equal(t, []float64{1, 2, 2}, h.Counts)
	assert.Equal(t, []float64{1, 3, 5}, h.Cumulative)
	assert.Equal(t, []float64{5, 4, 2}, h.Exceedance)

	// a maximum on a whole number gets a bin of its own
	h = NewHistogram([]float64{-1.5, 3})
	assert.Equal(t, -2.0, h.Edges[0])
	assert.Equal(t, 4.0, h.Edges[len(h.Edges)-1])
	assert.Equal(t, 1.0, h.Counts[len(h.Counts)-1])
}

func TestTemperatureHistogram(t *testing.T) {
	w := newWeather(t, constant(10.2), constant(1), constant(0))
	h := w.TemperatureHistogram()
	assert.Equal(t, []float64{10, 11}, h.Edges)
	assert.Equal(t, []float64{HoursInYear}, h.Counts)
}

func TestWindKineticEnergy(t *testing.T) {
	w := newWeather(t, constant(10), constant(2), constant(0))
	assert.InDelta(t, 8760*0.5*1.2*8/1000, w.WindKineticEnergy(), 1e-9)
}

func TestSpeedRose(t *testing.T) {
	speed := constant(0.5)
	dir := constant(0)
	speed[1], dir[1] = 3.2, 95
	speed[2], dir[2] = 1, 360
	speed[3], dir[3] = 2.5, 300
	w := newWeather(t, constant(10), speed, dir)

	rose, err := w.SpeedRose(4)
	require.NoError(t, err)

	r, c := rose.Counts.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)

	// calm hours are dropped
	assert.Equal(t, 0.0, rose.Counts.At(0, 0))
	assert.Equal(t, 1.0, rose.Counts.At(3, 1))
	assert.Equal(t, 1.0, rose.Counts.At(1, 0))
	assert.Equal(t, 1.0, rose.Counts.At(2, 3))

	_, err = w.SpeedRose(0)
	assert.Error(t, err)
}

func TestTemperatureRose(t *testing.T) {
	temp := constant(5)
	dir := constant(180)
	temp[0] = -3.5
	temp[1] = -2.7
	w := newWeather(t, temp, constant(1), dir)

	rose, err := w.TemperatureRose(8)
	require.NoError(t, err)
	assert.Equal(t, -3.0, rose.Offset)

	r, _ := rose.Counts.Dims()
	assert.Equal(t, 9, r)
	assert.Equal(t, 1.0, rose.Counts.At(0, 4))
	assert.Equal(t, 1.0, rose.Counts.At(1, 4))
	assert.Equal(t, float64(HoursInYear-2), rose.Counts.At(8, 4))
}
