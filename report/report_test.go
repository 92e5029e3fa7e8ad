package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"climate_analysis/analysis"
	"climate_analysis/psychrometric"
	"climate_analysis/weather"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestNewWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	w, err := NewWriter(dir)
	require.NoError(t, err)

	info, err := os.Stat(w.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMatrix(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	data := mat.NewDense(2, 3, []float64{1, 2.5, 3, 4, 5, 6.25})
	require.NoError(t, w.Matrix("test", "m.csv", "tilt", []string{"0", "10"}, Labels([]float64{0, 90, 180}), data))

	assert.Equal(t, []string{
		"tilt,0,90,180",
		"0,1,2.5,3",
		"10,4,5,6.25",
	}, readLines(t, filepath.Join(w.Dir, "m.csv")))

	err = w.Matrix("test", "bad.csv", "tilt", []string{"0"}, []string{"a"}, data)
	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	rows := SunriseSunsetRows([]float64{8.25, 8.5}, []float64{16, 16.5})
	require.NoError(t, w.Rows("sunrise", "s.csv", rows))

	assert.Equal(t, []string{
		"day,sunrise,sunset",
		"1,8.25,16",
		"2,8.5,16.5",
	}, readLines(t, filepath.Join(w.Dir, "s.csv")))
}

func TestDegreeDayRows(t *testing.T) {
	var dd weather.DegreeDays
	dd.Heating[0] = 300
	dd.Cooling[6] = 12
	dd.TotalHeating = 300
	dd.TotalCooling = 12

	rows := DegreeDayRows(dd)
	require.Len(t, rows, 13)
	assert.Equal(t, DegreeDayRow{Month: "Jan", Heating: 300}, rows[0])
	assert.Equal(t, DegreeDayRow{Month: "Jul", Cooling: 12}, rows[6])
	assert.Equal(t, DegreeDayRow{Month: "Year", Heating: 300, Cooling: 12}, rows[12])
}

func TestDiurnalRangeRows(t *testing.T) {
	s := make([]float64, weather.HoursInYear)
	for i := range s {
		s[i] = float64(i%24) * float64(i/(24*31)+1) / 10
	}

	rows := DiurnalRangeRows(weather.DiurnalRanges(s))
	require.Len(t, rows, 12)
	assert.Equal(t, "Jan", rows[0].Month)
	assert.InDelta(t, 2.3, rows[0].Mean, 1e-9)
	assert.InDelta(t, 2.3, rows[0].Min, 1e-9)
	assert.InDelta(t, 2.3, rows[0].Max, 1e-9)

	// the swing doubles from February
	assert.InDelta(t, 4.6, rows[1].Mean, 1e-9)
}

func TestMonthlyMatrixFile(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	m := weather.MonthlyMatrix(make([]float64, weather.HoursInYear))
	_, c := m.Dims()
	require.NoError(t, w.Matrix("monthly", "monthly.csv", "month", weather.MonthNames[:], MonthHourLabels(c), m))

	lines := readLines(t, filepath.Join(w.Dir, "monthly.csv"))
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "month,1,2,3,"))
	assert.True(t, strings.HasSuffix(lines[0], ",744"))
	assert.True(t, strings.HasSuffix(lines[2], ",NaN"))
	assert.True(t, strings.HasSuffix(lines[1], ",0"))
}

func TestHistogramRows(t *testing.T) {
	h := weather.NewHistogram([]float64{0.5, 1.2, 1.7, 2.1})
	rows := HistogramRows(h)
	require.Len(t, rows, 3)
	assert.Equal(t, HistogramRow{Lower: 1, Upper: 2, Count: 2, Cumulative: 3, Exceedance: 3}, rows[1])
}

func TestHourRows(t *testing.T) {
	states := []psychrometric.State{{DryBulb: 30, RelativeHumidity: 20, MoistureContent: 0.005, WetBulb: 16, Enthalpy: 43}}
	cooled := []analysis.CooledAir{{DryBulb: 20.2, MoistureContent: 0.009, Cooled: true}}

	rows := HourRows(states, []float64{55}, cooled)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Hour)
	assert.Equal(t, 55.0, rows[0].Illuminance)
	assert.Equal(t, 20.2, rows[0].CooledDryBulb)
	assert.True(t, rows[0].EvaporativeCooled)
}

func TestRoseMatrix(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	rose := weather.WindRose{Sectors: 4, Offset: -2, Counts: mat.NewDense(2, 4, []float64{1, 0, 0, 2, 0, 3, 0, 0})}
	require.NoError(t, w.RoseMatrix("rose", "r.csv", "temperature", rose))

	assert.Equal(t, []string{
		"temperature,0,90,180,270",
		"-2,1,0,0,2",
		"-1,0,3,0,0",
	}, readLines(t, filepath.Join(w.Dir, "r.csv")))
}
