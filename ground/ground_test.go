package ground

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoilDiffusivity(t *testing.T) {
	assert.InDelta(t, 0.0634985, DefaultSoil.Diffusivity(), 1e-7)
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		name  string
		day   float64
		depth float64
		want  float64
	}{
		{"surface in january", 15.5, 0, 2.0239906},
		{"two metres in january", 15.5, 2, 7.3691532},
		{"one metre in july", 196, 1, 14.9102524},
		{"deep ground is steady", 200, 20, 10.0021953},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Temperature(10, 8, tt.day, 20, tt.depth), 1e-6)
		})
	}
}

func TestTemperature_Surface(t *testing.T) {
	// at the surface the ground follows the air cycle exactly
	assert.InDelta(t, 2.0, Temperature(10, 8, 20, 20, 0), 1e-12)
	assert.InDelta(t, 18.0, Temperature(10, 8, 20+365.0/2, 20, 0), 1e-12)
}

func TestTemperature_Bounded(t *testing.T) {
	p := Params{Mean: 9.5, Swing: 7, DayOfMinimum: 30}
	for depth := 0.0; depth <= 20; depth++ {
		for day := 1.0; day <= 365; day += 5 {
			got := p.At(day, depth)
			assert.GreaterOrEqual(t, got, p.Mean-p.Swing-1e-9)
			assert.LessOrEqual(t, got, p.Mean+p.Swing+1e-9)
		}
	}
}

func TestMidMonthDays(t *testing.T) {
	days := MidMonthDays()
	assert.Equal(t, 15.5, days[0])
	assert.Equal(t, 45.0, days[1])
	assert.Equal(t, 349.5, days[11])
}

func TestMonthlyProfile(t *testing.T) {
	p := Params{Mean: 10, Swing: 8, DayOfMinimum: 20}
	depths := []float64{0, 1, 2, 5, 20}

	profile := MonthlyProfile(p, depths)
	r, c := profile.Dims()
	assert.Equal(t, 12, r)
	assert.Equal(t, len(depths), c)

	assert.InDelta(t, 2.0239906, profile.At(0, 0), 1e-6)
	assert.InDelta(t, p.At(196.5, 1), profile.At(6, 1), 1e-12)

	// the annual swing shrinks with depth
	swing := func(j int) float64 {
		lo, hi := math.Inf(1), math.Inf(-1)
		for m := 0; m < 12; m++ {
			lo = math.Min(lo, profile.At(m, j))
			hi = math.Max(hi, profile.At(m, j))
		}
		return hi - lo
	}
	for j := 1; j < len(depths); j++ {
		assert.Less(t, swing(j), swing(j-1))
	}
}
