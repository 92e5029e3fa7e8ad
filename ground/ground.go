// Package ground estimates undisturbed ground temperature from the annual air temperature cycle.
package ground

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Soil holds the thermophysical properties of the ground.
type Soil struct {
	Conductivity float64 // thermal conductivity, W/m K
	Density      float64 // density, kg/m3
	SpecificHeat float64 // specific heat, J/kg K
}

// DefaultSoil is a typical moist soil.
var DefaultSoil = Soil{
	Conductivity: 1.21,
	Density:      1960,
	SpecificHeat: 840,
}

// seconds in a day
const secondsPerDay = 8.64e4

// length of the annual cycle, d
const period = 365.0

// Diffusivity returns the thermal diffusivity of the soil, m2/d.
func (s Soil) Diffusivity() float64 {
	return secondsPerDay * s.Conductivity / (s.Density * s.SpecificHeat)
}

/*
Temperature calculates the ground temperature at a depth with the default soil.

	Args:
		mean: annual mean air temperature, degree C
		swing: amplitude of the annual cycle of daily mean air temperature, K
		day: day of the year (may be fractional)
		dayOfMinimum: day of the year of the coldest daily mean, d
		depth: depth below the surface, m

	Returns:
		ground temperature, degree C

	Notes:
		Labs, K. (1982) Regional analysis of ground and above-ground climate conclusion,
		Underground Space 7, eq. 2.
*/
func Temperature(mean, swing, day, dayOfMinimum, depth float64) float64 {
	return DefaultSoil.Temperature(mean, swing, day, dayOfMinimum, depth)
}

// Temperature calculates the ground temperature at a depth in this soil.
func (s Soil) Temperature(mean, swing, day, dayOfMinimum, depth float64) float64 {
	diff := s.Diffusivity()

	// the amplitude decays and the phase lags with depth
	decrement := math.Exp(-depth * math.Sqrt(math.Pi/(period*diff)))
	lag := 0.5 * math.Sqrt(period/(math.Pi*diff))

	return mean - swing*decrement*math.Cos(2*math.Pi*(day-dayOfMinimum-depth*lag)/period)
}

// Params describes the annual air temperature cycle that drives the ground temperature.
type Params struct {
	Mean         float64 // annual mean air temperature, degree C
	Swing        float64 // half the range of daily mean air temperature, K
	DayOfMinimum float64 // day of the year of the coldest daily mean, d
}

// At returns the ground temperature on a day at a depth, degree C.
func (p Params) At(day, depth float64) float64 {
	return Temperature(p.Mean, p.Swing, day, p.DayOfMinimum, depth)
}

// daysInMonth for a non-leap year
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MidMonthDays returns the day of the year at the middle of each month.
func MidMonthDays() [12]float64 {
	var days [12]float64
	cum := 0
	for m, n := range daysInMonth {
		cum += n
		days[m] = float64(cum) - float64(n)/2
	}
	return days
}

/*
MonthlyProfile calculates the ground temperature at the middle of each month.

	Args:
		p: annual air temperature cycle
		depths: depths below the surface, m

	Returns:
		ground temperature, degree C, [12 x len(depths)]
*/
func MonthlyProfile(p Params, depths []float64) *mat.Dense {
	profile := mat.NewDense(12, len(depths), nil)
	for m, day := range MidMonthDays() {
		for j, depth := range depths {
			profile.Set(m, j, p.At(day, depth))
		}
	}
	return profile
}
