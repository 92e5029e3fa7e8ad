// Package weather reads annual hourly climate files and aggregates their series.
package weather

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// HoursInYear is the number of hourly rows in a climate file.
const HoursInYear = 8760

// ErrRowCount is returned when a climate file does not hold one row for every hour of the year.
var ErrRowCount = errors.New("climate file should have 8760 rows")

// Weather holds one year of hourly observations starting at 01:00 on 1st January.
type Weather struct {
	DryBulb          []float64 // dry-bulb temperature, degree C, [8760]
	RelativeHumidity []float64 // relative humidity, %, [8760]
	Global           []float64 // global horizontal irradiance, W/m2, [8760]
	Diffuse          []float64 // diffuse horizontal irradiance, W/m2, [8760]
	WindSpeed        []float64 // wind speed, m/s, [8760]
	WindDirection    []float64 // wind direction clockwise from north, degrees, [8760]
}

/*
New creates a Weather from hourly series.

	Args:
		dryBulb: dry-bulb temperature, degree C, [8760]
		rh: relative humidity, %, [8760]
		global: global horizontal irradiance, W/m2, [8760]
		diffuse: diffuse horizontal irradiance, W/m2, [8760]
		windSpeed: wind speed, m/s, [8760]
		windDirection: wind direction, degrees, [8760]
*/
func New(dryBulb, rh, global, diffuse, windSpeed, windDirection []float64) (*Weather, error) {
	series := map[string][]float64{
		"dry bulb":          dryBulb,
		"relative humidity": rh,
		"global":            global,
		"diffuse":           diffuse,
		"wind speed":        windSpeed,
		"wind direction":    windDirection,
	}
	for name, s := range series {
		if len(s) != HoursInYear {
			return nil, fmt.Errorf("%s series has %d values: %w", name, len(s), ErrRowCount)
		}
	}

	return &Weather{
		DryBulb:          dryBulb,
		RelativeHumidity: rh,
		Global:           global,
		Diffuse:          diffuse,
		WindSpeed:        windSpeed,
		WindDirection:    windDirection,
	}, nil
}

// Len returns the number of hourly values.
func (w *Weather) Len() int {
	return len(w.DryBulb)
}

// MeanTemperature returns the annual mean dry-bulb temperature, degree C.
func (w *Weather) MeanTemperature() float64 {
	return stat.Mean(w.DryBulb, nil)
}

// Record is one hourly row of a climate file. Columns 0 to 2 hold the timestamp and are not read.
type Record struct {
	DryBulb          float64 `csv:"dry_bulb"`
	RelativeHumidity float64 `csv:"relative_humidity"`
	Global           float64 `csv:"global_horizontal"`
	Diffuse          float64 `csv:"diffuse_horizontal"`
	WindSpeed        float64 `csv:"wind_speed"`
	WindDirection    float64 `csv:"wind_direction"`
}

const (
	headerRows  = 3
	firstColumn = 3
	lastColumn  = 8
)

// columnReader hands gocsv the observation columns of a climate file, below its header rows.
type columnReader struct {
	r       *csv.Reader
	skipped bool
	line    int
}

func newColumnReader(r io.Reader) *columnReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &columnReader{r: cr}
}

func (c *columnReader) Read() ([]string, error) {
	if !c.skipped {
		for i := 0; i < headerRows; i++ {
			if _, err := c.r.Read(); err != nil {
				return nil, err
			}
			c.line++
		}
		c.skipped = true
	}

	row, err := c.r.Read()
	if err != nil {
		return nil, err
	}
	c.line++

	if len(row) <= lastColumn {
		return nil, fmt.Errorf("line %d has %d columns, need %d", c.line, len(row), lastColumn+1)
	}
	return row[firstColumn : lastColumn+1], nil
}

func (c *columnReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := c.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

/*
Load reads a climate file.

	Args:
		r: comma separated climate data with three header rows; columns 3 to 8 hold dry-bulb
		   temperature, relative humidity, global and diffuse horizontal irradiance, wind speed
		   and wind direction

	Returns:
		weather data
*/
func Load(r io.Reader) (*Weather, error) {
	var rows []*Record
	if err := gocsv.UnmarshalCSVWithoutHeaders(newColumnReader(r), &rows); err != nil {
		return nil, fmt.Errorf("read climate data: %w", err)
	}

	if len(rows) != HoursInYear {
		return nil, fmt.Errorf("got %d rows: %w", len(rows), ErrRowCount)
	}

	f := func(get func(row *Record) float64) []float64 {
		ret := make([]float64, len(rows))
		for i, row := range rows {
			ret[i] = get(row)
		}
		return ret
	}

	return New(
		f(func(row *Record) float64 { return row.DryBulb }),
		f(func(row *Record) float64 { return row.RelativeHumidity }),
		f(func(row *Record) float64 { return row.Global }),
		f(func(row *Record) float64 { return row.Diffuse }),
		f(func(row *Record) float64 { return row.WindSpeed }),
		f(func(row *Record) float64 { return row.WindDirection }),
	)
}

// LoadFile reads a climate file from disk.
func LoadFile(path string) (*Weather, error) {
	logrus.Infof("Load weather data from `%s`", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	w, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}
