// Package report saves analysis results as CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"climate_analysis/analysis"
	"climate_analysis/psychrometric"
	"climate_analysis/weather"
)

// Writer saves files into one output directory.
type Writer struct {
	Dir string
}

// NewWriter creates the output directory when it does not exist.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

func (w *Writer) path(filename string) string {
	return filepath.Join(w.Dir, filename)
}

// Rows saves a slice of tagged structs.
func (w *Writer) Rows(varname, filename string, rows interface{}) error {
	path := w.path(filename)
	logrus.Infof("Save %s to `%s`", varname, path)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("save %s: %w", varname, err)
	}
	return nil
}

/*
Matrix saves a labelled matrix.

	Args:
		varname: name used in the log
		filename: file name in the output directory
		corner: header of the label column
		rowLabels: label of each row, [r]
		colLabels: label of each column, [c]
		data: values, [r x c]
*/
func (w *Writer) Matrix(varname, filename, corner string, rowLabels, colLabels []string, data *mat.Dense) error {
	r, c := data.Dims()
	if len(rowLabels) != r || len(colLabels) != c {
		return fmt.Errorf("save %s: labels %dx%d do not match matrix %dx%d", varname, len(rowLabels), len(colLabels), r, c)
	}

	path := w.path(filename)
	logrus.Infof("Save %s to `%s`", varname, path)

	records := make([][]string, 0, r+1)
	records = append(records, append([]string{corner}, colLabels...))
	for i := 0; i < r; i++ {
		record := make([]string, 0, c+1)
		record = append(record, rowLabels[i])
		for _, v := range data.RawRowView(i) {
			record = append(record, formatFloat(v))
		}
		records = append(records, record)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("save %s: %w", varname, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Labels formats numeric labels.
func Labels(values []float64) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = formatFloat(v)
	}
	return labels
}

// DegreeDayRow is one month of degree-days.
type DegreeDayRow struct {
	Month   string  `csv:"month"`
	Heating float64 `csv:"hdd"`
	Cooling float64 `csv:"cdd"`
}

// DegreeDayRows lists monthly degree-days followed by the annual total.
func DegreeDayRows(dd weather.DegreeDays) []DegreeDayRow {
	rows := make([]DegreeDayRow, 0, 13)
	for m, name := range weather.MonthNames {
		rows = append(rows, DegreeDayRow{Month: name, Heating: dd.Heating[m], Cooling: dd.Cooling[m]})
	}
	return append(rows, DegreeDayRow{Month: "Year", Heating: dd.TotalHeating, Cooling: dd.TotalCooling})
}

// DiurnalRangeRow summarises the daily temperature swing of one month, K.
type DiurnalRangeRow struct {
	Month string  `csv:"month"`
	Mean  float64 `csv:"mean"`
	Min   float64 `csv:"min"`
	Max   float64 `csv:"max"`
}

// DiurnalRangeRows summarises the daily ranges of each month.
func DiurnalRangeRows(ranges [12][]float64) []DiurnalRangeRow {
	rows := make([]DiurnalRangeRow, 0, 12)
	for m, days := range ranges {
		rows = append(rows, DiurnalRangeRow{
			Month: weather.MonthNames[m],
			Mean:  stat.Mean(days, nil),
			Min:   floats.Min(days),
			Max:   floats.Max(days),
		})
	}
	return rows
}

// MonthHourLabels numbers the columns of weather.MonthlyMatrix from 1.
func MonthHourLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

// HistogramRow is one bin of a histogram.
type HistogramRow struct {
	Lower      float64 `csv:"lower"`
	Upper      float64 `csv:"upper"`
	Count      float64 `csv:"hours"`
	Cumulative float64 `csv:"cumulative"`
	Exceedance float64 `csv:"exceedance"`
}

// HistogramRows lists the bins of h.
func HistogramRows(h weather.Histogram) []HistogramRow {
	rows := make([]HistogramRow, len(h.Counts))
	for i := range h.Counts {
		rows[i] = HistogramRow{
			Lower:      h.Edges[i],
			Upper:      h.Edges[i+1],
			Count:      h.Counts[i],
			Cumulative: h.Cumulative[i],
			Exceedance: h.Exceedance[i],
		}
	}
	return rows
}

// SunriseSunsetRow is the daylight of one day.
type SunriseSunsetRow struct {
	Day     int     `csv:"day"`
	Sunrise float64 `csv:"sunrise"`
	Sunset  float64 `csv:"sunset"`
}

// SunriseSunsetRows pairs sunrise and sunset times day by day.
func SunriseSunsetRows(sunrise, sunset []float64) []SunriseSunsetRow {
	rows := make([]SunriseSunsetRow, len(sunrise))
	for i := range sunrise {
		rows[i] = SunriseSunsetRow{Day: i + 1, Sunrise: sunrise[i], Sunset: sunset[i]}
	}
	return rows
}

// HourRow is the psychrometric state of one hour before and after evaporative cooling.
type HourRow struct {
	Hour              int     `csv:"hour"`
	DryBulb           float64 `csv:"dry_bulb"`
	RelativeHumidity  float64 `csv:"relative_humidity"`
	MoistureContent   float64 `csv:"moisture_content"`
	WetBulb           float64 `csv:"wet_bulb"`
	Enthalpy          float64 `csv:"enthalpy"`
	Illuminance       float64 `csv:"illuminance"`
	CooledDryBulb     float64 `csv:"cooled_dry_bulb"`
	CooledMoisture    float64 `csv:"cooled_moisture_content"`
	EvaporativeCooled bool    `csv:"cooled"`
}

// HourRows joins the hourly series. All slices share one length.
func HourRows(states []psychrometric.State, illuminance []float64, cooled []analysis.CooledAir) []HourRow {
	rows := make([]HourRow, len(states))
	for n, s := range states {
		rows[n] = HourRow{
			Hour:              n + 1,
			DryBulb:           s.DryBulb,
			RelativeHumidity:  s.RelativeHumidity,
			MoistureContent:   s.MoistureContent,
			WetBulb:           s.WetBulb,
			Enthalpy:          s.Enthalpy,
			Illuminance:       illuminance[n],
			CooledDryBulb:     cooled[n].DryBulb,
			CooledMoisture:    cooled[n].MoistureContent,
			EvaporativeCooled: cooled[n].Cooled,
		}
	}
	return rows
}

// RoseMatrix saves a wind rose with sector and radial labels.
func (w *Writer) RoseMatrix(varname, filename, corner string, rose weather.WindRose) error {
	r, _ := rose.Counts.Dims()
	rowLabels := make([]float64, r)
	for i := range rowLabels {
		rowLabels[i] = rose.Offset + float64(i)
	}
	width := 360 / float64(rose.Sectors)
	colLabels := make([]float64, rose.Sectors)
	for j := range colLabels {
		colLabels[j] = float64(j) * width
	}
	return w.Matrix(varname, filename, corner, Labels(rowLabels), Labels(colLabels), rose.Counts)
}
