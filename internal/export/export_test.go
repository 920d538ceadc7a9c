package export

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
)

var exportTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func testSamples() map[curve.Shape][]curve.Point {
	return map[curve.Shape][]curve.Point{
		curve.Linear:   {{Supply: 0, Price: 1}, {Supply: 50, Price: 1.5}, {Supply: 100, Price: 2}},
		curve.Constant: {{Supply: 0, Price: 1}, {Supply: 50, Price: 1}, {Supply: 100, Price: 1}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestExportComparisonCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	exporter := NewCurveExporter(zap.NewNop())

	path, err := exporter.ExportComparison(curve.Params{Shape: curve.Linear, InitialPrice: 1, Slope: 0.01}, 100, testSamples(), Options{
		Format:    FormatCSV,
		OutputDir: dir,
		Now:       exportTime,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "curves_20250314_093000.csv"), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"supply", "constant", "linear"}, records[0])
	assert.Equal(t, []string{"50", "1", "1.5"}, records[2])
	assert.Equal(t, []string{"100", "1", "2"}, records[3])
}

func TestExportComparisonJSON(t *testing.T) {
	dir := t.TempDir()
	samples := testSamples()
	samples[curve.Exponential] = []curve.Point{{Supply: 0, Price: 1}, {Supply: 100, Price: math.Inf(1)}}

	path, err := NewCurveExporter(nil).ExportComparison(curve.Params{Shape: curve.Exponential, InitialPrice: 1, Slope: 10}, 100, samples, Options{
		Format:    FormatJSON,
		OutputDir: dir,
		Now:       exportTime,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		TotalSupply float64 `json:"total_supply"`
		Params      struct {
			Shape string `json:"shape"`
		} `json:"params"`
		Series []struct {
			Shape      string                     `json:"shape"`
			FinalPrice float64                    `json:"final_price"`
			Overflow   bool                       `json:"overflow"`
			Points     []struct{ Price *float64 } `json:"points"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, 100.0, decoded.TotalSupply)
	assert.Equal(t, "exponential", decoded.Params.Shape)
	require.Len(t, decoded.Series, 3)
	assert.Equal(t, "constant", decoded.Series[0].Shape)
	assert.Equal(t, "linear", decoded.Series[1].Shape)
	assert.Equal(t, 2.0, decoded.Series[1].FinalPrice)

	exp := decoded.Series[2]
	assert.Equal(t, "exponential", exp.Shape)
	assert.True(t, exp.Overflow)
	assert.Nil(t, exp.Points[1].Price)
}

func TestExportComparisonErrors(t *testing.T) {
	exporter := NewCurveExporter(zap.NewNop())

	_, err := exporter.ExportComparison(curve.Params{}, 100, nil, Options{Format: FormatCSV, OutputDir: t.TempDir()})
	assert.Error(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	_, err = exporter.ExportComparison(curve.Params{}, 100, testSamples(), Options{Format: "xml", OutputDir: dir})
	assert.ErrorContains(t, err, "unsupported export format")
	assert.NoDirExists(t, dir, "nothing is created for a rejected format")
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		points []curve.Point
		want   ShapeSummary
	}{
		{"empty", nil, ShapeSummary{Shape: curve.Linear}},
		{"finite", []curve.Point{{Supply: 0, Price: 1}, {Supply: 10, Price: 3}}, ShapeSummary{Shape: curve.Linear, StartPrice: 1, FinalPrice: 3}},
		{"overflow", []curve.Point{{Supply: 0, Price: 1}, {Supply: 10, Price: math.Inf(1)}}, ShapeSummary{Shape: curve.Linear, StartPrice: 1, Overflow: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(curve.Linear, tt.points))
		})
	}
}
