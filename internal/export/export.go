package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
)

// Format represents the export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Options configures one export.
type Options struct {
	Format    Format
	OutputDir string
	Now       time.Time // used for the file name; zero means time.Now
}

// ShapeSummary holds the headline numbers of one sampled shape.
type ShapeSummary struct {
	Shape      curve.Shape `json:"shape"`
	StartPrice float64     `json:"start_price"`
	FinalPrice float64     `json:"final_price"`
	Overflow   bool        `json:"overflow"`
}

// CurveExporter writes sampled curve comparisons to disk.
type CurveExporter struct {
	logger *zap.Logger
}

// NewCurveExporter creates a new curve exporter
func NewCurveExporter(logger *zap.Logger) *CurveExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CurveExporter{logger: logger.Named("export")}
}

// ExportComparison writes samples (as produced by curve.CompareShapes) and
// returns the path of the written file.
func (ce *CurveExporter) ExportComparison(params curve.Params, totalSupply float64, samples map[curve.Shape][]curve.Point, options Options) (string, error) {
	if len(samples) == 0 {
		return "", fmt.Errorf("nothing to export")
	}
	if _, err := ParseFormat(string(options.Format)); err != nil {
		return "", err
	}

	now := options.Now
	if now.IsZero() {
		now = time.Now()
	}
	filename := fmt.Sprintf("curves_%s.%s", now.Format("20060102_150405"), options.Format)
	outputPath := filepath.Join(options.OutputDir, filename)

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var err error
	switch options.Format {
	case FormatCSV:
		err = exportToCSV(samples, outputPath)
	case FormatJSON:
		err = exportToJSON(params, totalSupply, samples, now, outputPath)
	}
	if err != nil {
		return "", err
	}

	ce.logger.Info("Curves exported",
		zap.String("file", outputPath),
		zap.Int("shapes", len(samples)),
		zap.String("format", string(options.Format)))

	return outputPath, nil
}

// orderedShapes returns the sampled shapes in display order.
func orderedShapes(samples map[curve.Shape][]curve.Point) []curve.Shape {
	var out []curve.Shape
	for _, s := range curve.Shapes() {
		if _, ok := samples[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// exportToCSV writes one row per supply step and one price column per shape.
func exportToCSV(samples map[curve.Shape][]curve.Point, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	shapes := orderedShapes(samples)
	headers := []string{"supply"}
	rows := 0
	for _, s := range shapes {
		headers = append(headers, s.String())
		rows = max(rows, len(samples[s]))
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i := 0; i < rows; i++ {
		record := make([]string, 0, len(headers))
		supply := ""
		for _, s := range shapes {
			if i < len(samples[s]) {
				supply = formatFloat(samples[s][i].Supply)
				break
			}
		}
		record = append(record, supply)
		for _, s := range shapes {
			value := ""
			if i < len(samples[s]) {
				value = formatFloat(samples[s][i].Price)
			}
			record = append(record, value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// jsonPoint keeps non-finite prices representable: encoding/json rejects NaN and Inf.
type jsonPoint struct {
	Supply float64  `json:"supply"`
	Price  *float64 `json:"price"`
}

type jsonSeries struct {
	ShapeSummary
	Points []jsonPoint `json:"points"`
}

func exportToJSON(params curve.Params, totalSupply float64, samples map[curve.Shape][]curve.Point, now time.Time, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	series := make([]jsonSeries, 0, len(samples))
	for _, s := range orderedShapes(samples) {
		points := make([]jsonPoint, len(samples[s]))
		for i, p := range samples[s] {
			points[i] = jsonPoint{Supply: p.Supply, Price: finitePtr(p.Price)}
		}
		series = append(series, jsonSeries{ShapeSummary: Summarize(s, samples[s]), Points: points})
	}

	exportData := struct {
		ExportTime  time.Time    `json:"export_time"`
		Params      curve.Params `json:"params"`
		TotalSupply float64      `json:"total_supply"`
		Series      []jsonSeries `json:"series"`
	}{
		ExportTime:  now,
		Params:      params,
		TotalSupply: totalSupply,
		Series:      series,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Summarize reports the first and last sampled price. Overflow is set when
// any sample is not finite; the non-finite prices are reported as zero.
func Summarize(shape curve.Shape, points []curve.Point) ShapeSummary {
	summary := ShapeSummary{Shape: shape}
	if len(points) == 0 {
		return summary
	}
	for _, p := range points {
		if !isFinite(p.Price) {
			summary.Overflow = true
			break
		}
	}
	if first := points[0].Price; isFinite(first) {
		summary.StartPrice = first
	}
	if last := points[len(points)-1].Price; isFinite(last) {
		summary.FinalPrice = last
	}
	return summary
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finitePtr(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
