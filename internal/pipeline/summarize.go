package pipeline

import (
	"fmt"
	"math"
	"sort"

	"syngen/internal/model"
	"syngen/pkg/utils"
)

// HistogramBins is the number of equal-width bins per numeric field
const HistogramBins = 20

// Summarize computes describe()-style statistics for every field and a histogram
// for every numeric field. The dataset is only read.
func Summarize(ds model.Dataset) model.Report {
	report := model.Report{
		RecordCount: ds.Len(),
		Columns:     make([]model.ColumnStats, 0, len(ds.Fields)),
		Histograms:  []model.Histogram{},
	}

	for _, field := range ds.Fields {
		if field.Kind.IsNumeric() {
			values := numericColumn(ds, field.Name)
			report.Columns = append(report.Columns, describeNumeric(field, values))
			report.Histograms = append(report.Histograms, buildHistogram(field.Name, values, HistogramBins))
			continue
		}
		report.Columns = append(report.Columns, describeCategorical(field, ds))
	}

	return report
}

func numericColumn(ds model.Dataset, name string) []float64 {
	values := make([]float64, 0, ds.Len())
	for _, rec := range ds.Records {
		if v, ok := rec[name]; ok && v != nil {
			values = append(values, utils.Numeric(v))
		}
	}
	return values
}

// describeNumeric fills count, mean, sample std, min, quartiles and max
func describeNumeric(field model.Field, values []float64) model.ColumnStats {
	stats := model.ColumnStats{Field: field.Name, Kind: field.Kind, Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))
	stats.Mean = &mean

	// sample standard deviation is undefined for a single value
	if len(sorted) > 1 {
		sq := 0.0
		for _, v := range sorted {
			sq += (v - mean) * (v - mean)
		}
		std := math.Sqrt(sq / float64(len(sorted)-1))
		stats.Std = &std
	}

	stats.Min = floatPtr(sorted[0])
	stats.P25 = floatPtr(quantile(sorted, 0.25))
	stats.P50 = floatPtr(quantile(sorted, 0.50))
	stats.P75 = floatPtr(quantile(sorted, 0.75))
	stats.Max = floatPtr(sorted[len(sorted)-1])

	return stats
}

// quantile interpolates linearly between the closest ranks of sorted
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// describeCategorical fills count, unique, top and freq.
// Ties for top go to the value seen first.
func describeCategorical(field model.Field, ds model.Dataset) model.ColumnStats {
	stats := model.ColumnStats{Field: field.Name, Kind: field.Kind}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, rec := range ds.Records {
		v, ok := rec[field.Name]
		if !ok || v == nil {
			continue
		}
		key := displayValue(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		stats.Count++
	}

	unique := len(order)
	stats.Unique = &unique
	if unique == 0 {
		return stats
	}

	top := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[top] {
			top = key
		}
	}
	freq := counts[top]
	stats.Top = &top
	stats.Freq = &freq

	return stats
}

// buildHistogram bins values into equal-width bins over their observed range.
// A constant column is widened to v±0.5 and an empty one uses [0, 1].
func buildHistogram(field string, values []float64, bins int) model.Histogram {
	lo, hi := 0.0, 1.0
	if len(values) > 0 {
		lo, hi = values[0], values[0]
		for _, v := range values[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
	}

	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		// division can land one bin off on an interior edge; the reported edges win
		if idx > 0 && v < edges[idx] {
			idx--
		} else if idx < bins-1 && v >= edges[idx+1] {
			idx++
		}
		counts[idx]++
	}

	return model.Histogram{
		Field:  field,
		Title:  fmt.Sprintf("Distribution of %s", field),
		Edges:  edges,
		Counts: counts,
	}
}

func displayValue(v interface{}) string {
	if s, err := formatCell(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func floatPtr(v float64) *float64 {
	return &v
}
