package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syngen/internal/model"
)

func scoresDataset() model.Dataset {
	day := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	values := []struct {
		name  string
		score int
		ratio float64
		when  time.Time
	}{
		{"Ann", 1, 2.00, day},
		{"Bob", 2, 2.50, day},
		{"Ann", 3, 3.00, day.AddDate(0, 0, 1)},
		{"Cid", 4, 3.50, day},
		{"Bob", 10, 4.00, day.AddDate(0, 0, 2)},
	}

	ds := model.Dataset{
		Topic: "Test",
		Fields: []model.Field{
			{Name: "Name", Kind: model.KindString},
			{Name: "Score", Kind: model.KindInt},
			{Name: "Ratio", Kind: model.KindFloat},
			{Name: "When", Kind: model.KindDate},
		},
	}
	for _, v := range values {
		ds.Records = append(ds.Records, model.Record{
			"Name": v.name, "Score": v.score, "Ratio": v.ratio, "When": v.when,
		})
	}
	return ds
}

func TestSummarizeNumericColumn(t *testing.T) {
	report := Summarize(scoresDataset())
	require.Len(t, report.Columns, 4)
	assert.Equal(t, 5, report.RecordCount)

	score := report.Columns[1]
	assert.Equal(t, "Score", score.Field)
	assert.Equal(t, 5, score.Count)
	assert.InDelta(t, 4.0, *score.Mean, 1e-9)
	assert.InDelta(t, 3.5355339, *score.Std, 1e-6)
	assert.Equal(t, 1.0, *score.Min)
	assert.Equal(t, 2.0, *score.P25)
	assert.Equal(t, 3.0, *score.P50)
	assert.Equal(t, 4.0, *score.P75)
	assert.Equal(t, 10.0, *score.Max)
	assert.Nil(t, score.Unique)
	assert.Nil(t, score.Top)
}

func TestSummarizeQuartilesInterpolate(t *testing.T) {
	ds := model.Dataset{Fields: []model.Field{{Name: "X", Kind: model.KindFloat}}}
	for _, v := range []float64{1, 2, 3, 4} {
		ds.Records = append(ds.Records, model.Record{"X": v})
	}

	col := Summarize(ds).Columns[0]
	assert.InDelta(t, 1.75, *col.P25, 1e-9)
	assert.InDelta(t, 2.5, *col.P50, 1e-9)
	assert.InDelta(t, 3.25, *col.P75, 1e-9)
}

func TestSummarizeCategoricalColumns(t *testing.T) {
	report := Summarize(scoresDataset())

	name := report.Columns[0]
	assert.Equal(t, 5, name.Count)
	assert.Equal(t, 3, *name.Unique)
	// Ann and Bob both appear twice; Ann was seen first
	assert.Equal(t, "Ann", *name.Top)
	assert.Equal(t, 2, *name.Freq)
	assert.Nil(t, name.Mean)

	when := report.Columns[3]
	assert.Equal(t, 3, *when.Unique)
	assert.Equal(t, "2026-05-01", *when.Top)
	assert.Equal(t, 3, *when.Freq)
}

func TestSummarizeHistograms(t *testing.T) {
	report := Summarize(scoresDataset())
	require.Len(t, report.Histograms, 2)

	h := report.Histograms[0]
	assert.Equal(t, "Score", h.Field)
	assert.Equal(t, "Distribution of Score", h.Title)
	require.Len(t, h.Counts, HistogramBins)
	require.Len(t, h.Edges, HistogramBins+1)
	assert.Equal(t, 1.0, h.Edges[0])
	assert.Equal(t, 10.0, h.Edges[HistogramBins])

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 5, total)
	// max value lands in the closed last bin
	assert.Equal(t, 1, h.Counts[HistogramBins-1])
	assert.Equal(t, 1, h.Counts[0])
}

func TestSummarizeConstantColumnHistogram(t *testing.T) {
	ds := model.Dataset{Fields: []model.Field{{Name: "X", Kind: model.KindInt}}}
	for i := 0; i < 3; i++ {
		ds.Records = append(ds.Records, model.Record{"X": 7})
	}

	h := Summarize(ds).Histograms[0]
	assert.Equal(t, 6.5, h.Edges[0])
	assert.Equal(t, 7.5, h.Edges[HistogramBins])

	filled := []int{}
	for i, c := range h.Counts {
		if c > 0 {
			filled = append(filled, i)
			assert.Equal(t, 3, c)
		}
	}
	require.Len(t, filled, 1)
	assert.Contains(t, []int{HistogramBins/2 - 1, HistogramBins / 2}, filled[0])
}

func TestSummarizeSingleValueHasNoStd(t *testing.T) {
	ds := model.Dataset{
		Fields:  []model.Field{{Name: "X", Kind: model.KindFloat}},
		Records: []model.Record{{"X": 3.25}},
	}

	col := Summarize(ds).Columns[0]
	assert.Nil(t, col.Std)
	assert.Equal(t, 3.25, *col.Mean)
	assert.Equal(t, 3.25, *col.P75)
}

func TestSummarizeFinanceHasTwoHistograms(t *testing.T) {
	ds := generate(t, model.Finance, 3)
	report := Summarize(ds)

	require.Len(t, report.Histograms, 2)
	assert.Equal(t, "Balance", report.Histograms[0].Field)
	assert.Equal(t, "Credit Score", report.Histograms[1].Field)
}

func TestSummarizeEducationAndHealthcareHistograms(t *testing.T) {
	edu := Summarize(generate(t, model.Education, 20))
	require.Len(t, edu.Histograms, 1)
	assert.Equal(t, "GPA", edu.Histograms[0].Field)

	health := Summarize(generate(t, model.Healthcare, 20))
	require.Len(t, health.Histograms, 1)
	assert.Equal(t, "Age", health.Histograms[0].Field)
}

func TestSummarizeEmptyDataset(t *testing.T) {
	report := Summarize(generate(t, model.Education, 0))

	assert.Equal(t, 0, report.RecordCount)
	require.Len(t, report.Columns, 5)
	for _, col := range report.Columns {
		assert.Equal(t, 0, col.Count)
		assert.Nil(t, col.Mean)
		assert.Nil(t, col.Top)
	}
	require.Len(t, report.Histograms, 1)
	assert.Equal(t, make([]int, HistogramBins), report.Histograms[0].Counts)

	none := Summarize(model.Dataset{})
	assert.Empty(t, none.Columns)
	assert.Empty(t, none.Histograms)
}

func TestSummarizeDoesNotMutate(t *testing.T) {
	ds := generate(t, model.Healthcare, 30)
	before := generate(t, model.Healthcare, 30)

	Summarize(ds)
	assert.Equal(t, before, ds)
}

// countByEdges bins values using only the reported edges, last bin closed
func countByEdges(h model.Histogram, values []float64) []int {
	counts := make([]int, len(h.Counts))
	last := len(h.Counts) - 1
	for _, v := range values {
		for i := 0; i <= last; i++ {
			if v >= h.Edges[i] && (v < h.Edges[i+1] || (i == last && v <= h.Edges[i+1])) {
				counts[i]++
				break
			}
		}
	}
	return counts
}

func TestHistogramCountsAgreeWithEdges(t *testing.T) {
	ds, err := Generate(model.Education, 1000, WithSeed(1), WithClock(clock))
	require.NoError(t, err)

	gpa := numericColumn(ds, "GPA")
	h := buildHistogram("GPA", gpa, HistogramBins)
	assert.Equal(t, countByEdges(h, gpa), h.Counts)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 1000, total)
}

func TestHistogramValuesOnInteriorEdges(t *testing.T) {
	values := []float64{2.0, 2.1, 2.3, 2.7, 2.9, 3.2, 3.3, 3.6, 3.9, 4.0}
	h := buildHistogram("GPA", values, HistogramBins)

	assert.Equal(t, countByEdges(h, values), h.Counts)
	assert.Equal(t, 1, h.Counts[0])
	assert.Equal(t, 1, h.Counts[HistogramBins-1])
}
