package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syngen/internal/model"
	"syngen/internal/schema"
)

var fixedNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func generate(t *testing.T, topic model.Topic, n int) model.Dataset {
	t.Helper()
	ds, err := Generate(topic, n, WithSeed(2026), WithClock(clock))
	require.NoError(t, err)
	return ds
}

func hasTwoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

func TestGenerateShape(t *testing.T) {
	for _, topic := range schema.Topics() {
		for _, n := range []int{0, 1, 10, 250} {
			ds := generate(t, topic, n)
			sch, _ := schema.Lookup(topic)

			assert.Equal(t, topic, ds.Topic)
			assert.Equal(t, sch.Fields(), ds.Fields)
			require.Len(t, ds.Records, n)
			for _, rec := range ds.Records {
				assert.Len(t, rec, len(ds.Fields))
				for _, f := range ds.Fields {
					assert.Contains(t, rec, f.Name)
				}
			}
		}
	}
}

func TestGenerateHealthcareRanges(t *testing.T) {
	ds := generate(t, model.Healthcare, 500)
	yearStart := time.Date(fixedNow.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, rec := range ds.Records {
		age := rec["Age"].(int)
		assert.GreaterOrEqual(t, age, 1)
		assert.LessOrEqual(t, age, 100)

		assert.Contains(t, []string{"Male", "Female"}, rec["Gender"])
		assert.Contains(t, []string{"Diabetes", "Hypertension", "Asthma", "None"}, rec["Diagnosis"])
		assert.Contains(t, []string{"Yes", "No"}, rec["Discharged"])
		assert.NotEmpty(t, rec["Patient Name"])

		admitted := rec["Admission Date"].(time.Time)
		assert.Equal(t, fixedNow.Year(), admitted.Year())
		assert.False(t, admitted.Before(yearStart))
		assert.False(t, admitted.After(fixedNow))
		assert.Equal(t, model.Date(admitted), admitted)
	}
}

func TestGenerateFinanceRanges(t *testing.T) {
	ds := generate(t, model.Finance, 500)

	for _, rec := range ds.Records {
		balance := rec["Balance"].(float64)
		assert.GreaterOrEqual(t, balance, 1000.0)
		assert.LessOrEqual(t, balance, 100000.0)
		assert.True(t, hasTwoDecimals(balance), "balance %v", balance)

		score := rec["Credit Score"].(int)
		assert.GreaterOrEqual(t, score, 300)
		assert.LessOrEqual(t, score, 850)

		assert.Contains(t, []string{"Savings", "Checking", "Loan"}, rec["Account Type"])
		assert.Contains(t, []string{"Yes", "No"}, rec["Loan Approved"])
	}
}

func TestGenerateEducationRanges(t *testing.T) {
	ds := generate(t, model.Education, 500)

	for _, rec := range ds.Records {
		gpa := rec["GPA"].(float64)
		assert.GreaterOrEqual(t, gpa, 2.0)
		assert.LessOrEqual(t, gpa, 4.0)
		assert.True(t, hasTwoDecimals(gpa), "gpa %v", gpa)

		assert.Contains(t, []string{"A", "B", "C", "D"}, rec["Grade"])
		assert.Contains(t, []string{"CS", "Math", "Physics", "History"}, rec["Major"])
		assert.Contains(t, []string{"Yes", "No"}, rec["Graduated"])
	}
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	a := generate(t, model.Finance, 50)
	b := generate(t, model.Finance, 50)
	assert.Equal(t, a, b)

	c, err := Generate(model.Finance, 50, WithSeed(99), WithClock(clock))
	require.NoError(t, err)
	assert.NotEqual(t, a.Records, c.Records)
}

func TestGenerateUnknownTopicIsEmpty(t *testing.T) {
	ds, err := Generate(model.Topic("Retail"), 25)
	require.NoError(t, err)
	assert.Empty(t, ds.Fields)
	assert.Empty(t, ds.Records)
	assert.Equal(t, model.Topic("Retail"), ds.Topic)
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := Generate(model.Education, -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestGenerateUsesInjectedSampler(t *testing.T) {
	ds, err := Generate(model.Education, 3, WithSampler(schema.NewSampler(5)), WithClock(clock))
	require.NoError(t, err)

	again, err := Generate(model.Education, 3, WithSeed(5), WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, again.Records, ds.Records)
}
