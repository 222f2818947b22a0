package schema

import (
	"math"
	"time"

	"syngen/internal/model"
)

// Rule samples one field value
type Rule interface {
	Kind() model.FieldKind
	Sample(s Sampler, now time.Time) interface{}
}

// IdentityRule synthesizes a plausible person name
type IdentityRule struct{}

func (IdentityRule) Kind() model.FieldKind { return model.KindString }

func (IdentityRule) Sample(s Sampler, _ time.Time) interface{} {
	return s.Name()
}

// IntRule draws uniformly from [Min, Max] inclusive
type IntRule struct {
	Min, Max int
}

func (IntRule) Kind() model.FieldKind { return model.KindInt }

func (r IntRule) Sample(s Sampler, _ time.Time) interface{} {
	return s.IntRange(r.Min, r.Max)
}

// ChoiceRule picks one option with equal probability
type ChoiceRule struct {
	Options []string
}

func (ChoiceRule) Kind() model.FieldKind { return model.KindString }

func (r ChoiceRule) Sample(s Sampler, _ time.Time) interface{} {
	return s.Choice(r.Options)
}

// FloatRule draws uniformly from [Min, Max] and rounds to 2 decimal digits
type FloatRule struct {
	Min, Max float64
}

func (FloatRule) Kind() model.FieldKind { return model.KindFloat }

func (r FloatRule) Sample(s Sampler, _ time.Time) interface{} {
	v := Round2(s.Float64Range(r.Min, r.Max))
	// rounding can step just outside the range at either bound
	return math.Min(math.Max(v, r.Min), r.Max)
}

// ThisYearRule draws a calendar date between January 1 of now's year and now's date
type ThisYearRule struct{}

func (ThisYearRule) Kind() model.FieldKind { return model.KindDate }

func (ThisYearRule) Sample(s Sampler, now time.Time) interface{} {
	now = now.UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := model.Date(now).Add(24*time.Hour - time.Second)
	return model.Date(s.Date(start, end))
}

// Round2 rounds v to 2 decimal digits
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
