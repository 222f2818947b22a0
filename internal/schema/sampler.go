package schema

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Sampler is the source of randomness and fake identities for record generation.
// Each generation request should own its Sampler.
type Sampler interface {
	Name() string
	IntRange(min, max int) int
	Float64Range(min, max float64) float64
	Choice(options []string) string
	Date(start, end time.Time) time.Time
}

type fakerSampler struct {
	faker *gofakeit.Faker
}

// NewSampler returns a gofakeit-backed Sampler.
// A seed of 0 seeds from a random source; any other seed is reproducible.
func NewSampler(seed uint64) Sampler {
	return &fakerSampler{faker: gofakeit.New(seed)}
}

func (s *fakerSampler) Name() string {
	return s.faker.Name()
}

// IntRange draws uniformly from [min, max] inclusive
func (s *fakerSampler) IntRange(min, max int) int {
	return s.faker.IntRange(min, max)
}

func (s *fakerSampler) Float64Range(min, max float64) float64 {
	return s.faker.Float64Range(min, max)
}

func (s *fakerSampler) Choice(options []string) string {
	return s.faker.RandomString(options)
}

func (s *fakerSampler) Date(start, end time.Time) time.Time {
	return s.faker.DateRange(start, end)
}
