package pipeline

import (
	"errors"
	"fmt"
	"log"
	"time"

	"syngen/internal/model"
	"syngen/internal/schema"
)

// ErrInvalidCount is returned for a negative record count
var ErrInvalidCount = errors.New("record count must not be negative")

// GenerateOption customizes a single Generate call
type GenerateOption func(*generateOptions)

type generateOptions struct {
	sampler schema.Sampler
	now     func() time.Time
}

// WithSampler sets the randomness and identity source
func WithSampler(s schema.Sampler) GenerateOption {
	return func(o *generateOptions) {
		o.sampler = s
	}
}

// WithSeed uses a gofakeit sampler seeded with seed
func WithSeed(seed uint64) GenerateOption {
	return func(o *generateOptions) {
		o.sampler = schema.NewSampler(seed)
	}
}

// WithClock sets the reference time for date fields
func WithClock(now func() time.Time) GenerateOption {
	return func(o *generateOptions) {
		o.now = now
	}
}

// Generate draws count independent records from the topic's schema.
// An unregistered topic yields an empty dataset with no fields.
func Generate(topic model.Topic, count int, opts ...GenerateOption) (model.Dataset, error) {
	if count < 0 {
		return model.Dataset{}, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	o := generateOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = schema.NewSampler(0)
	}

	ds := model.Dataset{
		Topic:   topic,
		Fields:  []model.Field{},
		Records: []model.Record{},
	}

	sch, ok := schema.Lookup(topic)
	if !ok {
		log.Printf("⚠️ Generate: no schema registered for topic %q, returning empty dataset", topic)
		return ds, nil
	}

	now := o.now()
	ds.Fields = sch.Fields()
	ds.Records = make([]model.Record, 0, count)
	for i := 0; i < count; i++ {
		ds.Records = append(ds.Records, sch.Sample(o.sampler, now))
	}

	return ds, nil
}
