package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"syngen/internal/model"
)

// Request describes one generation request
type Request struct {
	Topic model.Topic
	Count int
	// Seed makes the run reproducible; 0 draws a random seed
	Seed uint64
	// Formats to encode; nil means DefaultFormats
	Formats []model.Format
	// Now is the reference time for date fields; nil means time.Now
	Now func() time.Time
}

// Result is everything the display layer needs from one run
type Result struct {
	RunID     string                 `json:"run_id"`
	Topic     model.Topic            `json:"topic"`
	Seed      uint64                 `json:"seed"`
	Dataset   model.Dataset          `json:"dataset"`
	Report    model.Report           `json:"report"`
	Artifacts []model.ExportArtifact `json:"artifacts"`
	Metrics   RunMetrics             `json:"metrics"`
}

// Artifact returns the encoded artifact for format, if it was requested
func (r *Result) Artifact(format model.Format) (model.ExportArtifact, bool) {
	for _, a := range r.Artifacts {
		if a.Format == format {
			return a, true
		}
	}
	return model.ExportArtifact{}, false
}

// DefaultFormats are the downloads offered after every generation
func DefaultFormats() []model.Format {
	return []model.Format{model.FormatCSV, model.FormatXLSX, model.FormatJSON}
}

// maxSeed keeps seeds exactly representable as JSON numbers in every client
const maxSeed = 1<<53 - 1

// NewSeed draws a seed in [1, 2^53-1]
func NewSeed() uint64 {
	return rand.Uint64N(maxSeed) + 1
}

// Run generates, validates, summarizes and encodes one dataset. Nothing is
// shared between runs: each gets its own run ID and seeded sampler.
// Any failure fails the whole run and no partial result is returned.
func Run(ctx context.Context, req Request) (*Result, error) {
	runID := uuid.New().String()
	tracker := NewRunTracker(runID)

	seed := req.Seed
	if seed == 0 {
		seed = NewSeed()
	}
	formats := req.Formats
	if formats == nil {
		formats = DefaultFormats()
	}
	now := req.Now
	if now == nil {
		now = time.Now
	}

	fmt.Printf("🚀 Starting run %s: topic=%s count=%d seed=%d\n", runID, req.Topic, req.Count, seed)

	// --- GENERATE ---
	tracker.StartStage(StageGenerate)
	ds, err := Generate(req.Topic, req.Count, WithSeed(seed), WithClock(now))
	tracker.EndStage(StageGenerate, ds.Len(), err)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// --- VALIDATE ---
	tracker.StartStage(StageValidate)
	err = ValidateDataset(ds)
	tracker.EndStage(StageValidate, ds.Len(), err)
	if err != nil {
		return nil, err
	}

	// --- SUMMARIZE ---
	tracker.StartStage(StageSummarize)
	report := Summarize(ds)
	tracker.EndStage(StageSummarize, ds.Len(), nil)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// --- EXPORT ---
	tracker.StartStage(StageExport)
	artifacts := make([]model.ExportArtifact, 0, len(formats))
	for _, format := range formats {
		artifact, err := Encode(ds, format)
		if err != nil {
			tracker.EndStage(StageExport, len(artifacts), err)
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	tracker.EndStage(StageExport, len(artifacts), nil)

	tracker.Complete()
	metrics := tracker.Metrics()
	fmt.Printf("🏁 Run %s completed in %v: %d records, %d artifacts\n", runID, metrics.Duration, ds.Len(), len(artifacts))

	return &Result{
		RunID:     runID,
		Topic:     req.Topic,
		Seed:      seed,
		Dataset:   ds,
		Report:    report,
		Artifacts: artifacts,
		Metrics:   metrics,
	}, nil
}
