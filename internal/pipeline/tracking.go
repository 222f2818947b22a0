package pipeline

import (
	"fmt"
	"time"
)

// Stage names of a generation run
const (
	StageGenerate  = "generate"
	StageValidate  = "validate"
	StageSummarize = "summarize"
	StageExport    = "export"
)

// StageMetrics tracks one stage of a run
type StageMetrics struct {
	Stage            string        `json:"stage"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Duration         time.Duration `json:"duration"`
	RecordsProcessed int           `json:"records_processed"`
	Status           string        `json:"status"` // "running", "completed", "failed"
	Error            string        `json:"error,omitempty"`
}

// RunMetrics is the timing summary attached to a run result
type RunMetrics struct {
	RunID     string         `json:"run_id"`
	StartTime time.Time      `json:"start_time"`
	Duration  time.Duration  `json:"duration"`
	Status    string         `json:"status"`
	Stages    []StageMetrics `json:"stages"`
}

// RunTracker records stage timings for a single request. It is owned by one
// goroutine and is not safe for concurrent use.
type RunTracker struct {
	runID  string
	start  time.Time
	status string
	stages []StageMetrics
}

// NewRunTracker starts tracking a run
func NewRunTracker(runID string) *RunTracker {
	return &RunTracker{
		runID:  runID,
		start:  time.Now(),
		status: "running",
		stages: make([]StageMetrics, 0, 4),
	}
}

// StartStage marks the start of a stage
func (rt *RunTracker) StartStage(stage string) {
	rt.stages = append(rt.stages, StageMetrics{
		Stage:     stage,
		StartTime: time.Now(),
		Status:    "running",
	})
}

// EndStage closes the most recent stage with the given name
func (rt *RunTracker) EndStage(stage string, recordsProcessed int, err error) {
	for i := len(rt.stages) - 1; i >= 0; i-- {
		s := &rt.stages[i]
		if s.Stage != stage || s.Status != "running" {
			continue
		}
		s.EndTime = time.Now()
		s.Duration = s.EndTime.Sub(s.StartTime)
		s.RecordsProcessed = recordsProcessed
		s.Status = "completed"
		if err != nil {
			s.Status = "failed"
			s.Error = err.Error()
			rt.status = "failed"
			fmt.Printf("❌ Stage '%s' failed after %v: %v\n", stage, s.Duration, err)
			return
		}
		fmt.Printf("📊 Stage '%s' completed: %d records in %v\n", stage, recordsProcessed, s.Duration)
		return
	}
}

// Complete marks the run as finished unless a stage failed
func (rt *RunTracker) Complete() {
	if rt.status == "running" {
		rt.status = "completed"
	}
}

// Metrics returns a snapshot of the run's timings
func (rt *RunTracker) Metrics() RunMetrics {
	stages := make([]StageMetrics, len(rt.stages))
	copy(stages, rt.stages)
	return RunMetrics{
		RunID:     rt.runID,
		StartTime: rt.start,
		Duration:  time.Since(rt.start),
		Status:    rt.status,
		Stages:    stages,
	}
}
