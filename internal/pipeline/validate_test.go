package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"syngen/internal/model"
)

func TestValidateGeneratedDatasets(t *testing.T) {
	for _, topic := range []model.Topic{model.Healthcare, model.Finance, model.Education} {
		assert.NoError(t, ValidateDataset(generate(t, topic, 50)), topic)
	}
}

func TestValidateDatasetRejects(t *testing.T) {
	fields := []model.Field{
		{Name: "Age", Kind: model.KindInt},
		{Name: "Name", Kind: model.KindString},
	}

	tests := []struct {
		name string
		rec  model.Record
	}{
		{"missing field", model.Record{"Age": 3, "Other": "x"}},
		{"extra field", model.Record{"Age": 3, "Name": "x", "Extra": 1}},
		{"wrong kind", model.Record{"Age": "3", "Name": "x"}},
		{"nil value", model.Record{"Age": nil, "Name": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDataset(model.Dataset{Fields: fields, Records: []model.Record{tt.rec}})
			assert.True(t, errors.Is(err, ErrInvalidRecord), "got %v", err)
		})
	}
}

func TestRunTrackerRecordsFailure(t *testing.T) {
	rt := NewRunTracker("run-1")
	rt.StartStage(StageGenerate)
	rt.EndStage(StageGenerate, 10, nil)
	rt.StartStage(StageExport)
	rt.EndStage(StageExport, 0, errors.New("disk full"))
	rt.Complete()

	m := rt.Metrics()
	assert.Equal(t, "run-1", m.RunID)
	assert.Equal(t, "failed", m.Status)
	assert.Equal(t, "completed", m.Stages[0].Status)
	assert.Equal(t, 10, m.Stages[0].RecordsProcessed)
	assert.Equal(t, "failed", m.Stages[1].Status)
	assert.Equal(t, "disk full", m.Stages[1].Error)
}
