package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"syngen/internal/model"
	"syngen/internal/pipeline"
	"syngen/internal/schema"
)

// Config bounds what a single request may ask for
type Config struct {
	DefaultRecords int
	MaxRecords     int
	// Now is the clock used for date fields; nil means time.Now
	Now func() time.Time
}

// DatasetHandler serves generation, summary and download requests.
// It holds no per-request state; every request runs its own pipeline.
type DatasetHandler struct {
	cfg Config
}

// NewDatasetHandler creates a handler with the given limits
func NewDatasetHandler(cfg Config) *DatasetHandler {
	if cfg.DefaultRecords <= 0 {
		cfg.DefaultRecords = 100
	}
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = 1000
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &DatasetHandler{cfg: cfg}
}

// GenerateRequest is the body of POST /api/v1/datasets
type GenerateRequest struct {
	Topic string `json:"topic" example:"Finance"`
	Count int    `json:"count" example:"100"`
	Seed  uint64 `json:"seed,omitempty" example:"42"`
}

// TopicInfo describes one selectable topic
type TopicInfo struct {
	Topic  model.Topic   `json:"topic"`
	Fields []model.Field `json:"fields"`
}

// DownloadLink points at a re-derivable export of a generated dataset
type DownloadLink struct {
	Format   model.Format `json:"format"`
	Filename string       `json:"filename"`
	MIMEType string       `json:"mime_type"`
	Size     int          `json:"size"`
	URL      string       `json:"url"`
}

// GenerateResponse is returned by POST /api/v1/datasets
type GenerateResponse struct {
	Message   string              `json:"message"`
	RunID     string              `json:"run_id"`
	Topic     model.Topic         `json:"topic"`
	Count     int                 `json:"count"`
	Seed      uint64              `json:"seed"`
	AsOf      string              `json:"as_of"`
	Fields    []model.Field       `json:"fields"`
	Records   json.RawMessage     `json:"records" swaggertype:"array,object"`
	Report    model.Report        `json:"report"`
	Downloads []DownloadLink      `json:"downloads"`
	Metrics   pipeline.RunMetrics `json:"metrics"`
}

// Index describes the idle state before any generation
// @Summary Service status
// @Description Instructions shown before a dataset has been generated
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{} "Idle message"
// @Router / [get]
func (h *DatasetHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Configure a topic and record count, then POST /api/v1/datasets to generate a dataset.",
		"topics":  schema.Topics(),
		"formats": pipeline.Formats(),
		"limits": map[string]int{
			"default_records": h.cfg.DefaultRecords,
			"max_records":     h.cfg.MaxRecords,
		},
	})
}

// ListTopics lists the topics and their fields
// @Summary List topics
// @Description List the dataset topics with their ordered fields
// @Tags datasets
// @Produce json
// @Success 200 {array} TopicInfo "Topics"
// @Router /api/v1/topics [get]
func (h *DatasetHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := make([]TopicInfo, 0, len(schema.Topics()))
	for _, t := range schema.Topics() {
		s, _ := schema.Lookup(t)
		topics = append(topics, TopicInfo{Topic: t, Fields: s.Fields()})
	}
	writeJSON(w, http.StatusOK, topics)
}

// CreateDataset generates a dataset, summarizes it and offers downloads
// @Summary Generate a dataset
// @Description Generate synthetic records for a topic and return them with summary statistics, histograms and download links
// @Tags datasets
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Topic, record count and optional seed"
// @Success 200 {object} GenerateResponse "Generated dataset"
// @Failure 400 {string} string "Invalid request payload"
// @Failure 500 {string} string "Encoding failure"
// @Router /api/v1/datasets [post]
func (h *DatasetHandler) CreateDataset(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	topic, err := schema.ParseTopic(req.Topic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	count := req.Count
	if count == 0 {
		count = h.cfg.DefaultRecords
	}
	if err := h.checkCount(count); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	asOf := model.Date(h.cfg.Now())
	res, err := pipeline.Run(r.Context(), pipeline.Request{
		Topic: topic,
		Count: count,
		Seed:  req.Seed,
		Now:   func() time.Time { return asOf },
	})
	if err != nil {
		writeRunError(w, err)
		return
	}

	records, _ := res.Artifact(model.FormatJSON)
	downloads := make([]DownloadLink, 0, len(res.Artifacts))
	for _, a := range res.Artifacts {
		downloads = append(downloads, DownloadLink{
			Format:   a.Format,
			Filename: a.Filename,
			MIMEType: a.MIMEType,
			Size:     len(a.Data),
			URL:      ExportURL(topic, count, res.Seed, asOf, a.Format),
		})
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Message:   fmt.Sprintf("Generated %d records for %s dataset.", count, topic),
		RunID:     res.RunID,
		Topic:     topic,
		Count:     count,
		Seed:      res.Seed,
		AsOf:      asOf.Format(model.DateLayout),
		Fields:    res.Dataset.Fields,
		Records:   json.RawMessage(records.Data),
		Report:    res.Report,
		Downloads: downloads,
		Metrics:   res.Metrics,
	})
}

// ExportDataset re-derives a dataset from its seed and serves it as a file
// @Summary Download a dataset
// @Description Regenerate a dataset from topic, count, seed and as_of date and download it in the requested format
// @Tags files
// @Produce application/octet-stream
// @Param topic query string true "Topic" Enums(Healthcare, Finance, Education)
// @Param count query int false "Record count"
// @Param seed query int false "Seed returned by the generate call"
// @Param as_of query string false "Reference date (YYYY-MM-DD) for date fields"
// @Param format query string false "Export format" Enums(csv, xlsx, json, sqlite)
// @Success 200 {file} file "Dataset file"
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Encoding failure"
// @Router /api/v1/datasets/export [get]
func (h *DatasetHandler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	topic, err := schema.ParseTopic(q.Get("topic"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	count := h.cfg.DefaultRecords
	if c := q.Get("count"); c != "" {
		if count, err = strconv.Atoi(c); err != nil {
			http.Error(w, "count must be an integer", http.StatusBadRequest)
			return
		}
	}
	if err := h.checkCount(count); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var seed uint64
	if s := q.Get("seed"); s != "" {
		if seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			http.Error(w, "seed must be a non-negative integer", http.StatusBadRequest)
			return
		}
	}

	asOf := model.Date(h.cfg.Now())
	if d := q.Get("as_of"); d != "" {
		if asOf, err = time.Parse(model.DateLayout, d); err != nil {
			http.Error(w, "as_of must be a YYYY-MM-DD date", http.StatusBadRequest)
			return
		}
	}

	format := model.FormatCSV
	if f := q.Get("format"); f != "" {
		if format, err = pipeline.ParseFormat(f); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	res, err := pipeline.Run(r.Context(), pipeline.Request{
		Topic:   topic,
		Count:   count,
		Seed:    seed,
		Formats: []model.Format{format},
		Now:     func() time.Time { return asOf },
	})
	if err != nil {
		writeRunError(w, err)
		return
	}

	artifact, _ := res.Artifact(format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", artifact.Filename))
	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Header().Set("X-Syngen-Seed", strconv.FormatUint(res.Seed, 10))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}

// ExportURL builds the download URL that reproduces a generated dataset
func ExportURL(topic model.Topic, count int, seed uint64, asOf time.Time, format model.Format) string {
	q := url.Values{}
	q.Set("topic", string(topic))
	q.Set("count", strconv.Itoa(count))
	q.Set("seed", strconv.FormatUint(seed, 10))
	q.Set("as_of", asOf.Format(model.DateLayout))
	q.Set("format", string(format))
	return "/api/v1/datasets/export?" + q.Encode()
}

func (h *DatasetHandler) checkCount(count int) error {
	if count < 1 || count > h.cfg.MaxRecords {
		return fmt.Errorf("count must be between 1 and %d, got %d", h.cfg.MaxRecords, count)
	}
	return nil
}

func writeRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schema.ErrUnknownTopic),
		errors.Is(err, pipeline.ErrInvalidCount),
		errors.Is(err, pipeline.ErrUnknownFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Failed to generate dataset: "+err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
