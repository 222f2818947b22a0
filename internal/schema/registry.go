package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"syngen/internal/model"
)

// ErrUnknownTopic is returned when a topic name is not one of the registered topics
var ErrUnknownTopic = errors.New("unknown topic")

// FieldSpec pairs a column name with its sampling rule
type FieldSpec struct {
	Name string
	Rule Rule
}

// Schema is the ordered field list of a topic
type Schema struct {
	Topic model.Topic
	Specs []FieldSpec
}

var yesNo = []string{"Yes", "No"}

var registry = map[model.Topic]Schema{
	model.Healthcare: {
		Topic: model.Healthcare,
		Specs: []FieldSpec{
			{Name: "Patient Name", Rule: IdentityRule{}},
			{Name: "Age", Rule: IntRule{Min: 1, Max: 100}},
			{Name: "Gender", Rule: ChoiceRule{Options: []string{"Male", "Female"}}},
			{Name: "Diagnosis", Rule: ChoiceRule{Options: []string{"Diabetes", "Hypertension", "Asthma", "None"}}},
			{Name: "Admission Date", Rule: ThisYearRule{}},
			{Name: "Discharged", Rule: ChoiceRule{Options: yesNo}},
		},
	},
	model.Finance: {
		Topic: model.Finance,
		Specs: []FieldSpec{
			{Name: "Customer Name", Rule: IdentityRule{}},
			{Name: "Account Type", Rule: ChoiceRule{Options: []string{"Savings", "Checking", "Loan"}}},
			{Name: "Balance", Rule: FloatRule{Min: 1000, Max: 100000}},
			{Name: "Credit Score", Rule: IntRule{Min: 300, Max: 850}},
			{Name: "Loan Approved", Rule: ChoiceRule{Options: yesNo}},
		},
	},
	model.Education: {
		Topic: model.Education,
		Specs: []FieldSpec{
			{Name: "Student Name", Rule: IdentityRule{}},
			{Name: "Grade", Rule: ChoiceRule{Options: []string{"A", "B", "C", "D"}}},
			{Name: "Major", Rule: ChoiceRule{Options: []string{"CS", "Math", "Physics", "History"}}},
			{Name: "GPA", Rule: FloatRule{Min: 2.0, Max: 4.0}},
			{Name: "Graduated", Rule: ChoiceRule{Options: yesNo}},
		},
	},
}

// topics is the canonical display order
var topics = []model.Topic{model.Healthcare, model.Finance, model.Education}

// Topics returns every registered topic in display order
func Topics() []model.Topic {
	out := make([]model.Topic, len(topics))
	copy(out, topics)
	return out
}

// Lookup returns the schema registered for topic
func Lookup(topic model.Topic) (Schema, bool) {
	s, ok := registry[topic]
	return s, ok
}

// ParseTopic maps user input to a registered topic, ignoring case and surrounding space
func ParseTopic(name string) (model.Topic, error) {
	name = strings.TrimSpace(name)
	for _, t := range topics {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopic, name, topicList())
}

func topicList() string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Fields returns the column definitions in schema order
func (s Schema) Fields() []model.Field {
	fields := make([]model.Field, len(s.Specs))
	for i, spec := range s.Specs {
		fields[i] = model.Field{Name: spec.Name, Kind: spec.Rule.Kind()}
	}
	return fields
}

// Sample draws one record, evaluating every rule independently
func (s Schema) Sample(sampler Sampler, now time.Time) model.Record {
	rec := make(model.Record, len(s.Specs))
	for _, spec := range s.Specs {
		rec[spec.Name] = spec.Rule.Sample(sampler, now)
	}
	return rec
}
