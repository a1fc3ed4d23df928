// Package report assembles and persists the result of a candidate analysis.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/candidate-scout/internal/ai"
	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/matching"
)

// Report is the full outcome of an analyze run: the aggregated record, the
// evaluation against the requirements and, when enabled, AI insights.
type Report struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Candidate   *candidate.Record    `json:"candidate"`
	Evaluation  *matching.Evaluation `json:"evaluation,omitempty"`
	Insights    *ai.Insights         `json:"insights,omitempty"`
}

func New(rec *candidate.Record, eval *matching.Evaluation, insights *ai.Insights) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Candidate:   rec,
		Evaluation:  eval,
		Insights:    insights,
	}
}

// ToFile writes the report as indented JSON.
func (r *Report) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// DumpToTmpFile writes the report to a fresh temp file and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidate_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// FromFile reads a previously saved report.
func FromFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r Report
	if err := json.NewDecoder(file).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
