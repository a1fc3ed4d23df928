package ai

import (
	"context"

	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/matching"
)

// Insights is qualitative feedback about a candidate produced by an AI
// provider on top of the numeric evaluation.
type Insights struct {
	Summary         string   `json:"summary,omitempty"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Raw             string   `json:"-"`
}

type Advisor interface {
	Advise(ctx context.Context, rec *candidate.Record, eval *matching.Evaluation) (*Insights, error)
}
