package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/candidate-scout/internal/ai"
	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/matching"
	"github.com/spigell/candidate-scout/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Advisor turns a candidate record plus its evaluation into qualitative
// insights using a Gemini generator.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Advise(ctx context.Context, rec *candidate.Record, eval *matching.Evaluation) (*ai.Insights, error) {
	if rec == nil {
		return nil, fmt.Errorf("candidate record is required")
	}
	if eval == nil {
		return nil, fmt.Errorf("evaluation is required")
	}

	candidateJSON, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate payload: %w", err)
	}

	evalJSON, err := json.MarshalIndent(eval, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal evaluation payload: %w", err)
	}

	prompt := buildPrompt(string(candidateJSON), string(evalJSON))

	a.logger.Debug("gemini advise request",
		zap.String("candidate_id", rec.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini advise response",
		zap.String("candidate_id", rec.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	insights, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	insights.Raw = raw
	return insights, nil
}

func buildPrompt(candidateJSON, evalJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate:\n{{CANDIDATE_JSON}}\n\nEvaluation:\n{{EVALUATION_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{CANDIDATE_JSON}}", candidateJSON)
	prompt = strings.ReplaceAll(prompt, "{{EVALUATION_JSON}}", evalJSON)
	return prompt
}

func parseResponse(raw string) (*ai.Insights, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data struct {
		Summary         string   `json:"summary"`
		Strengths       []string `json:"strengths"`
		Weaknesses      []string `json:"weaknesses"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.Insights{
		Summary:         strings.TrimSpace(data.Summary),
		Strengths:       cleanList(data.Strengths),
		Weaknesses:      cleanList(data.Weaknesses),
		Recommendations: cleanList(data.Recommendations),
	}, nil
}

// extractJSON strips markdown fences some models keep adding despite the
// prompt asking not to.
func extractJSON(raw string) string {
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx >= 0 {
			raw = raw[:idx]
		}
		return strings.TrimSpace(raw)
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}

	return raw
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
