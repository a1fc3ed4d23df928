// Package sourcing runs the candidate search: one lookup per provided
// identifier against the analyzer service, merged left-to-right into a single
// candidate record that is handed to the caller exactly once.
package sourcing

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/candidate-scout/internal/analyzer"
	"github.com/spigell/candidate-scout/internal/candidate"
)

// Source is a single external lookup. Sources only ever set record fields;
// they never read another source's output beyond the avatar guard.
type Source interface {
	Name() string
	Enabled(in Input) bool
	Fetch(ctx context.Context, deps Deps, in Input, rec *candidate.Record, f *Findings) error
}

// Deps aggregates dependencies shared across all sources.
type Deps struct {
	Analyzer *analyzer.Client
	Logger   *zap.Logger
}

// Findings keeps the raw per-source payloads of one search. The candidate
// record only carries display fields; scoring needs the full responses.
type Findings struct {
	Github    *analyzer.GithubProfile
	Portfolio *analyzer.Portfolio
	Instagram *analyzer.InstagramProfile
	Resume    *analyzer.ParsedResume
}

// Handoff receives the final aggregated record. It is invoked exactly once
// per search, after all involved sources have settled.
type Handoff func(*candidate.Record)

// defaultSources returns the branches in their fixed execution order. The
// order matters: github runs before instagram, so its avatar wins.
func defaultSources() []Source {
	return []Source{
		githubSource{},
		portfolioSource{},
		instagramSource{},
		resumeSource{},
	}
}
