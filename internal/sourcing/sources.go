package sourcing

import (
	"context"
	"strings"

	"github.com/spigell/candidate-scout/internal/candidate"
)

const (
	SourceGithub    = "github"
	SourcePortfolio = "portfolio"
	SourceInstagram = "instagram"
	SourceResume    = "resume"
)

type githubSource struct{}

func (githubSource) Name() string { return SourceGithub }

func (githubSource) Enabled(in Input) bool {
	return strings.TrimSpace(in.GithubUsername) != ""
}

func (githubSource) Fetch(ctx context.Context, deps Deps, in Input, rec *candidate.Record, f *Findings) error {
	profile, err := deps.Analyzer.GetGithubProfile(ctx, strings.TrimSpace(in.GithubUsername))
	if err != nil {
		return err
	}

	f.Github = profile

	if profile.ProfileURL != "" {
		rec.GithubProfileURL = profile.ProfileURL
	}
	if profile.Name != "" {
		rec.Name = profile.Name
	}
	if profile.Location != "" {
		rec.Location = profile.Location
	}
	if profile.AvatarURL != "" {
		rec.AvatarURL = profile.AvatarURL
	}

	return nil
}

type portfolioSource struct{}

func (portfolioSource) Name() string { return SourcePortfolio }

func (portfolioSource) Enabled(in Input) bool {
	return strings.TrimSpace(in.PortfolioURL) != ""
}

func (portfolioSource) Fetch(ctx context.Context, deps Deps, in Input, rec *candidate.Record, f *Findings) error {
	siteURL := strings.TrimSpace(in.PortfolioURL)

	portfolio, err := deps.Analyzer.GetPortfolio(ctx, siteURL)
	if err != nil {
		return err
	}

	f.Portfolio = portfolio
	rec.PortfolioURL = siteURL

	return nil
}

type instagramSource struct{}

func (instagramSource) Name() string { return SourceInstagram }

func (instagramSource) Enabled(in Input) bool {
	return strings.TrimSpace(in.InstagramHandle) != ""
}

func (instagramSource) Fetch(ctx context.Context, deps Deps, in Input, rec *candidate.Record, f *Findings) error {
	handle := strings.TrimSpace(in.InstagramHandle)

	profile, err := deps.Analyzer.GetInstagramProfile(ctx, handle)
	if err != nil {
		return err
	}

	f.Instagram = profile
	rec.InstagramHandle = handle

	// An avatar from an earlier source (github) takes precedence.
	if profile.ProfilePicURL != "" && !rec.HasCustomAvatar() {
		rec.AvatarURL = profile.ProfilePicURL
	}

	return nil
}

type resumeSource struct{}

func (resumeSource) Name() string { return SourceResume }

func (resumeSource) Enabled(in Input) bool {
	return in.Resume != nil
}

// Fetch uploads the resume for server-side parsing. The parse result is kept
// in the findings only; no record field is mapped from it.
func (resumeSource) Fetch(ctx context.Context, deps Deps, in Input, _ *candidate.Record, f *Findings) error {
	parsed, err := deps.Analyzer.UploadResume(ctx, in.Resume.Name, in.Resume.Content)
	if err != nil {
		return err
	}

	f.Resume = parsed

	return nil
}
