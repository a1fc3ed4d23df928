package sourcing

import (
	"strings"

	"github.com/spigell/candidate-scout/internal/resume"
)

// Input is the set of optional candidate identifiers for one search. It is a
// plain value: updates go through the With* helpers and return a new Input,
// so callers never share mutable form state.
type Input struct {
	GithubUsername  string
	PortfolioURL    string
	InstagramHandle string
	Resume          *resume.File
}

// Empty reports whether no identifier was provided at all. A search with an
// empty input is rejected before any request is made.
func (in Input) Empty() bool {
	return strings.TrimSpace(in.GithubUsername) == "" &&
		strings.TrimSpace(in.PortfolioURL) == "" &&
		strings.TrimSpace(in.InstagramHandle) == "" &&
		in.Resume == nil
}

func (in Input) WithGithubUsername(username string) Input {
	in.GithubUsername = username
	return in
}

func (in Input) WithPortfolioURL(url string) Input {
	in.PortfolioURL = url
	return in
}

func (in Input) WithInstagramHandle(handle string) Input {
	in.InstagramHandle = handle
	return in
}

func (in Input) WithResume(file *resume.File) Input {
	in.Resume = file
	return in
}
