package sourcing

import (
	"testing"

	"github.com/spigell/candidate-scout/internal/resume"
)

func TestInputEmpty(t *testing.T) {
	if !(Input{}).Empty() {
		t.Fatalf("zero input must be empty")
	}

	if (Input{GithubUsername: "   "}).Empty() != true {
		t.Fatalf("whitespace-only input must count as empty")
	}

	if (Input{}).WithPortfolioURL("https://me.dev").Empty() {
		t.Fatalf("input with a portfolio url must not be empty")
	}

	if (Input{}).WithResume(&resume.File{Name: "cv.pdf"}).Empty() {
		t.Fatalf("input with a resume must not be empty")
	}
}

func TestInputUpdatersDoNotMutateReceiver(t *testing.T) {
	base := Input{GithubUsername: "octocat"}

	updated := base.WithInstagramHandle("octo").WithGithubUsername("other")

	if base.GithubUsername != "octocat" || base.InstagramHandle != "" {
		t.Fatalf("receiver mutated: %+v", base)
	}
	if updated.GithubUsername != "other" || updated.InstagramHandle != "octo" {
		t.Fatalf("unexpected updated input: %+v", updated)
	}
}
