package matching

import (
	"reflect"
	"testing"

	"github.com/spigell/candidate-scout/internal/analyzer"
)

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{"python", " node ", "Python", "golang", "", "Terraform"})
	expected := []string{"Go", "Node.js", "Python", "Terraform"}

	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestMergeSkills(t *testing.T) {
	got := MergeSkills([]string{"react"}, []string{"React", "aws"}, nil)
	expected := []string{"AWS", "React"}

	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestMatchSkills(t *testing.T) {
	match := MatchSkills(
		[]string{"python", "react", "docker"},
		[]string{"Python", "JavaScript"},
		[]string{"Docker", "Kubernetes"},
	)

	if match.RequiredScore != 50 {
		t.Fatalf("expected required score 50, got %v", match.RequiredScore)
	}
	if match.PreferredScore != 50 {
		t.Fatalf("expected preferred score 50, got %v", match.PreferredScore)
	}
	// 50*0.7 + 50*0.3
	if match.Score != 50 {
		t.Fatalf("expected combined score 50, got %v", match.Score)
	}
	if !reflect.DeepEqual(match.MatchingRequired, []string{"Python"}) {
		t.Fatalf("unexpected matching required: %v", match.MatchingRequired)
	}
	if !reflect.DeepEqual(match.MissingRequired, []string{"JavaScript"}) {
		t.Fatalf("unexpected missing required: %v", match.MissingRequired)
	}
	if !reflect.DeepEqual(match.MatchingPreferred, []string{"Docker"}) {
		t.Fatalf("unexpected matching preferred: %v", match.MatchingPreferred)
	}
}

func TestMatchSkillsEmptyRequirements(t *testing.T) {
	match := MatchSkills([]string{"Go"}, nil, nil)

	if match.Score != 0 || match.RequiredScore != 0 || match.PreferredScore != 0 {
		t.Fatalf("expected zero scores without requirements, got %+v", match)
	}
}

func TestExperienceScore(t *testing.T) {
	entries := []analyzer.PortfolioEntry{
		{Date: "2018-2021"},
		{Date: "not a range"},
		{Date: "2021-2022"},
	}

	// 4 years against a 2 year minimum caps at 100.
	if got := experienceScore(entries, 2); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}

	// 4 years against 8 required is half way.
	if got := experienceScore(entries, 8); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}

	if got := experienceScore(nil, 0); got != 100 {
		t.Fatalf("expected 100 when no minimum, got %v", got)
	}
}

func TestProjectScore(t *testing.T) {
	if got := projectScore(nil, 2); got != 0 {
		t.Fatalf("expected 0 without projects, got %v", got)
	}

	projects := []analyzer.PortfolioProject{
		{Title: "One", Description: "desc", Technologies: []string{"Go"}},
		{Title: "Two"},
	}

	// quantity: 2/2 -> 100, quality: 1/2 -> 50; 100*0.6 + 50*0.4 = 80
	if got := projectScore(projects, 2); got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
}

func TestGithubScore(t *testing.T) {
	profile := &analyzer.GithubProfile{
		TotalStars:    10,
		PublicRepos:   3,
		ActivityScore: 50,
	}

	// stars 10/5 caps at 100, repos 3/3 -> 100, activity 50
	// 100*0.4 + 100*0.3 + 50*0.3 = 85
	if got := githubScore(profile, 5, 3); got != 85 {
		t.Fatalf("expected 85, got %v", got)
	}
}

func TestEducationScore(t *testing.T) {
	entries := []analyzer.PortfolioEntry{
		{Degree: "Bachelor of Science"},
	}

	if got := educationScore(entries, "bachelor"); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := educationScore(entries, "phd"); got != 60 {
		t.Fatalf("expected 60, got %v", got)
	}
	if got := educationScore(nil, ""); got != 100 {
		t.Fatalf("expected 100 without requirement, got %v", got)
	}
	if got := educationScore(nil, "unheard-of level"); got != 100 {
		t.Fatalf("expected 100 for unknown requirement, got %v", got)
	}
}

func TestEvaluateQualified(t *testing.T) {
	profile := Profile{
		Skills: []string{"Python", "JavaScript", "Docker"},
		Projects: []analyzer.PortfolioProject{
			{Title: "One", Description: "d", Technologies: []string{"Python"}},
			{Title: "Two", Description: "d", Technologies: []string{"JavaScript"}},
		},
		Experience: []analyzer.PortfolioEntry{{Date: "2019-2023"}},
		Education:  []analyzer.PortfolioEntry{{Degree: "Master of Science"}},
		Github: &analyzer.GithubProfile{
			TotalStars:    20,
			PublicRepos:   10,
			ActivityScore: 100,
		},
	}

	req := Requirements{
		RequiredSkills:     []string{"Python", "JavaScript"},
		PreferredSkills:    []string{"Docker"},
		MinExperienceYears: 2,
		MinProjects:        2,
		MinGithubStars:     5,
		MinGithubRepos:     3,
		RequiredEducation:  "bachelor",
	}

	eval := Evaluate(profile, req)

	if eval.Skills.RequiredScore != 100 {
		t.Fatalf("expected full required skills, got %v", eval.Skills.RequiredScore)
	}
	if eval.ExperienceScore != 100 || eval.ProjectScore != 100 {
		t.Fatalf("expected full experience/project scores, got %v/%v", eval.ExperienceScore, eval.ProjectScore)
	}
	if eval.GithubScore != 100 || eval.EducationScore != 100 {
		t.Fatalf("expected full github/education scores, got %v/%v", eval.GithubScore, eval.EducationScore)
	}
	if eval.OverallScore != 100 {
		t.Fatalf("expected overall 100, got %v", eval.OverallScore)
	}
	if !eval.Qualified {
		t.Fatalf("expected candidate to qualify: %+v", eval)
	}
}

func TestEvaluateNotQualifiedOnMissingSkills(t *testing.T) {
	profile := Profile{
		Skills:     []string{"PHP"},
		Projects:   []analyzer.PortfolioProject{{Title: "One", Description: "d", Technologies: []string{"PHP"}}},
		Experience: []analyzer.PortfolioEntry{{Date: "2022-2023"}},
	}

	req := Requirements{
		RequiredSkills:     []string{"Go", "Python"},
		MinExperienceYears: 1,
		MinProjects:        1,
	}

	eval := Evaluate(profile, req)

	if eval.Qualified {
		t.Fatalf("expected candidate to be rejected: %+v", eval)
	}
	if eval.Skills.RequiredScore != 0 {
		t.Fatalf("expected zero required score, got %v", eval.Skills.RequiredScore)
	}
	if len(eval.Skills.MissingRequired) != 2 {
		t.Fatalf("expected two missing skills, got %v", eval.Skills.MissingRequired)
	}
}

func TestEvaluateWithoutGithub(t *testing.T) {
	eval := Evaluate(Profile{Skills: []string{"Go"}}, Requirements{
		RequiredSkills: []string{"Go"},
		MinGithubStars: 5,
	})

	if eval.GithubScore != 0 {
		t.Fatalf("expected zero github score without profile, got %v", eval.GithubScore)
	}
}
