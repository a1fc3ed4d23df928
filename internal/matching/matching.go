// Package matching scores a gathered candidate profile against job
// requirements. All functions are pure; notification and persistence stay at
// the caller's boundary.
package matching

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/candidate-scout/internal/analyzer"
)

// Requirements describes the position the candidate is evaluated against.
type Requirements struct {
	RequiredSkills     []string `mapstructure:"required-skills"`
	PreferredSkills    []string `mapstructure:"preferred-skills"`
	MinExperienceYears int      `mapstructure:"min-experience-years"`
	MinProjects        int      `mapstructure:"min-projects"`
	MinGithubStars     int      `mapstructure:"min-github-stars"`
	MinGithubRepos     int      `mapstructure:"min-github-repos"`
	RequiredEducation  string   `mapstructure:"required-education"`
}

// Profile is the evaluation input assembled from whichever sources succeeded.
type Profile struct {
	Skills     []string
	Projects   []analyzer.PortfolioProject
	Experience []analyzer.PortfolioEntry
	Education  []analyzer.PortfolioEntry
	Github     *analyzer.GithubProfile
}

// SkillMatch breaks down how the candidate's skills line up with the
// required and preferred lists.
type SkillMatch struct {
	Score             float64  `json:"match_score"`
	RequiredScore     float64  `json:"required_match_score"`
	PreferredScore    float64  `json:"preferred_match_score"`
	MatchingRequired  []string `json:"matching_required_skills"`
	MatchingPreferred []string `json:"matching_preferred_skills"`
	MissingRequired   []string `json:"missing_required_skills"`
}

// Evaluation is the complete scoring result. Scores are percentages.
type Evaluation struct {
	OverallScore    float64    `json:"overall_score"`
	Skills          SkillMatch `json:"skills"`
	ExperienceScore float64    `json:"experience_score"`
	ProjectScore    float64    `json:"project_score"`
	GithubScore     float64    `json:"github_score"`
	EducationScore  float64    `json:"education_score"`
	Qualified       bool       `json:"is_qualified"`
}

// Overall weights: skills dominate, education matters least.
const (
	weightSkills     = 0.35
	weightExperience = 0.25
	weightProjects   = 0.20
	weightGithub     = 0.15
	weightEducation  = 0.05
)

// Qualification thresholds, in percent.
const (
	minRequiredSkillsScore = 70
	minExperienceScore     = 70
	minProjectScore        = 70
	minOverallScore        = 75
)

// Evaluate scores the profile against the requirements.
func Evaluate(p Profile, req Requirements) Evaluation {
	skills := MatchSkills(p.Skills, req.RequiredSkills, req.PreferredSkills)
	experience := experienceScore(p.Experience, req.MinExperienceYears)
	projects := projectScore(p.Projects, req.MinProjects)
	education := educationScore(p.Education, req.RequiredEducation)

	github := 0.0
	if p.Github != nil {
		github = githubScore(p.Github, req.MinGithubStars, req.MinGithubRepos)
	}

	overall := round2(skills.Score*weightSkills +
		experience*weightExperience +
		projects*weightProjects +
		github*weightGithub +
		education*weightEducation)

	qualified := skills.RequiredScore >= minRequiredSkillsScore &&
		experience >= minExperienceScore &&
		projects >= minProjectScore &&
		overall >= minOverallScore

	return Evaluation{
		OverallScore:    overall,
		Skills:          skills,
		ExperienceScore: experience,
		ProjectScore:    projects,
		GithubScore:     github,
		EducationScore:  education,
		Qualified:       qualified,
	}
}

// MatchSkills compares normalized candidate skills against the required and
// preferred lists. The final score weighs required skills at 70%.
func MatchSkills(candidateSkills, required, preferred []string) SkillMatch {
	candidate := NormalizeSkills(candidateSkills)
	required = NormalizeSkills(required)
	preferred = NormalizeSkills(preferred)

	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[s] = struct{}{}
	}

	matchingRequired := intersect(required, have)
	matchingPreferred := intersect(preferred, have)

	missingRequired := make([]string, 0)
	for _, s := range required {
		if _, ok := have[s]; !ok {
			missingRequired = append(missingRequired, s)
		}
	}

	requiredScore := 0.0
	if len(required) > 0 {
		requiredScore = float64(len(matchingRequired)) / float64(len(required)) * 100
	}

	preferredScore := 0.0
	if len(preferred) > 0 {
		preferredScore = float64(len(matchingPreferred)) / float64(len(preferred)) * 100
	}

	return SkillMatch{
		Score:             round2(requiredScore*0.7 + preferredScore*0.3),
		RequiredScore:     round2(requiredScore),
		PreferredScore:    round2(preferredScore),
		MatchingRequired:  matchingRequired,
		MatchingPreferred: matchingPreferred,
		MissingRequired:   missingRequired,
	}
}

func intersect(wanted []string, have map[string]struct{}) []string {
	out := make([]string, 0)
	for _, s := range wanted {
		if _, ok := have[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// experienceScore sums years from entries whose Date looks like "2020-2022"
// or "2020-Present" and scales against the required minimum.
func experienceScore(entries []analyzer.PortfolioEntry, minYears int) float64 {
	if minYears <= 0 {
		return 100
	}

	totalYears := 0
	for _, entry := range entries {
		parts := strings.SplitN(entry.Date, "-", 2)
		if len(parts) != 2 {
			continue
		}

		start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}

		end := time.Now().Year()
		if y, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			end = y
		}

		if end >= start {
			totalYears += end - start
		}
	}

	return round2(math.Min(100, float64(totalYears)/float64(minYears)*100))
}

// projectScore blends quantity against the minimum with the share of
// projects that carry both a description and a technology list.
func projectScore(projects []analyzer.PortfolioProject, minProjects int) float64 {
	if len(projects) == 0 {
		return 0
	}

	quality := 0
	for _, p := range projects {
		if p.Description != "" && len(p.Technologies) > 0 {
			quality++
		}
	}

	quantityScore := 100.0
	if minProjects > 0 {
		quantityScore = math.Min(100, float64(len(projects))/float64(minProjects)*100)
	}
	qualityScore := float64(quality) / float64(len(projects)) * 100

	return round2(quantityScore*0.6 + qualityScore*0.4)
}

// githubScore weighs stars, repository count and recent activity.
func githubScore(profile *analyzer.GithubProfile, minStars, minRepos int) float64 {
	starsScore := 100.0
	if minStars > 0 {
		starsScore = math.Min(100, float64(profile.TotalStars)/float64(minStars)*100)
	}

	reposScore := 100.0
	if minRepos > 0 {
		reposScore = math.Min(100, float64(profile.PublicRepos)/float64(minRepos)*100)
	}

	return round2(starsScore*0.4 + reposScore*0.3 + profile.ActivityScore*0.3)
}

var educationLevels = map[string]int{
	"high school": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
}

// educationScore compares the highest degree found in the entries with the
// required level. No requirement means a full score.
func educationScore(entries []analyzer.PortfolioEntry, required string) float64 {
	required = strings.ToLower(strings.TrimSpace(required))
	if required == "" {
		return 100
	}

	requiredLevel, ok := educationLevels[required]
	if !ok {
		return 100
	}

	highest := 0
	for _, entry := range entries {
		degree := strings.ToLower(entry.Degree)
		if degree == "" {
			degree = strings.ToLower(entry.Title)
		}
		for level, value := range educationLevels {
			if strings.Contains(degree, level) && value > highest {
				highest = value
			}
		}
	}

	return round2(math.Min(100, float64(highest)/float64(requiredLevel)*100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
