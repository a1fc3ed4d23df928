package resume

import (
	"regexp"
	"sort"
)

// commonSkills is the vocabulary scanned for in resume text. Matching is
// word-boundary based and case-insensitive.
var commonSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "PHP",
	"Go", "HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Django",
	"Flask", "Spring", "Express", "MongoDB", "MySQL", "PostgreSQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "Linux",
	"Agile", "Scrum", "DevOps", "CI/CD", "REST", "GraphQL", "API",
}

// ExtractSkills scans the text for known technical skills and returns the
// canonical names of those found, sorted and de-duplicated.
func ExtractSkills(text string) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{})

	for _, skill := range commonSkills {
		if !skillPattern(skill).MatchString(text) {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		found = append(found, skill)
	}

	sort.Strings(found)
	return found
}

// skillPattern builds a word-bounded pattern for the skill. Names ending in
// a symbol (C++, C#) get an explicit boundary since \b does not apply there.
func skillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)

	tail := `\b`
	last := skill[len(skill)-1]
	if !isWordByte(last) {
		tail = `(?:[^\w]|$)`
	}

	return regexp.MustCompile(`(?i)\b` + quoted + tail)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
