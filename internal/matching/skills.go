package matching

import (
	"sort"
	"strings"
)

// skillAliases maps lowercase spellings to their canonical names so "node"
// and "Node.js" count as the same skill.
var skillAliases = map[string]string{
	// Programming languages
	"python":     "Python",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"java":       "Java",
	"c++":        "C++",
	"c#":         "C#",
	"ruby":       "Ruby",
	"php":        "PHP",
	"go":         "Go",
	"golang":     "Go",
	"rust":       "Rust",
	"swift":      "Swift",
	"kotlin":     "Kotlin",

	// Web technologies
	"html":    "HTML",
	"css":     "CSS",
	"react":   "React",
	"angular": "Angular",
	"vue":     "Vue.js",
	"vue.js":  "Vue.js",
	"node":    "Node.js",
	"node.js": "Node.js",
	"express": "Express.js",
	"django":  "Django",
	"flask":   "Flask",
	"spring":  "Spring",
	"laravel": "Laravel",

	// Databases
	"mysql":         "MySQL",
	"postgresql":    "PostgreSQL",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",

	// Cloud and devops
	"aws":        "AWS",
	"azure":      "Azure",
	"gcp":        "GCP",
	"docker":     "Docker",
	"kubernetes": "Kubernetes",
	"jenkins":    "Jenkins",
	"git":        "Git",
	"ci/cd":      "CI/CD",

	// Other
	"agile":   "Agile",
	"scrum":   "Scrum",
	"devops":  "DevOps",
	"rest":    "REST",
	"graphql": "GraphQL",
	"api":     "API",
}

// NormalizeSkills maps skills to canonical names, drops blanks and
// duplicates, and returns a sorted list.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}

		if canonical, ok := skillAliases[strings.ToLower(skill)]; ok {
			skill = canonical
		}

		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}

	sort.Strings(out)
	return out
}

// MergeSkills combines skill lists from several sources into one normalized
// set.
func MergeSkills(lists ...[]string) []string {
	var all []string
	for _, list := range lists {
		all = append(all, list...)
	}
	return NormalizeSkills(all)
}
