package candidate

// Default values used until a source overwrites them.
const (
	DefaultID        = "candidate-1"
	DefaultName      = "Candidate"
	DefaultTitle     = "Unknown"
	DefaultLocation  = "Unknown"
	DefaultAvatarURL = "https://via.placeholder.com/150"

	defaultExperienceSummary = "N/A"
)

// Record is the aggregated candidate profile handed to the embedding caller.
// Every field except ID and the avatar default may still hold its placeholder
// value after a search, depending on which sources succeeded.
type Record struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Location          string   `json:"location"`
	GithubProfileURL  string   `json:"github_profile_url,omitempty"`
	PortfolioURL      string   `json:"portfolio_url,omitempty"`
	InstagramHandle   string   `json:"instagram_handle,omitempty"`
	AvatarURL         string   `json:"avatar_url"`
	Skills            []string `json:"skills"`
	ExperienceSummary string   `json:"experience_summary"`
	MatchScore        float64  `json:"match_score"`
}

// NewRecord returns a fresh record with placeholder values.
func NewRecord() *Record {
	return &Record{
		ID:                DefaultID,
		Name:              DefaultName,
		Title:             DefaultTitle,
		Location:          DefaultLocation,
		AvatarURL:         DefaultAvatarURL,
		Skills:            []string{},
		ExperienceSummary: defaultExperienceSummary,
	}
}

// HasCustomAvatar reports whether a source already replaced the placeholder
// avatar. Sources later in the run must not overwrite an earlier value.
func (r *Record) HasCustomAvatar() bool {
	return r.AvatarURL != "" && r.AvatarURL != DefaultAvatarURL
}
