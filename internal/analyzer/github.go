package analyzer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

const githubPath = "/github"

// GithubProfile holds what the analyzer extracted from the GitHub API. Only
// name, avatar and profile URL feed the candidate record; the remaining
// fields are inputs for scoring.
type GithubProfile struct {
	Name          string         `json:"name"`
	Bio           string         `json:"bio"`
	Location      string         `json:"location"`
	AvatarURL     string         `json:"avatar_url"`
	PublicRepos   int            `json:"public_repos"`
	Followers     int            `json:"followers"`
	Following     int            `json:"following"`
	CreatedAt     string         `json:"created_at"`
	Languages     map[string]int `json:"languages"`
	TotalStars    int            `json:"total_stars"`
	ActivityScore float64        `json:"activity_score"`

	// ProfileURL is filled from html_url, url or profile_url, whichever the
	// service supplied first.
	ProfileURL string
}

func (c *Client) GetGithubProfile(ctx context.Context, username string) (*GithubProfile, error) {
	apiURL := fmt.Sprintf("%s%s/%s", c.APIURL, githubPath, url.PathEscape(username))

	var raw map[string]any
	if err := c.getJSON(ctx, apiURL, nil, &raw); err != nil {
		return nil, err
	}

	var profile GithubProfile
	if err := decodeLoose(raw, &profile); err != nil {
		return nil, err
	}

	for _, key := range []string{"html_url", "url", "profile_url"} {
		if s, ok := raw[key].(string); ok && s != "" {
			profile.ProfileURL = s
			break
		}
	}

	return &profile, nil
}

// decodeLoose converts a generic JSON object into a typed struct using the
// struct's json tags. The analyzer responses are scraped payloads, so unknown
// and missing keys are both expected.
func decodeLoose(raw map[string]any, target any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}
