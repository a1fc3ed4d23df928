package analyzer

import (
	"context"
	"fmt"
	"net/url"
)

const instagramPath = "/instagram"

// InstagramProfile is the scraped public profile of an Instagram account.
type InstagramProfile struct {
	Username      string `json:"username"`
	ProfileURL    string `json:"profile_url"`
	Bio           string `json:"bio"`
	ProfilePicURL string `json:"profile_pic_url"`
	Followers     string `json:"followers"`
	Following     string `json:"following"`
}

func (c *Client) GetInstagramProfile(ctx context.Context, handle string) (*InstagramProfile, error) {
	apiURL := fmt.Sprintf("%s%s/%s", c.APIURL, instagramPath, url.PathEscape(handle))

	var raw map[string]any
	if err := c.getJSON(ctx, apiURL, nil, &raw); err != nil {
		return nil, err
	}

	var profile InstagramProfile
	if err := decodeLoose(raw, &profile); err != nil {
		return nil, err
	}

	if profile.Username == "" {
		profile.Username = handle
	}

	return &profile, nil
}
