package analyzer

import (
	"context"
	"fmt"
	"net/url"
)

const portfolioPath = "/portfolio"

// Portfolio is the scraped snapshot of a personal website.
type Portfolio struct {
	URL         string             `json:"url"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Skills      []string           `json:"skills"`
	Projects    []PortfolioProject `json:"projects"`
	Experience  []PortfolioEntry   `json:"experience"`
	Education   []PortfolioEntry   `json:"education"`
	SocialLinks map[string]string  `json:"social_links"`
}

type PortfolioProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

// PortfolioEntry is a single experience or education item.
type PortfolioEntry struct {
	Title       string `json:"title"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Company     string `json:"company"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (c *Client) GetPortfolio(ctx context.Context, siteURL string) (*Portfolio, error) {
	apiURL := fmt.Sprintf("%s%s", c.APIURL, portfolioPath)

	q := url.Values{}
	q.Set("url", siteURL)

	var raw map[string]any
	if err := c.getJSON(ctx, apiURL, q, &raw); err != nil {
		return nil, err
	}

	var portfolio Portfolio
	if err := decodeLoose(raw, &portfolio); err != nil {
		return nil, err
	}

	if portfolio.URL == "" {
		portfolio.URL = siteURL
	}

	return &portfolio, nil
}
