package analyzer

import (
	"context"
	"fmt"
)

const resumeUploadPath = "/resume/upload"

// resumeFileField is the multipart form field the service reads the file from.
const resumeFileField = "file"

// ParsedResume is what the analyzer extracted from an uploaded resume.
type ParsedResume struct {
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Skills     []string         `json:"skills"`
	Education  []PortfolioEntry `json:"education"`
	Experience []PortfolioEntry `json:"experience"`
	RawText    string           `json:"raw_text"`
}

// UploadResume sends the resume file for server-side parsing.
func (c *Client) UploadResume(ctx context.Context, filename string, content []byte) (*ParsedResume, error) {
	apiURL := fmt.Sprintf("%s%s", c.APIURL, resumeUploadPath)

	var raw map[string]any
	if err := c.postFile(ctx, apiURL, resumeFileField, filename, content, &raw); err != nil {
		return nil, err
	}

	var parsed ParsedResume
	if err := decodeLoose(raw, &parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}
