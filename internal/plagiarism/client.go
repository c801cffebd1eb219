package plagiarism

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the Copyleaks-style scan endpoint. BaseURL is
// overridable so tests can point it at a local server.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type scanRequest struct {
	Text       string         `json:"text"`
	Properties scanProperties `json:"properties"`
}

type scanProperties struct {
	Scanning scanScope `json:"scanning"`
}

type scanScope struct {
	InternetSearch bool `json:"internetSearch"`
	Repositories   bool `json:"repositories"`
}

type scanResponse struct {
	Score float64 `json:"score"`
}

// Check submits the text for scanning and returns the plagiarism score
// as a percentage.
func (c *Client) Check(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(scanRequest{
		Text: text,
		Properties: scanProperties{
			Scanning: scanScope{InternetSearch: true, Repositories: true},
		},
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/businesses/check", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("plagiarism api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("plagiarism api: unexpected status %d", resp.StatusCode)
	}

	var out scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("plagiarism api: decode response: %w", err)
	}
	return out.Score, nil
}
