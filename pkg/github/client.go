package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the GitHub REST API client.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
}

// NewClient creates a new GitHub client with the given API token.
func NewClient(apiURL, token string) *Client {
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	return &Client{
		apiURL:     apiURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the GitHub API URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// GetInstallation fetches metadata for an App installation.
func (c *Client) GetInstallation(ctx context.Context, installationID int64) (Installation, error) {
	path := fmt.Sprintf("/app/installations/%d", installationID)

	var installation Installation
	if err := c.get(ctx, path, &installation); err != nil {
		return Installation{}, fmt.Errorf("failed to get installation %d: %w", installationID, err)
	}
	return installation, nil
}

// ListInstallationRepositories lists the repositories an installation
// grants access to.
func (c *Client) ListInstallationRepositories(ctx context.Context, installationID int64) ([]Repository, error) {
	path := fmt.Sprintf("/user/installations/%d/repositories", installationID)

	var result listRepositoriesResponse
	if err := c.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to list installation repositories: %w", err)
	}
	return result.Repositories, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return fmt.Errorf("github API error %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("github API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode github response: %w", err)
	}
	return nil
}
