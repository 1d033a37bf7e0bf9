package codebuild

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client is the build service HTTP client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new build service client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the service URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// CreateProject provisions a named build definition.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects", input, &project); err != nil {
		return Project{}, fmt.Errorf("failed to create build project: %w", err)
	}
	return project, nil
}

// StartBuild starts a build for (projectName, branch). The branch is
// encoded as a full ref because the service resolves bare names against
// tags first.
func (c *Client) StartBuild(ctx context.Context, projectName, branch string) (Build, error) {
	reqBody := startBuildRequest{
		ProjectName:   projectName,
		SourceVersion: "refs/heads/" + branch,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return Build{}, fmt.Errorf("failed to marshal start build request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/builds", bytes.NewBuffer(body))
	if err != nil {
		return Build{}, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Build{}, fmt.Errorf("failed to call build service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Build{}, &StartBuildError{
			ProjectName: projectName,
			StatusCode:  resp.StatusCode,
			Message:     readAPIError(resp.Body),
		}
	}

	var build Build
	if err := json.NewDecoder(resp.Body).Decode(&build); err != nil {
		return Build{}, fmt.Errorf("failed to decode start build response: %w", err)
	}
	return build, nil
}

// GetBuildLogs returns one page of log events for a build.
func (c *Client) GetBuildLogs(ctx context.Context, buildID string, opt GetLogsOptions) (LogPage, error) {
	q := url.Values{}
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}
	if opt.NextToken != "" {
		q.Set("nextToken", opt.NextToken)
	}

	path := fmt.Sprintf("/builds/%s/logs", url.PathEscape(buildID))
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page LogPage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return LogPage{}, fmt.Errorf("failed to get build logs: %w", err)
	}
	return page, nil
}

// DeleteProject removes a build definition. A 404 from the service is
// treated as already deleted.
func (c *Client) DeleteProject(ctx context.Context, projectName string) error {
	path := "/projects/" + url.PathEscape(projectName)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call build service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("build service error %d: %s", resp.StatusCode, readAPIError(resp.Body))
	}
	return nil
}

// doJSON performs a JSON request/response round trip against the service.
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, result any) error {
	var bodyReader io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call build service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("build service error %d: %s", resp.StatusCode, readAPIError(resp.Body))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// readAPIError extracts the service error message, falling back to the
// raw body when it is not the expected JSON shape.
func readAPIError(r io.Reader) string {
	raw, _ := io.ReadAll(r)
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return string(raw)
}
