package codebuild

import "time"

// CreateProjectInput holds the parameters for provisioning a build definition.
type CreateProjectInput struct {
	Name          string `json:"name"`
	RepositoryURL string `json:"repositoryUrl"`
	SourceBranch  string `json:"sourceBranch"`
	BuildSpec     string `json:"buildspec,omitempty"`
}

// Project is a provisioned build definition on the build service.
type Project struct {
	Name      string    `json:"name"`
	ARN       string    `json:"arn,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Build is one started build.
type Build struct {
	ID            string `json:"id"`
	ProjectName   string `json:"projectName"`
	SourceVersion string `json:"sourceVersion"`
	Status        string `json:"buildStatus"`
}

// GetLogsOptions holds pagination parameters for log retrieval.
type GetLogsOptions struct {
	Limit     int
	NextToken string
}

// LogEvent is one log line from a build.
type LogEvent struct {
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// LogPage is one page of build log events.
type LogPage struct {
	Events    []LogEvent `json:"events"`
	NextToken string     `json:"nextToken,omitempty"`
}

type startBuildRequest struct {
	ProjectName   string `json:"projectName"`
	SourceVersion string `json:"sourceVersion"`
}

type apiError struct {
	Message string `json:"message"`
}
