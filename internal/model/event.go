package model

import "strings"

// PushEvent is the parsed form of a GitHub push payload. Immutable once
// parsed.
type PushEvent struct {
	RepositoryFullName string
	InstallationID     int64
	Ref                string
	PushedBranch       string
	CommitSHA          string
	CommitMessage      string
	PusherName         string
}

// Owner returns the owner half of RepositoryFullName, or "" when the
// full name is malformed.
func (e PushEvent) Owner() string {
	owner, repo, found := strings.Cut(e.RepositoryFullName, "/")
	if !found || owner == "" || repo == "" {
		return ""
	}
	return owner
}

// RepoName returns the repository half of RepositoryFullName, or "" when
// the full name is malformed.
func (e PushEvent) RepoName() string {
	owner, repo, found := strings.Cut(e.RepositoryFullName, "/")
	if !found || owner == "" || repo == "" {
		return ""
	}
	return repo
}
