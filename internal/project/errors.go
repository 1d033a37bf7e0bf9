package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrRepoAlreadyLinked = errors.New("repository branch already linked to a project")
	ErrInvalidRepoName   = errors.New("invalid repository name")
)
