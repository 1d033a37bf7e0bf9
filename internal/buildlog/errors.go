package buildlog

import "errors"

var (
	ErrBuildIDRequired = errors.New("build id is required")
	ErrInvalidLimit    = errors.New("limit must be between 1 and 500")
)
