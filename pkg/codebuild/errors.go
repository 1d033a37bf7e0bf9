package codebuild

import "fmt"

// StartBuildError carries the upstream status and message returned when
// the build service rejects a start-build request (bad project name,
// outage, throttling). Callers treat it as terminal for that one build.
type StartBuildError struct {
	ProjectName string
	StatusCode  int
	Message     string
}

func (e *StartBuildError) Error() string {
	return fmt.Sprintf("start build %q failed with status %d: %s", e.ProjectName, e.StatusCode, e.Message)
}
