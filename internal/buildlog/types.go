package buildlog

// Log pagination bounds. Requests outside the range are rejected rather
// than clamped, so callers learn about their mistake.
const (
	MinLimit     = 1
	MaxLimit     = 500
	DefaultLimit = 100
)

// LogEvent is one log line of a build.
type LogEvent struct {
	Timestamp int64
	Message   string
}

// --- UseCase Inputs ---

type GetLogsInput struct {
	BuildID   string
	Limit     int
	NextToken string
}

// --- UseCase Outputs ---

type GetLogsOutput struct {
	Events    []LogEvent
	NextToken string
}
