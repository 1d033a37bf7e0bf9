package dispatch

// Skip reasons reported in TriggerResult.
const (
	SkipBranchMismatch    = "branch mismatch"
	SkipNoBuildDefinition = "missing build definition"
)

// TriggerResult is the outcome of one project's evaluation of a push.
// Exactly one of Triggered/SkipReason/Err is meaningful: a triggered
// build has Triggered true, a skip carries the reason, a failed trigger
// carries the error.
type TriggerResult struct {
	ProjectID  string
	Triggered  bool
	SkipReason string
	Err        error
}

// HandlePushOutput aggregates the per-project outcomes of one push.
type HandlePushOutput struct {
	MatchedProjects int
	Results         []TriggerResult
}

// TriggeredCount returns how many projects had a build started.
func (o HandlePushOutput) TriggeredCount() int {
	n := 0
	for _, r := range o.Results {
		if r.Triggered {
			n++
		}
	}
	return n
}
