package constants

// RunStatus is the canonical status for archived extraction runs.
type RunStatus string

// Stable values (store these exact strings in the archive).
const (
	RunStatusQAOK   RunStatus = "QA_OK"  // answers extracted, no ground truth supplied
	RunStatusScored RunStatus = "SCORED" // recall computed against ground truth
)
