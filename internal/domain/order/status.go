package order

// SubmissionStatus represents the state of the checkout submission machine
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "IDLE"
	StatusValidating SubmissionStatus = "VALIDATING"
	StatusSubmitting SubmissionStatus = "SUBMITTING"
	StatusSucceeded  SubmissionStatus = "SUCCEEDED"
	StatusFailed     SubmissionStatus = "FAILED"
)

// IsValid checks if the status is a valid SubmissionStatus
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusValidating, StatusSubmitting, StatusSucceeded, StatusFailed:
		return true
	}
	return false
}

// String returns the string representation of SubmissionStatus
func (s SubmissionStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SubmissionStatus) CanTransitionTo(target SubmissionStatus) bool {
	switch s {
	case StatusIdle:
		return target == StatusValidating
	case StatusValidating:
		// guard failure returns to Idle, success proceeds to Submitting
		return target == StatusSubmitting || target == StatusIdle
	case StatusSubmitting:
		return target == StatusSucceeded || target == StatusFailed
	case StatusSucceeded:
		// a new order starts from scratch
		return target == StatusIdle
	case StatusFailed:
		// retry re-enters validation; the shopper may also walk away
		return target == StatusValidating || target == StatusIdle
	}
	return false
}
