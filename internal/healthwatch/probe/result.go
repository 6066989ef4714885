// Package probe issues periodic synthetic calls against the authentication
// service and classifies the outcome of every call.
package probe

import "time"

// Outcome classifies a single probe. The categories are mutually exclusive.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeTimeout
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result is the record of one synthetic call. Results are immutable once
// created; the reporter owns them append-only.
type Result struct {
	Timestamp time.Time
	Operation string
	Outcome   Outcome
	Reason    string
	Latency   time.Duration
}
