package picker

import "github.com/s0up4200/magroulette/archive"

// OutcomeKind classifies a fetch attempt
type OutcomeKind int

const (
	// OutcomeEmpty means the search matched nothing usable
	OutcomeEmpty OutcomeKind = iota
	// OutcomeFound means a magazine was selected
	OutcomeFound
	// OutcomeFailed means the search API could not be used
	OutcomeFailed
)

// String returns the string representation of an OutcomeKind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Outcome is the result of one fetch attempt. Failures are carried in Err
// instead of being returned, so callers treat "no result" as a normal case.
type Outcome struct {
	Kind     OutcomeKind
	Magazine archive.Magazine
	Total    int
	Page     int
	Err      error
}

// Found reports whether a magazine was selected
func (o Outcome) Found() bool {
	return o.Kind == OutcomeFound
}
