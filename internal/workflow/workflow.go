package workflow

import (
	"fmt"

	"talentpipe/internal/model"
)

// allowed maps each stage to the stages a candidate may move to next.
// Rejected can be re-entered from any stage and re-opened back into
// screening or interview; Hired is terminal.
var allowed = map[string][]string{
	model.StatusCVScreening: {model.StatusInterview, model.StatusRejected},
	model.StatusInterview:   {model.StatusOffer, model.StatusRejected},
	model.StatusOffer:       {model.StatusHired, model.StatusRejected},
	model.StatusRejected:    {model.StatusCVScreening, model.StatusInterview},
	model.StatusHired:       {},
}

// IsStatus reports whether s is one of the known pipeline stages.
func IsStatus(s string) bool {
	_, ok := allowed[s]
	return ok
}

// CanTransition reports whether a candidate may move from one stage to
// another. Setting the same stage again is always allowed so that
// re-running an evaluation does not fail the write.
func CanTransition(from, to string) bool {
	if !IsStatus(from) || !IsStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate returns a descriptive error when the transition is not allowed.
func Validate(from, to string) error {
	if !IsStatus(to) {
		return fmt.Errorf("unknown status %q", to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("cannot move candidate from %q to %q", from, to)
	}
	return nil
}
