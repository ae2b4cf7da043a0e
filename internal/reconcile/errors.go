package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMultiplicity is the sentinel matched by MultiplicityError.
var ErrMultiplicity = errors.New("reconcile: multiplicity violation")

// MultiplicityError reports a join key that resolved to more than one
// distinct fact. It points at a parsing ambiguity in the logs.
type MultiplicityError struct {
	Fact   string
	Round  int
	Player string
	Values []string
}

func (e *MultiplicityError) Error() string {
	return fmt.Sprintf("reconcile: round %d player %q has conflicting %s facts: %s",
		e.Round, e.Player, e.Fact, strings.Join(e.Values, ", "))
}

func (e *MultiplicityError) Unwrap() error { return ErrMultiplicity }
