package shacl

import (
	"errors"
	"fmt"
)

// Common shape-pipeline errors.
var (
	// ErrNoShapes is returned when a profile's entire shape set failed to
	// load. Callers must surface it as a non-conforming report, never as
	// silent conformance.
	ErrNoShapes = errors.New("no SHACL shapes loaded")
)

// PatternError reports a sh:pattern literal the host regex engine could not
// compile, the known engine-incompatibility class of failure. It carries
// the offending pattern so the synthetic report can name the cause.
type PatternError struct {
	Shape   string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("shape %s: pattern %q not supported by the regex engine: %v", e.Shape, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
