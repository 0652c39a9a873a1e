package disjunct

import (
	"fmt"
	"strings"

	"github.com/funvibe/disjunct/pkg/typedesc"
)

// TypeMismatchError indicates a value whose runtime type is outside the
// declared union at construction time.
type TypeMismatchError struct {
	Actual   typedesc.Descriptor
	Declared typedesc.Descriptor
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %v is not assignable to %v", e.Actual, e.Declared)
}

func NewTypeMismatchError(actual, declared typedesc.Descriptor) *TypeMismatchError {
	return &TypeMismatchError{Actual: actual, Declared: declared}
}

// IncompleteCoverageError indicates a handler set that does not cover every
// member of the declared union. It is raised before any handler runs.
type IncompleteCoverageError struct {
	Declared typedesc.Descriptor
	Missing  []typedesc.Descriptor
}

func (e *IncompleteCoverageError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("incomplete coverage of %v: no handlers declared", e.Declared)
	}
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = m.String()
	}
	return fmt.Sprintf("incomplete coverage of %v: no handler accepts %s", e.Declared, strings.Join(names, ", "))
}

func NewIncompleteCoverageError(declared typedesc.Descriptor, missing []typedesc.Descriptor) *IncompleteCoverageError {
	return &IncompleteCoverageError{Declared: declared, Missing: missing}
}

// NoMatchingHandlerError indicates that coverage was proven but no handler
// matched the actual runtime type - an internal-consistency defect in
// descriptor comparison rather than a caller error.
type NoMatchingHandlerError struct {
	Actual typedesc.Descriptor
}

func (e *NoMatchingHandlerError) Error() string {
	return fmt.Sprintf("no handler matched %v despite proven coverage", e.Actual)
}

func NewNoMatchingHandlerError(actual typedesc.Descriptor) *NoMatchingHandlerError {
	return &NoMatchingHandlerError{Actual: actual}
}
