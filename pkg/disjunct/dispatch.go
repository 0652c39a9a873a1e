package disjunct

import (
	"fmt"

	"github.com/funvibe/disjunct/pkg/typedesc"
)

// ResultShape describes the static shape of a dispatch result, computed from
// the declared handler signatures alone: Unified when every handler declares
// the same return type (the result is the raw value), Wrapped otherwise (the
// result is a new Disjunct over the distinct return types).
type ResultShape interface {
	String() string
	resultShape()
}

// Unified is the shape when all handlers declare the same return type.
type Unified struct {
	Type typedesc.Descriptor
}

func (u Unified) String() string { return u.Type.String() }
func (Unified) resultShape()     {}

// Wrapped is the shape when handler return types differ; Type is the union
// over the distinct return types.
type Wrapped struct {
	Type typedesc.Descriptor
}

func (w Wrapped) String() string { return fmt.Sprintf("Disjunct<%v>", w.Type) }
func (Wrapped) resultShape()     {}

// Match is an ordered handler list with its precomputed result shape.
// The shape depends only on the declared return types - including those of
// handlers that never fire - so it is fixed before any dispatch runs.
// A Match is immutable and reusable across dispatch calls.
type Match struct {
	handlers []CaseHandler
	shape    ResultShape
}

// Cases builds a Match from handlers in declaration order.
func Cases(handlers ...CaseHandler) Match {
	return Match{handlers: handlers, shape: shapeOf(handlers)}
}

func shapeOf(handlers []CaseHandler) ResultShape {
	if len(handlers) == 0 {
		return nil
	}
	returns := make([]typedesc.Descriptor, len(handlers))
	for i, h := range handlers {
		returns[i] = h.returns
	}
	for _, r := range returns[1:] {
		if !r.Equal(returns[0]) {
			return Wrapped{Type: typedesc.UnionOf(returns...)}
		}
	}
	return Unified{Type: returns[0]}
}

// Shape returns the precomputed result shape, or nil for an empty Match.
func (m Match) Shape() ResultShape { return m.shape }

// Dispatch proves that the handlers cover d's declared union, selects the
// first handler (in declaration order) whose accepted type is a supertype of
// d's actual type, invokes it, and shapes the result per Shape.
//
// The coverage proof runs before any handler: every member of the declared
// union must be assignable to at least one handler's accepted type, or
// Dispatch fails with *IncompleteCoverageError regardless of the actual
// runtime value. *NoMatchingHandlerError indicates a defect in descriptor
// comparison, not a legitimate caller error; it should be unreachable when
// the coverage proof is sound.
func (m Match) Dispatch(d *Disjunct) (any, error) {
	var missing []typedesc.Descriptor
	for _, member := range d.DeclaredType().Members() {
		covered := false
		for _, h := range m.handlers {
			if member.AssignableTo(h.accepts) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, member)
		}
	}
	if len(missing) > 0 || len(m.handlers) == 0 {
		return nil, NewIncompleteCoverageError(d.DeclaredType(), missing)
	}

	// Linear scan, first match wins: declaration order is the semantic
	// tie-break for overlapping handler domains.
	for _, h := range m.handlers {
		if !d.ActualType().AssignableTo(h.accepts) {
			continue
		}
		out := h.invoke(d.Value())
		if w, ok := m.shape.(Wrapped); ok {
			return &Disjunct{value: out, actual: h.returns, declared: w.Type}, nil
		}
		return out, nil
	}
	return nil, NewNoMatchingHandlerError(d.ActualType())
}

// When dispatches d against handlers, equivalent to
// Cases(handlers...).Dispatch(d).
func (d *Disjunct) When(handlers ...CaseHandler) (any, error) {
	return Cases(handlers...).Dispatch(d)
}
