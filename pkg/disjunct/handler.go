package disjunct

import (
	"reflect"

	"github.com/funvibe/disjunct/pkg/typedesc"
)

// CaseHandler pairs an accepted input type with a function and the declared
// return type of that function. Handlers are inert until dispatched; no
// validation happens at declaration time, and overlapping handlers are
// permitted (dispatch order resolves overlap, first match wins).
type CaseHandler struct {
	accepts typedesc.Descriptor
	returns typedesc.Descriptor
	invoke  func(any) any
}

// On builds a case handler for accepted type T. Both the accepted and the
// return descriptor are captured from the function signature.
func On[T, R any](fn func(T) R) CaseHandler {
	return CaseHandler{
		accepts: typedesc.Of[T](),
		returns: typedesc.Of[R](),
		invoke: func(v any) any {
			// Dispatch has already proven assignability to T.
			if t, ok := v.(T); ok {
				return fn(t)
			}
			if v == nil {
				// A nil payload flows into an interface parameter as a nil
				// of that interface.
				var zero T
				return fn(zero)
			}
			// Assignable but not identical: a defined type over an unnamed
			// underlying type (type scores map[string]int against
			// On[map[string]int]) fails the assertion even though Go assigns
			// it freely. Materialize the value as T.
			rv := reflect.New(reflect.TypeOf((*T)(nil)).Elem()).Elem()
			rv.Set(reflect.ValueOf(v))
			return fn(rv.Interface().(T))
		},
	}
}

// AcceptedType returns the descriptor of the handler's input type.
func (h CaseHandler) AcceptedType() typedesc.Descriptor { return h.accepts }

// ReturnType returns the descriptor of the handler's declared return type.
func (h CaseHandler) ReturnType() typedesc.Descriptor { return h.returns }
