// Package disjunct provides a runtime-tagged disjunction value: a value known
// to be exactly one of several declared types, dispatched exhaustively
// against an ordered list of case handlers.
package disjunct

import (
	"fmt"

	"github.com/funvibe/disjunct/pkg/typedesc"
)

// Disjunct holds one value together with the descriptor of its actual runtime
// type and the declared union of types it is permitted to hold.
// The actual type is always assignable to the declared type.
// A Disjunct is never mutated after construction.
type Disjunct struct {
	value    any
	actual   typedesc.Descriptor
	declared typedesc.Descriptor
}

// New wraps value in a disjunct declared over the given type.
// The stored actual descriptor is the value's own runtime type, never the
// declared type. Fails with *TypeMismatchError if the value's type is not
// assignable to declared.
func New(value any, declared typedesc.Descriptor) (*Disjunct, error) {
	actual := typedesc.ValueOf(value)
	if declared == nil || !actual.AssignableTo(declared) {
		return nil, NewTypeMismatchError(actual, declared)
	}
	return &Disjunct{value: value, actual: actual, declared: declared}, nil
}

// Lift wraps value in a degenerate disjunct whose declared type is the
// value's own runtime type. It cannot fail.
func Lift(value any) *Disjunct {
	actual := typedesc.ValueOf(value)
	return &Disjunct{value: value, actual: actual, declared: actual}
}

// Value returns the wrapped payload.
func (d *Disjunct) Value() any { return d.value }

// ActualType returns the descriptor of the payload's runtime type.
func (d *Disjunct) ActualType() typedesc.Descriptor { return d.actual }

// DeclaredType returns the declared union descriptor.
func (d *Disjunct) DeclaredType() typedesc.Descriptor { return d.declared }

func (d *Disjunct) String() string {
	return fmt.Sprintf("%v :: %v (of %v)", d.value, d.actual, d.declared)
}

// Decl is the first stage of staged construction: the declared union is
// fixed, values are supplied later.
type Decl struct {
	declared typedesc.Descriptor
}

// Declare fixes a declared union over the given member descriptors.
func Declare(members ...typedesc.Descriptor) Decl {
	return Decl{declared: typedesc.UnionOf(members...)}
}

// Of2 declares a union over two types, Of3 over three, Of4 over four.
func Of2[A, B any]() Decl {
	return Declare(typedesc.Of[A](), typedesc.Of[B]())
}

func Of3[A, B, C any]() Decl {
	return Declare(typedesc.Of[A](), typedesc.Of[B](), typedesc.Of[C]())
}

func Of4[A, B, C, D any]() Decl {
	return Declare(typedesc.Of[A](), typedesc.Of[B](), typedesc.Of[C](), typedesc.Of[D]())
}

// Type returns the declared union descriptor.
func (dc Decl) Type() typedesc.Descriptor { return dc.declared }

// Wrap completes the staged construction with a concrete value, applying the
// same check as New.
func (dc Decl) Wrap(value any) (*Disjunct, error) {
	return New(value, dc.declared)
}
