package typedesc

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Descriptor is a comparable, reified stand-in for a Go type. Descriptors are
// immutable once produced and safe to share across goroutines.
type Descriptor interface {
	String() string
	// AssignableTo reports whether every value of this type is also a legal
	// value of other (the subtype relation of the host type system).
	AssignableTo(other Descriptor) bool
	// Equal is mutual assignability. It is reflexive, transitive, and
	// consistent with AssignableTo in both directions.
	Equal(other Descriptor) bool
	// Members returns the disjuncts of a union, or the descriptor itself
	// for a single type. The result must not be mutated.
	Members() []Descriptor
}

// Single describes exactly one Go type.
type Single struct {
	rt reflect.Type
}

// descriptors is keyed by reflect.Type so every call site observes one
// canonical descriptor per distinct type.
var descriptors sync.Map

func forType(rt reflect.Type) Descriptor {
	if d, ok := descriptors.Load(rt); ok {
		return d.(Descriptor)
	}
	d, _ := descriptors.LoadOrStore(rt, Single{rt: rt})
	return d.(Descriptor)
}

// Of returns the canonical descriptor for T. Interface types are supported:
// Of[error] describes the error interface itself, not a concrete type.
func Of[T any]() Descriptor {
	return forType(reflect.TypeOf((*T)(nil)).Elem())
}

// ValueOf returns the descriptor for v's runtime type - the most specific
// type the host can observe for the value. A nil interface value carries no
// concrete type and is described as any.
func ValueOf(v any) Descriptor {
	if v == nil {
		return Of[any]()
	}
	return forType(reflect.TypeOf(v))
}

// ReflectType exposes the underlying reflect.Type.
func (s Single) ReflectType() reflect.Type { return s.rt }

func (s Single) String() string { return s.rt.String() }

func (s Single) Members() []Descriptor { return []Descriptor{s} }

func (s Single) AssignableTo(other Descriptor) bool {
	switch o := other.(type) {
	case Single:
		return s.rt.AssignableTo(o.rt)
	case Union:
		// T <: T | U
		for _, m := range o.types {
			if s.AssignableTo(m) {
				return true
			}
		}
		return false
	}
	return false
}

func (s Single) Equal(other Descriptor) bool {
	return s.AssignableTo(other) && other.AssignableTo(s)
}

// Union describes a value known to be exactly one of several types.
// Members are normalized: flattened, deduplicated, and sorted for comparison.
type Union struct {
	types []Descriptor // At least 2 types
}

func (u Union) String() string {
	parts := make([]string, len(u.types))
	for i, m := range u.types {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

func (u Union) Members() []Descriptor { return u.types }

// A union is assignable to a target only when every member is.
func (u Union) AssignableTo(other Descriptor) bool {
	for _, m := range u.types {
		if !m.AssignableTo(other) {
			return false
		}
	}
	return true
}

func (u Union) Equal(other Descriptor) bool {
	return u.AssignableTo(other) && other.AssignableTo(u)
}

// UnionOf creates a normalized union descriptor.
// It flattens nested unions, removes duplicates, and sorts members.
// A single remaining member is returned directly instead of a union, and
// no members at all yield nil: an empty union would hold no type and is
// rejected wherever a descriptor is required.
func UnionOf(members ...Descriptor) Descriptor {
	// Flatten nested unions
	flat := []Descriptor{}
	for _, m := range members {
		if m == nil {
			continue
		}
		flat = append(flat, m.Members()...)
	}

	// Remove duplicates. Single members are keyed by their reflect.Type:
	// two distinct types can share a string form (same type name in
	// same-named packages on different import paths) and must not merge.
	seen := make(map[any]bool)
	unique := []Descriptor{}
	for _, m := range flat {
		var key any = m.String()
		if s, ok := m.(Single); ok {
			key = s.rt
		}
		if !seen[key] {
			seen[key] = true
			unique = append(unique, m)
		}
	}

	if len(unique) == 0 {
		return nil
	}

	// If only one type remains, return it directly
	if len(unique) == 1 {
		return unique[0]
	}

	// Sort for deterministic comparison
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})

	return Union{types: unique}
}
