package disjunct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/disjunct/pkg/typedesc"
)

func TestNewStoresActualType(t *testing.T) {
	intOrStr := typedesc.UnionOf(typedesc.Of[int](), typedesc.Of[string]())

	d, err := New(5, intOrStr)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Value())
	// The actual descriptor is the value's own type, never the declared union.
	assert.True(t, d.ActualType().Equal(typedesc.Of[int]()))
	assert.True(t, d.DeclaredType().Equal(intOrStr))

	s, err := New("ab", intOrStr)
	require.NoError(t, err)
	assert.True(t, s.ActualType().Equal(typedesc.Of[string]()))
}

func TestNewRejectsForeignType(t *testing.T) {
	intOrStr := typedesc.UnionOf(typedesc.Of[int](), typedesc.Of[string]())

	_, err := New(3.14, intOrStr)
	require.Error(t, err)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Actual.Equal(typedesc.Of[float64]()))
	assert.True(t, mismatch.Declared.Equal(intOrStr))

	_, err = New(5, nil)
	require.True(t, errors.As(err, &mismatch))
}

func TestStagedConstruction(t *testing.T) {
	decl := Of2[int, string]()
	assert.Equal(t, "int | string", decl.Type().String())

	d, err := decl.Wrap(5)
	require.NoError(t, err)
	assert.True(t, d.ActualType().Equal(typedesc.Of[int]()))

	_, err = decl.Wrap(true)
	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))

	wide := Of4[int, string, bool, float64]()
	assert.Len(t, wide.Type().Members(), 4)
}

func TestDeclareWithoutMembers(t *testing.T) {
	// An empty declaration fixes no type at all, so no value can inhabit it.
	empty := Declare()
	assert.Nil(t, empty.Type())

	_, err := empty.Wrap(5)
	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
}

func TestLiftIsDegenerate(t *testing.T) {
	d := Lift(42)
	assert.Equal(t, 42, d.Value())
	assert.True(t, d.ActualType().Equal(typedesc.Of[int]()))
	// Declared type equals the value's own type: a single-type disjunction.
	assert.True(t, d.DeclaredType().Equal(d.ActualType()))
}
