package models

import (
	stderrors "errors"
	"testing"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireOwnershipPanic runs fn and checks it panics with an ownership error wrapping target
func requireOwnershipPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, stderrors.Is(err, target), "got %v, want %v", err, target)
		assert.True(t, stderrors.Is(err, &errors.AppError{Type: errors.ErrorTypeOwnership}))
	}()
	fn()
}

func arrayValues(a *Array) []Value {
	var values []Value
	for _, v := range a.All() {
		values = append(values, v)
	}
	return values
}

func TestArray_New(t *testing.T) {
	a := NewArray()

	assert.Equal(t, KindArray, a.Kind())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, a.Cap())
}

func TestArray_AddScalars(t *testing.T) {
	a := NewArray()
	a.AddLong(7)
	a.AddDouble(7.0)
	a.AddString("seven")

	require.Equal(t, 3, a.Len())
	assert.Equal(t, []Value{Integer(7), Number(7.0), String("seven")}, arrayValues(a))

	kinds := []Kind{}
	for _, v := range a.All() {
		kinds = append(kinds, v.Kind())
	}
	assert.Equal(t, []Kind{KindInteger, KindNumber, KindString}, kinds)
}

func TestArray_AppendOrderAcrossGrowth(t *testing.T) {
	a := NewArray()

	var expected []Value
	for i := 0; i < 20; i++ {
		switch i % 3 {
		case 0:
			a.AddLong(int64(i))
			expected = append(expected, Integer(i))
		case 1:
			a.AddDouble(float64(i) + 0.5)
			expected = append(expected, Number(float64(i)+0.5))
		default:
			a.AddString(string(rune('a' + i)))
			expected = append(expected, String(string(rune('a'+i))))
		}

		// Content must be unchanged after every reallocation
		require.Equal(t, i+1, a.Len())
		require.Equal(t, expected, arrayValues(a))
	}

	assert.Equal(t, 32, a.Cap())
}

func TestArray_StringCopyIndependence(t *testing.T) {
	buf := []byte("original")
	a := NewArray()
	a.AddString(string(buf))

	copy(buf, "mutated!")

	assert.Equal(t, []Value{String("original")}, arrayValues(a))
}

func TestArray_AddNestedContainers(t *testing.T) {
	inner := NewArray()
	inner.AddLong(1)
	inner.AddLong(2)

	obj := NewObject()
	obj.AddString("k", "v")

	outer := NewArray()
	outer.AddArray(inner)
	outer.AddObject(obj)

	values := arrayValues(outer)
	require.Len(t, values, 2)
	assert.Same(t, inner, values[0])
	assert.Same(t, obj, values[1])
	assert.Equal(t, KindArray, values[0].Kind())
	assert.Equal(t, KindObject, values[1].Kind())

	outer.Destroy()
}

func TestArray_DestroyEmpty(t *testing.T) {
	a := NewArray()
	assert.NotPanics(t, a.Destroy)
	assert.Equal(t, 0, a.Len())
}

func TestArray_DestroyIsRecursive(t *testing.T) {
	leaf := NewObject()
	leaf.AddLong("n", 1)

	mid := NewArray()
	mid.AddObject(leaf)

	root := NewArray()
	root.AddArray(mid)
	root.AddString("tail")

	root.Destroy()

	assert.True(t, root.destroyed)
	assert.True(t, mid.destroyed)
	assert.True(t, leaf.destroyed)
	assert.Equal(t, 0, mid.Len())
	assert.Equal(t, 0, leaf.Len())
}

func TestArray_UseAfterDestroy(t *testing.T) {
	a := NewArray()
	a.AddLong(1)
	a.Destroy()

	requireOwnershipPanic(t, errors.ErrContainerDestroyed, func() { a.AddLong(2) })
	requireOwnershipPanic(t, errors.ErrContainerDestroyed, func() { a.AddString("x") })
	requireOwnershipPanic(t, errors.ErrContainerDestroyed, a.Destroy)
	requireOwnershipPanic(t, errors.ErrContainerDestroyed, a.Print)
}

func TestArray_OwnershipTransfer(t *testing.T) {
	nested := NewArray()
	nested.AddLong(1)

	parent := NewArray()
	parent.AddArray(nested)

	// The moved array now belongs to parent
	requireOwnershipPanic(t, errors.ErrContainerOwned, func() { nested.AddLong(2) })
	requireOwnershipPanic(t, errors.ErrContainerOwned, nested.Destroy)
	requireOwnershipPanic(t, errors.ErrContainerOwned, func() { NewArray().AddArray(nested) })
	requireOwnershipPanic(t, errors.ErrContainerOwned, func() { NewObject().AddArray("again", nested) })

	assert.NotPanics(t, parent.Destroy)
	requireOwnershipPanic(t, errors.ErrContainerDestroyed, func() { nested.AddLong(3) })
}

func TestArray_AddDestroyedContainer(t *testing.T) {
	gone := NewArray()
	gone.Destroy()

	requireOwnershipPanic(t, errors.ErrContainerDestroyed, func() { NewArray().AddArray(gone) })
}

func TestArray_AddSelf(t *testing.T) {
	a := NewArray()
	requireOwnershipPanic(t, errors.ErrSelfReference, func() { a.AddArray(a) })

	// The failed add leaves a untouched
	assert.Equal(t, 0, a.Len())
	assert.NotPanics(t, a.Destroy)
}

func TestArray_AddNil(t *testing.T) {
	a := NewArray()
	requireOwnershipPanic(t, errors.ErrNilContainer, func() { a.AddArray(nil) })
	requireOwnershipPanic(t, errors.ErrNilContainer, func() { a.AddObject(nil) })
	assert.Equal(t, 0, a.Len())
}
