// Package models holds the in-memory value tree: scalars, ordered arrays and
// insertion-ordered objects. Containers own everything added to them,
// nested containers included, and Destroy releases the whole subtree.
//
// Ownership is strictly tree-shaped. Adding a container to itself, adding a
// container that already has an owner, and any use of a moved or destroyed
// container panic with an ownership *errors.AppError. Building a cycle
// through a descendant (adding an ancestor below one of its own children)
// is not detected and must be avoided by the caller.
package models

import (
	"fmt"

	"github.com/mcncl/jobj/internal/errors"
)

// Kind is the tag of a Value
type Kind uint8

const (
	KindInteger Kind = iota
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one datum in the tree. Concrete types:
//
//   - Integer (64-bit signed)
//   - Number  (64-bit float)
//   - String
//   - *Array
//   - *Object
//
// The set is sealed: only types in this package implement Value, so the
// kind always matches the payload.
type Value interface {
	Kind() Kind
	modelValue()
}

// Integer is a signed 64-bit integer value
type Integer int64

// Number is a double-precision floating-point value
type Number float64

// String is a string value. Containers store their own copy.
type String string

func (Integer) Kind() Kind { return KindInteger }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }

func (Integer) modelValue() {}
func (Number) modelValue()  {}
func (String) modelValue()  {}

// Container is the behaviour shared by Array and Object
type Container interface {
	Value
	Len() int
	Cap() int
	Destroy()
}

// Property is a named entry of an Object
type Property struct {
	Name  string
	Value Value
}

// lifecycle tracks whether a container was moved into a parent or destroyed
type lifecycle struct {
	owned     bool
	destroyed bool
}

// checkUsable panics unless the container may still be used directly by its caller
func (l *lifecycle) checkUsable(op string) {
	if l.destroyed {
		panic(errors.NewOwnershipError(fmt.Sprintf("cannot %s", op), errors.ErrContainerDestroyed))
	}
	if l.owned {
		panic(errors.NewOwnershipError(fmt.Sprintf("cannot %s", op), errors.ErrContainerOwned))
	}
}

// adopt marks the container as owned by a parent
func (l *lifecycle) adopt(op string) {
	l.checkUsable(op)
	l.owned = true
}

// cleanup releases whatever v owns. Nested containers are destroyed
// depth-first; strings go away with the slot that holds them.
func cleanup(v Value) {
	switch c := v.(type) {
	case *Array:
		c.destroy()
	case *Object:
		c.destroy()
	}
}
