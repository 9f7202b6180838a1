package models

import (
	"io"
	"iter"
	"os"
	"strings"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/store"
)

// Array is an ordered, owning collection of Values
type Array struct {
	lifecycle
	entries *store.Store[Value]
}

// NewArray creates an empty Array
func NewArray() *Array {
	return &Array{
		entries: store.New[Value](),
	}
}

func (*Array) Kind() Kind  { return KindArray }
func (*Array) modelValue() {}

// Len returns the number of entries
func (a *Array) Len() int {
	return a.entries.Len()
}

// Cap returns the number of allocated entry slots
func (a *Array) Cap() int {
	return a.entries.Cap()
}

// All iterates over the entries in insertion order
func (a *Array) All() iter.Seq2[int, Value] {
	return a.entries.All()
}

// AddLong appends an Integer
func (a *Array) AddLong(v int64) {
	a.add("add to array", Integer(v))
}

// AddDouble appends a Number
func (a *Array) AddDouble(v float64) {
	a.add("add to array", Number(v))
}

// AddString appends a copy of v
func (a *Array) AddString(v string) {
	a.add("add to array", String(strings.Clone(v)))
}

// AddArray moves nested into a. The caller must not use nested afterwards.
func (a *Array) AddArray(nested *Array) {
	a.checkUsable("add to array")
	if nested == nil {
		panic(errors.NewOwnershipError("cannot add nil array", errors.ErrNilContainer))
	}
	if nested == a {
		panic(errors.NewOwnershipError("cannot add array to itself", errors.ErrSelfReference))
	}
	nested.adopt("move array")
	*a.entries.Append() = nested
}

// AddObject moves nested into a. The caller must not use nested afterwards.
func (a *Array) AddObject(nested *Object) {
	a.checkUsable("add to array")
	if nested == nil {
		panic(errors.NewOwnershipError("cannot add nil object", errors.ErrNilContainer))
	}
	nested.adopt("move object")
	*a.entries.Append() = nested
}

func (a *Array) add(op string, v Value) {
	a.checkUsable(op)
	*a.entries.Append() = v
}

// Destroy releases every entry, nested containers included. An Array that
// was moved into a parent is destroyed by that parent instead.
func (a *Array) Destroy() {
	a.checkUsable("destroy array")
	a.destroy()
}

func (a *Array) destroy() {
	for _, v := range a.entries.All() {
		cleanup(v)
	}
	a.entries.Release()
	a.destroyed = true
}

// Print writes the array to standard output, one line per entry
func (a *Array) Print() {
	_ = a.Fprint(os.Stdout)
}

// Fprint writes the array to w with the default print options
func (a *Array) Fprint(w io.Writer) error {
	return NewPrinter(w, DefaultPrintOptions()).PrintArray(a)
}
