package models

import (
	"io"
	"iter"
	"os"
	"strings"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/store"
)

// Object is an insertion-ordered list of named properties. It is not a map:
// names are not indexed and the same name may appear more than once.
type Object struct {
	lifecycle
	entries *store.Store[Property]
}

// NewObject creates an empty Object
func NewObject() *Object {
	return &Object{
		entries: store.New[Property](),
	}
}

func (*Object) Kind() Kind  { return KindObject }
func (*Object) modelValue() {}

// Len returns the number of properties
func (o *Object) Len() int {
	return o.entries.Len()
}

// Cap returns the number of allocated property slots
func (o *Object) Cap() int {
	return o.entries.Cap()
}

// All iterates over the properties in insertion order
func (o *Object) All() iter.Seq2[int, Property] {
	return o.entries.All()
}

// AddLong appends an Integer property
func (o *Object) AddLong(name string, v int64) {
	o.add("add to object", name, Integer(v))
}

// AddDouble appends a Number property
func (o *Object) AddDouble(name string, v float64) {
	o.add("add to object", name, Number(v))
}

// AddString appends a String property holding a copy of v
func (o *Object) AddString(name string, v string) {
	o.add("add to object", name, String(strings.Clone(v)))
}

// AddArray moves nested into o under name. The caller must not use nested afterwards.
func (o *Object) AddArray(name string, nested *Array) {
	o.checkUsable("add to object")
	if nested == nil {
		panic(errors.NewOwnershipError("cannot add nil array", errors.ErrNilContainer))
	}
	nested.adopt("move array")
	o.newProperty(name, nested)
}

// AddObject moves nested into o under name. The caller must not use nested afterwards.
func (o *Object) AddObject(name string, nested *Object) {
	o.checkUsable("add to object")
	if nested == nil {
		panic(errors.NewOwnershipError("cannot add nil object", errors.ErrNilContainer))
	}
	if nested == o {
		panic(errors.NewOwnershipError("cannot add object to itself", errors.ErrSelfReference))
	}
	nested.adopt("move object")
	o.newProperty(name, nested)
}

func (o *Object) add(op, name string, v Value) {
	o.checkUsable(op)
	o.newProperty(name, v)
}

func (o *Object) newProperty(name string, v Value) {
	prop := o.entries.Append()
	prop.Name = strings.Clone(name)
	prop.Value = v
}

// Destroy releases every property name and value, nested containers
// included. An Object that was moved into a parent is destroyed by that
// parent instead.
func (o *Object) Destroy() {
	o.checkUsable("destroy object")
	o.destroy()
}

func (o *Object) destroy() {
	for _, prop := range o.entries.All() {
		cleanup(prop.Value)
	}
	o.entries.Release()
	o.destroyed = true
}

// Print writes the object to standard output as "name: value" lines
func (o *Object) Print() {
	_ = o.Fprint(os.Stdout)
}

// Fprint writes the object to w with the default print options
func (o *Object) Fprint(w io.Writer) error {
	return NewPrinter(w, DefaultPrintOptions()).PrintObject(o)
}
