package models

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/formatter"
)

// PrintOptions controls how scalars and property names are rendered
type PrintOptions struct {
	FloatPrecision int
	LabelCase      formatter.LabelCase
}

// DefaultPrintOptions renders numbers like %f and leaves names untouched
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		FloatPrecision: formatter.DefaultFloatPrecision,
		LabelCase:      formatter.LabelAsIs,
	}
}

// Printer dumps a value tree as plain text lines. Nested containers are not
// inlined: their own lines are written in place of the entry. A property
// label is written once, directly before its nested dump, and the property's
// line terminator follows the dump.
//
// The output is a debug dump, nothing is quoted or escaped.
type Printer struct {
	w      *bufio.Writer
	format *formatter.Formatter
	err    error
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, opts PrintOptions) *Printer {
	return &Printer{
		w:      bufio.NewWriter(w),
		format: formatter.NewFormatterWith(opts.FloatPrecision, opts.LabelCase),
	}
}

// Print writes a root container
func (p *Printer) Print(c Container) error {
	switch c := c.(type) {
	case *Array:
		return p.PrintArray(c)
	case *Object:
		return p.PrintObject(c)
	default:
		return errors.NewOutputError(fmt.Sprintf("cannot print %T", c), nil)
	}
}

// PrintArray writes one line per entry of a
func (p *Printer) PrintArray(a *Array) error {
	if a == nil {
		panic(errors.NewOwnershipError("cannot print nil array", errors.ErrNilContainer))
	}
	a.checkUsable("print array")
	p.array(a)
	return p.flush()
}

// PrintObject writes one "name: value" line per property of o
func (p *Printer) PrintObject(o *Object) error {
	if o == nil {
		panic(errors.NewOwnershipError("cannot print nil object", errors.ErrNilContainer))
	}
	o.checkUsable("print object")
	p.object(o)
	return p.flush()
}

func (p *Printer) array(a *Array) {
	for _, v := range a.All() {
		p.value(v)
		p.write("\n")
	}
}

func (p *Printer) object(o *Object) {
	for _, prop := range o.All() {
		p.write(p.format.Label(prop.Name))
		p.write(": ")
		p.value(prop.Value)
		p.write("\n")
	}
}

func (p *Printer) value(v Value) {
	switch v := v.(type) {
	case Integer:
		p.write(p.format.Integer(int64(v)))
	case Number:
		p.write(p.format.Number(float64(v)))
	case String:
		p.write(string(v))
	case *Array:
		p.array(v)
	case *Object:
		p.object(v)
	}
}

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}

func (p *Printer) flush() error {
	if p.err == nil {
		p.err = p.w.Flush()
	}
	if p.err != nil {
		return errors.NewOutputError("failed to write output", p.err)
	}
	return nil
}
