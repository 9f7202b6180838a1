// Package samples builds the named example documents printed by the jobj
// command.
package samples

import (
	"fmt"
	"sort"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/models"
)

// Builder constructs a fresh document. The caller owns the result and must Destroy it.
type Builder func() models.Container

var builders = map[string]Builder{
	"catalog":    Catalog,
	"nested":     Nested,
	"growth":     Growth,
	"duplicates": Duplicates,
}

// Names returns the available sample names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the sample called name
func Build(name string) (models.Container, error) {
	build, ok := builders[name]
	if !ok {
		return nil, errors.NewInputError(fmt.Sprintf("unknown sample '%s'", name), errors.ErrUnknownSample)
	}
	return build(), nil
}

// Catalog is a product record mixing every kind of value
func Catalog() models.Container {
	tags := models.NewArray()
	tags.AddString("red")
	tags.AddString("blue")

	dims := models.NewObject()
	dims.AddDouble("width", 1.5)
	dims.AddDouble("height", 2)
	dims.AddString("unit", "cm")

	product := models.NewObject()
	product.AddLong("id", 42)
	product.AddString("name", "widget")
	product.AddDouble("price", 9.99)
	product.AddArray("tags", tags)
	product.AddObject("dimensions", dims)
	return product
}

// Nested is an object holding a scalar followed by an array
func Nested() models.Container {
	b := models.NewArray()
	b.AddLong(10)
	b.AddLong(20)

	obj := models.NewObject()
	obj.AddLong("a", 1)
	obj.AddArray("b", b)
	return obj
}

// Growth is an array long enough to cross several capacity doublings
func Growth() models.Container {
	arr := models.NewArray()
	for i := int64(1); i <= 9; i++ {
		arr.AddLong(i * i)
	}
	return arr
}

// Duplicates is an object that sets the same name twice
func Duplicates() models.Container {
	obj := models.NewObject()
	obj.AddLong("x", 1)
	obj.AddLong("x", 2)
	return obj
}
