package formatter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/jobj/internal/errors"
)

// DefaultFloatPrecision matches the fractional digits of a plain %f verb
const DefaultFloatPrecision = 6

// MaxFloatPrecision is the largest number of fractional digits accepted
const MaxFloatPrecision = 17

// LabelCase selects how property names are rewritten when printed
type LabelCase string

const (
	LabelAsIs       LabelCase = "as_is"
	LabelCamel      LabelCase = "camel"
	LabelLowerCamel LabelCase = "lower_camel"
	LabelSnake      LabelCase = "snake"
	LabelKebab      LabelCase = "kebab"
)

// LabelCases lists every supported LabelCase
var LabelCases = []LabelCase{LabelAsIs, LabelCamel, LabelLowerCamel, LabelSnake, LabelKebab}

// ParseLabelCase converts a config or flag value into a LabelCase.
// The empty string maps to LabelAsIs.
func ParseLabelCase(s string) (LabelCase, error) {
	if s == "" {
		return LabelAsIs, nil
	}
	for _, c := range LabelCases {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.NewConfigError(fmt.Sprintf("unsupported label case '%s'", s), errors.ErrInvalidLabelCase)
}

// ValidatePrecision checks a float precision is within the accepted range
func ValidatePrecision(precision int) error {
	if precision < 0 || precision > MaxFloatPrecision {
		return errors.NewConfigError(fmt.Sprintf("float precision %d out of range", precision), errors.ErrInvalidPrecision)
	}
	return nil
}

// Formatter renders scalar values and property labels
type Formatter struct {
	precision int
	labelCase LabelCase
}

// NewFormatter creates a Formatter with the default precision and labels left as-is
func NewFormatter() *Formatter {
	return &Formatter{
		precision: DefaultFloatPrecision,
		labelCase: LabelAsIs,
	}
}

// NewFormatterWith creates a Formatter with explicit options. Out of range
// precisions fall back to DefaultFloatPrecision.
func NewFormatterWith(precision int, labelCase LabelCase) *Formatter {
	if ValidatePrecision(precision) != nil {
		precision = DefaultFloatPrecision
	}
	if labelCase == "" {
		labelCase = LabelAsIs
	}
	return &Formatter{
		precision: precision,
		labelCase: labelCase,
	}
}

// Integer renders a signed integer in decimal with no fraction
func (f *Formatter) Integer(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Number renders a float in fixed-point notation. The fraction is always
// written, so 7 becomes "7.000000" at the default precision. Non-finite
// values are spelled like C's %f: "nan", "-nan", "inf" and "-inf".
func (f *Formatter) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}

// Label rewrites a property name according to the configured LabelCase
func (f *Formatter) Label(name string) string {
	switch f.labelCase {
	case LabelCamel:
		return strcase.ToCamel(name)
	case LabelLowerCamel:
		return strcase.ToLowerCamel(name)
	case LabelSnake:
		return strcase.ToSnake(name)
	case LabelKebab:
		return strcase.ToKebab(name)
	default:
		return name
	}
}
