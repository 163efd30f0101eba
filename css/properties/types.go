package properties

import (
	"fmt"
	"strconv"
	"strings"

	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
)

// Value is a validated property value, one of
//   - the special Initial and Inherit values
//   - *Ident, *Integer, *Number, *Percent, *Length
//   - *String, *URL, *Color
//   - *Pair and *List, combining other values
//
// Values are immutable and may be shared between declarations.
type Value interface {
	fmt.Stringer
	isValue()
}

func (*Initial) isValue() {}
func (*Inherit) isValue() {}
func (*Ident) isValue()   {}
func (*Integer) isValue() {}
func (*Number) isValue()  {}
func (*Percent) isValue() {}
func (*Length) isValue()  {}
func (*String) isValue()  {}
func (*URL) isValue()     {}
func (*Color) isValue()   {}
func (*Pair) isValue()    {}
func (*List) isValue()    {}

type (
	Initial struct{}
	Inherit struct{}
)

var (
	initialValue = &Initial{}
	inheritValue = &Inherit{}
)

// InitialValue returns the shared 'initial' value.
func InitialValue() *Initial { return initialValue }

// InheritValue returns the shared 'inherit' value.
func InheritValue() *Inherit { return inheritValue }

func (*Initial) String() string { return "initial" }
func (*Inherit) String() string { return "inherit" }

// Ident is a keyword value.
type Ident struct{ keyword kw.Keyword }

var idents = func() (out [256]*Ident) {
	for i := range out {
		out[i] = &Ident{keyword: kw.Keyword(i)}
	}
	return out
}()

// NewIdent returns the shared value for `k`.
func NewIdent(k kw.Keyword) *Ident { return idents[k] }

func (v *Ident) Keyword() kw.Keyword { return v.keyword }
func (v *Ident) String() string      { return v.keyword.String() }

type Integer struct{ value int }

func NewInteger(v int) *Integer   { return &Integer{value: v} }
func (v *Integer) Value() int     { return v.value }
func (v *Integer) String() string { return strconv.Itoa(v.value) }

type Number struct{ value float64 }

func NewNumber(v float64) *Number { return &Number{value: v} }
func (v *Number) Value() float64  { return v.value }
func (v *Number) String() string  { return formatFloat(v.value) }

// Percent stores a percentage, as written (50% is stored as 50).
type Percent struct{ value float64 }

func NewPercent(v float64) *Percent { return &Percent{value: v} }
func (v *Percent) Value() float64   { return v.value }
func (v *Percent) String() string   { return formatFloat(v.value) + "%" }

type String struct{ value string }

func NewString(v string) *String { return &String{value: v} }
func (v *String) Value() string  { return v.value }
func (v *String) String() string { return strconv.Quote(v.value) }

type URL struct{ value string }

func NewURL(v string) *URL    { return &URL{value: v} }
func (v *URL) Value() string  { return v.value }
func (v *URL) String() string { return "url(" + v.value + ")" }

// Color is a 32 bits ARGB color.
type Color struct{ value uint32 }

func NewColor(argb uint32) *Color { return &Color{value: argb} }

// NewRGBA packs the given channels.
func NewRGBA(r, g, b, a uint8) *Color {
	return &Color{value: uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

func (v *Color) ARGB() uint32 { return v.value }

func (v *Color) A() uint8 { return uint8(v.value >> 24) }
func (v *Color) R() uint8 { return uint8(v.value >> 16) }
func (v *Color) G() uint8 { return uint8(v.value >> 8) }
func (v *Color) B() uint8 { return uint8(v.value) }

// RGBA returns the channels of the color.
func (v *Color) RGBA() (r, g, b, a uint8) { return v.R(), v.G(), v.B(), v.A() }

func (v *Color) String() string {
	r, g, b, a := v.RGBA()
	if a == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Pair is used for paints with a fallback, like 'url(#g) red'.
type Pair struct{ first, second Value }

func NewPair(first, second Value) *Pair { return &Pair{first: first, second: second} }
func (v *Pair) First() Value            { return v.first }
func (v *Pair) Second() Value           { return v.second }
func (v *Pair) String() string          { return v.first.String() + " " + v.second.String() }

type List struct{ values []Value }

// NewList returns a list with a copy of values.
func NewList(values []Value) *List {
	return &List{values: append([]Value(nil), values...)}
}

func (v *List) Len() int       { return len(v.values) }
func (v *List) At(i int) Value { return v.values[i] }

// Values returns a copy of the items.
func (v *List) Values() []Value { return append([]Value(nil), v.values...) }

func (v *List) String() string {
	chunks := make([]string, len(v.values))
	for i, item := range v.values {
		chunks[i] = item.String()
	}
	return strings.Join(chunks, ", ")
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
