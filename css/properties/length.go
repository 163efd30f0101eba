package properties

// Unit is the unit of a length. UnitNone is used for
// unitless numbers accepted as lengths.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitPercent
	UnitPx
	UnitPt
	UnitPc
	UnitIn
	UnitCm
	UnitMm
	UnitEm
	UnitEx
	UnitCh
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
)

var unitNames = [...]string{
	UnitNone:    "",
	UnitPercent: "%",
	UnitPx:      "px",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitCh:      "ch",
	UnitRem:     "rem",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitVmin:    "vmin",
	UnitVmax:    "vmax",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return ""
}

// Units maps the lower case suffixes of the dimension tokens to units.
var Units = map[string]Unit{
	"px":   UnitPx,
	"pt":   UnitPt,
	"pc":   UnitPc,
	"in":   UnitIn,
	"cm":   UnitCm,
	"mm":   UnitMm,
	"em":   UnitEm,
	"ex":   UnitEx,
	"ch":   UnitCh,
	"rem":  UnitRem,
	"vw":   UnitVw,
	"vh":   UnitVh,
	"vmin": UnitVmin,
	"vmax": UnitVmax,
}

// size in pixels of the absolute units, at 96 dpi
var absoluteUnits = [...]float64{
	UnitNone: 1,
	UnitPx:   1,
	UnitPt:   96. / 72.,
	UnitPc:   96. / 6.,
	UnitIn:   96.,
	UnitCm:   96. / 2.54,
	UnitMm:   96. / 25.4,
}

type Length struct {
	value float64
	unit  Unit
}

func NewLength(v float64, unit Unit) *Length { return &Length{value: v, unit: unit} }

func (v *Length) Value() float64 { return v.value }
func (v *Length) Unit() Unit     { return v.unit }
func (v *Length) String() string { return formatFloat(v.value) + v.unit.String() }

// ToPx converts the length to pixels. Font relative units are resolved
// against `fontSize` and `rootFontSize` (in pixels), using the usual 0.5em
// approximation for ex and ch.
// It returns false for percentages and viewport units, whose reference
// is only known at layout time.
func (v *Length) ToPx(fontSize, rootFontSize float64) (float64, bool) {
	switch v.unit {
	case UnitEm:
		return v.value * fontSize, true
	case UnitRem:
		return v.value * rootFontSize, true
	case UnitEx, UnitCh:
		return v.value * fontSize / 2, true
	case UnitPercent, UnitVw, UnitVh, UnitVmin, UnitVmax:
		return 0, false
	default:
		return v.value * absoluteUnits[v.unit], true
	}
}
