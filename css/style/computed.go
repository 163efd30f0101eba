package style

import (
	pr "github.com/benoitkugler/svgstyle/css/properties"
	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
)

// ComputedStyle stores the computed value of every CSS property
// for one element. Values are never nil.
type ComputedStyle struct {
	values       [pr.NbProps]pr.Value
	rootFontSize float64
}

// Get returns the computed value of `p`, or nil if `p`
// is not a CSS property.
func (s *ComputedStyle) Get(p pr.KnownProp) pr.Value {
	if p >= pr.NbProps {
		return nil
	}
	return s.values[p]
}

// Paint is the computed value of fill and stroke.
type Paint struct {
	// Color is nil for 'none', or for a paint server
	// without fallback.
	Color *pr.Color
	// URL is the paint server reference, or empty.
	URL string
}

// IsNone returns true if nothing should be painted.
func (p Paint) IsNone() bool { return p.Color == nil && p.URL == "" }

func (s *ComputedStyle) paint(p pr.KnownProp) Paint {
	switch v := s.values[p].(type) {
	case *pr.URL:
		return Paint{URL: v.Value()}
	case *pr.Pair:
		url, _ := v.First().(*pr.URL)
		out := Paint{Color: s.resolveColor(v.Second())}
		if url != nil {
			out.URL = url.Value()
		}
		return out
	default:
		return Paint{Color: s.resolveColor(v)}
	}
}

func (s *ComputedStyle) Fill() Paint   { return s.paint(pr.PFill) }
func (s *ComputedStyle) Stroke() Paint { return s.paint(pr.PStroke) }

// ResolveColor returns the color of property `p`, replacing
// 'currentColor' by the value of the 'color' property.
// It returns nil if `p` is not a color (like 'none' or an url).
func (s *ComputedStyle) ResolveColor(p pr.KnownProp) *pr.Color {
	return s.resolveColor(s.Get(p))
}

func (s *ComputedStyle) resolveColor(v pr.Value) *pr.Color {
	switch v := v.(type) {
	case *pr.Color:
		return v
	case *pr.Ident:
		if v.Keyword() == kw.CurrentColor {
			c, _ := s.values[pr.PColor].(*pr.Color)
			return c
		}
	}
	return nil
}

// alpha returns an opacity property as a number in [0, 1].
func (s *ComputedStyle) alpha(p pr.KnownProp) float64 {
	switch v := s.values[p].(type) {
	case *pr.Number:
		return v.Value()
	case *pr.Percent:
		return v.Value() / 100
	}
	return 1
}

func (s *ComputedStyle) Opacity() float64       { return s.alpha(pr.POpacity) }
func (s *ComputedStyle) FillOpacity() float64   { return s.alpha(pr.PFillOpacity) }
func (s *ComputedStyle) StrokeOpacity() float64 { return s.alpha(pr.PStrokeOpacity) }
func (s *ComputedStyle) StopOpacity() float64   { return s.alpha(pr.PStopOpacity) }

// FontSize returns the font size, in pixels.
func (s *ComputedStyle) FontSize() float64 {
	if l, ok := s.values[pr.PFontSize].(*pr.Length); ok {
		return l.Value()
	}
	return mediumFontSize
}

// FontWeight returns the numeric font weight.
func (s *ComputedStyle) FontWeight() int {
	if w, ok := s.values[pr.PFontWeight].(*pr.Integer); ok {
		return w.Value()
	}
	return 400
}

// FontFamily returns the font families, by order of preference.
func (s *ComputedStyle) FontFamily() []string {
	l, ok := s.values[pr.PFontFamily].(*pr.List)
	if !ok {
		return nil
	}
	out := make([]string, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		if name, ok := l.At(i).(*pr.String); ok {
			out = append(out, name.Value())
		}
	}
	return out
}

// Keyword returns the keyword value of `p`, or 0 if the
// value of `p` is not a keyword.
func (s *ComputedStyle) Keyword(p pr.KnownProp) kw.Keyword {
	if id, ok := s.Get(p).(*pr.Ident); ok {
		return id.Keyword()
	}
	return 0
}

func (s *ComputedStyle) Display() kw.Keyword    { return s.Keyword(pr.PDisplay) }
func (s *ComputedStyle) Visibility() kw.Keyword { return s.Keyword(pr.PVisibility) }

// Px converts the length property `p` to pixels.
// Percentages are resolved against `reference`, and viewport
// units (unknown at this stage) resolve to 0.
func (s *ComputedStyle) Px(p pr.KnownProp, reference float64) float64 {
	l, ok := s.Get(p).(*pr.Length)
	if !ok {
		return 0
	}
	return s.lengthToPx(l, reference)
}

func (s *ComputedStyle) lengthToPx(l *pr.Length, reference float64) float64 {
	if l.Unit() == pr.UnitPercent {
		return l.Value() * reference / 100
	}
	px, _ := l.ToPx(s.FontSize(), s.rootFontSize)
	return px
}

// StrokeWidth returns the stroke width in pixels. `diagonal` is
// the normalized diagonal of the viewport, used for percentages.
func (s *ComputedStyle) StrokeWidth(diagonal float64) float64 {
	return s.Px(pr.PStrokeWidth, diagonal)
}

// Dashes returns the dash array in pixels, or nil for 'none'.
// Percentages are resolved against `diagonal`.
func (s *ComputedStyle) Dashes(diagonal float64) []float64 {
	l, ok := s.values[pr.PStrokeDasharray].(*pr.List)
	if !ok {
		return nil
	}
	out := make([]float64, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		if dash, ok := l.At(i).(*pr.Length); ok {
			out = append(out, s.lengthToPx(dash, diagonal))
		}
	}
	return out
}
