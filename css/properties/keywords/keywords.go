package keywords

// Keyword efficiently stores the CSS keywords used by SVG properties.
type Keyword uint8

const (
	_ Keyword = iota
	Auto
	Bevel
	Block
	Bold
	Bolder
	Butt
	Collapse
	CurrentColor
	End
	EvenOdd
	Hidden
	Inline
	InlineBlock
	Italic
	Large
	Larger
	Lighter
	LineThrough
	ListItem
	Medium
	Middle
	Miter
	None
	NonZero
	Normal
	Oblique
	Overline
	Round
	Scroll
	Small
	SmallCaps
	Smaller
	Square
	Start
	Underline
	Visible
	XLarge
	XSmall
	XXLarge
	XXSmall

	keywordCount
)

var names = [...]string{
	Auto:         "auto",
	Bevel:        "bevel",
	Block:        "block",
	Bold:         "bold",
	Bolder:       "bolder",
	Butt:         "butt",
	Collapse:     "collapse",
	CurrentColor: "currentcolor",
	End:          "end",
	EvenOdd:      "evenodd",
	Hidden:       "hidden",
	Inline:       "inline",
	InlineBlock:  "inline-block",
	Italic:       "italic",
	Large:        "large",
	Larger:       "larger",
	Lighter:      "lighter",
	LineThrough:  "line-through",
	ListItem:     "list-item",
	Medium:       "medium",
	Middle:       "middle",
	Miter:        "miter",
	None:         "none",
	NonZero:      "nonzero",
	Normal:       "normal",
	Oblique:      "oblique",
	Overline:     "overline",
	Round:        "round",
	Scroll:       "scroll",
	Small:        "small",
	SmallCaps:    "small-caps",
	Smaller:      "smaller",
	Square:       "square",
	Start:        "start",
	Underline:    "underline",
	Visible:      "visible",
	XLarge:       "x-large",
	XSmall:       "x-small",
	XXLarge:      "xx-large",
	XXSmall:      "xx-small",
}

var fromNames = func() map[string]Keyword {
	out := make(map[string]Keyword, len(names))
	for k, name := range names {
		if name != "" {
			out[name] = Keyword(k)
		}
	}
	return out
}()

// NewKeyword returns the keyword for the lower case `s`,
// or 0 if `s` is not a known keyword.
func NewKeyword(s string) Keyword { return fromNames[s] }

func (k Keyword) String() string {
	if k < keywordCount {
		return names[k]
	}
	return ""
}
