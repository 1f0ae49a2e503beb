package tags

import (
	"regexp"
	"slices"
)

// Category groups signatures by the handler that consumes them.
type Category string

const (
	CategoryBold      Category = "bold"
	CategoryItalic    Category = "italic"
	CategoryUnderline Category = "underline"
	CategoryStrike    Category = "strike"
	CategoryFontSize  Category = "font_size"
	CategoryColor     Category = "color"
	CategoryFade      Category = "fade"
	CategoryPosition  Category = "position"
	CategoryRotation  Category = "rotation"
	CategoryAlignment Category = "alignment"
	CategoryDropped   Category = "dropped"
)

// Signature describes one recognised override tag.
type Signature struct {
	Name      string
	Category  Category
	Pattern   *regexp.Regexp
	Supported bool
	Example   string
}

// Toggle pairs the start and end markers of an inline style category with the
// simple markup spliced into cue text.
type Toggle struct {
	Category Category
	Start    *regexp.Regexp
	End      *regexp.Regexp
	Open     string
	Close    string
}

// Match reports the markup for the toggle found in block, if any. A start
// marker wins over an end marker in the same block.
func (t Toggle) Match(block string) (markup string, ok bool) {
	if t.Start.MatchString(block) {
		return t.Open, true
	}
	if t.End.MatchString(block) {
		return t.Close, true
	}
	return "", false
}

var (
	boldStart      = regexp.MustCompile(`\\b1(?:\D|$)`)
	boldEnd        = regexp.MustCompile(`\\b0(?:\D|$)`)
	italicStart    = regexp.MustCompile(`\\i1(?:\D|$)`)
	italicEnd      = regexp.MustCompile(`\\i0(?:\D|$)`)
	underlineStart = regexp.MustCompile(`\\u1(?:\D|$)`)
	underlineEnd   = regexp.MustCompile(`\\u0(?:\D|$)`)
	strikeStart    = regexp.MustCompile(`\\s1(?:\D|$)`)
	strikeEnd      = regexp.MustCompile(`\\s0(?:\D|$)`)

	// FontSize captures the absolute size in script pixels.
	FontSize = regexp.MustCompile(`\\fs\s?(\d+(?:\.\d+)?)`)
	// Color captures the optional slot digit and the BGR hex payload.
	Color = regexp.MustCompile(`\\([1-4]?)c&H([0-9A-Fa-f]{1,8})&?`)
	// Fade captures fade-in and fade-out milliseconds of the two-argument form.
	Fade = regexp.MustCompile(`\\fad\(\s*(\d*\.?\d+)\s*,\s*(\d*\.?\d+)\s*\)?`)
	// Position captures x and y in script pixels.
	Position = regexp.MustCompile(`\\pos\(\s*(-?\d*\.?\d+)\s*,\s*(-?\d*\.?\d+)\s*\)?`)
	// Rotation captures the optional axis and the signed degrees.
	Rotation = regexp.MustCompile(`\\fr([xyz]?)(-?\d*\.?\d+)`)
	// Alignment captures the numpad marker ("n" or empty) and the value.
	Alignment = regexp.MustCompile(`\\a(n?)(\d{1,2})`)
)

var toggles = []Toggle{
	{Category: CategoryBold, Start: boldStart, End: boldEnd, Open: "<b>", Close: "</b>"},
	{Category: CategoryItalic, Start: italicStart, End: italicEnd, Open: "<i>", Close: "</i>"},
	{Category: CategoryUnderline, Start: underlineStart, End: underlineEnd, Open: "<u>", Close: "</u>"},
	{Category: CategoryStrike, Start: strikeStart, End: strikeEnd, Open: "<strike>", Close: "</strike>"},
}

// Toggles returns the inline style toggles in handler order.
func Toggles() []Toggle {
	return slices.Clone(toggles)
}

var supported = []Signature{
	{Name: "bold_on", Category: CategoryBold, Pattern: boldStart, Supported: true, Example: `\b1`},
	{Name: "bold_off", Category: CategoryBold, Pattern: boldEnd, Supported: true, Example: `\b0`},
	{Name: "italic_on", Category: CategoryItalic, Pattern: italicStart, Supported: true, Example: `\i1`},
	{Name: "italic_off", Category: CategoryItalic, Pattern: italicEnd, Supported: true, Example: `\i0`},
	{Name: "underline_on", Category: CategoryUnderline, Pattern: underlineStart, Supported: true, Example: `\u1`},
	{Name: "underline_off", Category: CategoryUnderline, Pattern: underlineEnd, Supported: true, Example: `\u0`},
	{Name: "strike_on", Category: CategoryStrike, Pattern: strikeStart, Supported: true, Example: `\s1`},
	{Name: "strike_off", Category: CategoryStrike, Pattern: strikeEnd, Supported: true, Example: `\s0`},
	{Name: "font_size", Category: CategoryFontSize, Pattern: FontSize, Supported: true, Example: `\fs42`},
	{Name: "color", Category: CategoryColor, Pattern: Color, Supported: true, Example: `\1c&H0000FF&`},
	{Name: "fade", Category: CategoryFade, Pattern: Fade, Supported: true, Example: `\fad(500,300)`},
	{Name: "pos", Category: CategoryPosition, Pattern: Position, Supported: true, Example: `\pos(960,540)`},
	{Name: "rotation", Category: CategoryRotation, Pattern: Rotation, Supported: true, Example: `\frz-12.5`},
	{Name: "alignment", Category: CategoryAlignment, Pattern: Alignment, Supported: true, Example: `\an8`},
}

var unsupported = []Signature{
	{Name: "border", Pattern: regexp.MustCompile(`\\[xy]?bord-?[\d.]+`), Example: `\xbord2.5`},
	{Name: "shadow", Pattern: regexp.MustCompile(`\\[xy]?shad-?[\d.]+`), Example: `\shad3`},
	{Name: "edge_blur", Pattern: regexp.MustCompile(`\\be[\d.]+`), Example: `\be1`},
	{Name: "blur", Pattern: regexp.MustCompile(`\\blur[\d.]+`), Example: `\blur0.8`},
	{Name: "scale", Pattern: regexp.MustCompile(`\\fsc[xy]?[\d.]+`), Example: `\fscx120`},
	{Name: "spacing", Pattern: regexp.MustCompile(`\\fsp-?[\d.]+`), Example: `\fsp2`},
	{Name: "relative_font_size", Pattern: regexp.MustCompile(`\\fs[+-][\d.]+`), Example: `\fs+4`},
	{Name: "shear", Pattern: regexp.MustCompile(`\\fa[xy]-?[\d.]+`), Example: `\fax0.3`},
	{Name: "encoding", Pattern: regexp.MustCompile(`\\fe\d+`), Example: `\fe1`},
	{Name: "font_name", Pattern: regexp.MustCompile(`\\fn[^\\]*`), Example: `\fnOpen Sans`},
	{Name: "alpha", Pattern: regexp.MustCompile(`\\(?:[1-4]a|alpha)&H[0-9A-Fa-f]*&?`), Example: `\1a&H80&`},
	{Name: "karaoke", Pattern: regexp.MustCompile(`(?i)\\k[fo]?\d+`), Example: `\kf50`},
	{Name: "wrap_style", Pattern: regexp.MustCompile(`\\q\d`), Example: `\q2`},
	{Name: "reset", Pattern: regexp.MustCompile(`\\r[^\\]*`), Example: `\rAlternate`},
	{Name: "move", Pattern: regexp.MustCompile(`\\move\([^)]*\)?`), Example: `\move(10,10,200,200)`},
	{Name: "origin", Pattern: regexp.MustCompile(`\\org\([^)]*\)?`), Example: `\org(640,360)`},
	{Name: "transform", Pattern: regexp.MustCompile(`\\t\((?:[^()]|\([^()]*\))*\)?`), Example: `\t(0,500,\clip(0,0,10,10)\frz360)`},
	{Name: "clip", Pattern: regexp.MustCompile(`\\i?clip\([^)]*\)?`), Example: `\iclip(0,0,100,100)`},
	{Name: "complex_fade", Pattern: regexp.MustCompile(`\\fade\([^)]*\)?`), Example: `\fade(255,0,255,0,200,800,1000)`},
	{Name: "fade_keyframes", Pattern: regexp.MustCompile(`\\fad\((?:[^,)]*,){2,}[^)]*\)?`), Example: `\fad(100,200,300)`},
	{Name: "baseline_offset", Pattern: regexp.MustCompile(`\\pbo-?\d+`), Example: `\pbo-5`},
	{Name: "drawing", Pattern: regexp.MustCompile(`\\p\d+`), Example: `\p1`},
}

func init() {
	for i := range unsupported {
		unsupported[i].Category = CategoryDropped
	}
}

// Supported returns the signatures the compiler renders.
func Supported() []Signature {
	return slices.Clone(supported)
}

// Unsupported returns the signatures the stripper removes.
func Unsupported() []Signature {
	return slices.Clone(unsupported)
}

// All returns the whole catalog, supported entries first.
func All() []Signature {
	return slices.Concat(supported, unsupported)
}
