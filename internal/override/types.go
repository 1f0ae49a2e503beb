package override

// ScriptInfo is the reference resolution of a subtitle track.
type ScriptInfo struct {
	PlayResX int `json:"play_res_x" yaml:"play_res_x" msgpack:"play_res_x"`
	PlayResY int `json:"play_res_y" yaml:"play_res_y" msgpack:"play_res_y"`
}

// Default reference resolution used by ASS renderers when a script omits it.
const (
	DefaultPlayResX = 384
	DefaultPlayResY = 288
)

func (s ScriptInfo) normalized() ScriptInfo {
	if s.PlayResX <= 0 {
		s.PlayResX = DefaultPlayResX
	}
	if s.PlayResY <= 0 {
		s.PlayResY = DefaultPlayResY
	}
	return s
}

// DefaultOutlineThickness applies when a style does not set one.
const DefaultOutlineThickness = 0.0075

// Outline describes a style's outline stroke.
type Outline struct {
	Thickness float64 `json:"thickness" yaml:"thickness" msgpack:"thickness"`
}

// Style is a named set of presentation defaults. Tags override but never
// mutate it.
type Style struct {
	Name      string  `json:"name" yaml:"name" msgpack:"name"`
	Alignment int     `json:"alignment" yaml:"alignment" msgpack:"alignment"`
	MarginL   float64 `json:"margin_l" yaml:"margin_l" msgpack:"margin_l"`
	MarginR   float64 `json:"margin_r" yaml:"margin_r" msgpack:"margin_r"`
	MarginV   float64 `json:"margin_v" yaml:"margin_v" msgpack:"margin_v"`
	Outline   Outline `json:"outline" yaml:"outline" msgpack:"outline"`
}

func (s Style) outlineThickness() float64 {
	if s.Outline.Thickness <= 0 {
		return DefaultOutlineThickness
	}
	return s.Outline.Thickness
}

// Attributes is the style-attribute bag carried by a cue. Nil fields are
// unset; merging only overwrites fields the source sets.
type Attributes struct {
	FontSize  *float64 `json:"font_size,omitempty" yaml:"font_size,omitempty" msgpack:"font_size,omitempty"`
	Horiz     *string  `json:"horiz,omitempty" yaml:"horiz,omitempty" msgpack:"horiz,omitempty"`
	Position  *float64 `json:"position,omitempty" yaml:"position,omitempty" msgpack:"position,omitempty"`
	Align     *float64 `json:"align,omitempty" yaml:"align,omitempty" msgpack:"align,omitempty"`
	Vert      *string  `json:"vert,omitempty" yaml:"vert,omitempty" msgpack:"vert,omitempty"`
	VAlign    *float64 `json:"v_align,omitempty" yaml:"v_align,omitempty" msgpack:"v_align,omitempty"`
	Line      *float64 `json:"line,omitempty" yaml:"line,omitempty" msgpack:"line,omitempty"`
	TextAlign *string  `json:"text_align,omitempty" yaml:"text_align,omitempty" msgpack:"text_align,omitempty"`
	Rotate    *string  `json:"rotate,omitempty" yaml:"rotate,omitempty" msgpack:"rotate,omitempty"`
}

// Merge overwrites every field set in src. Later writes win per attribute.
func (a *Attributes) Merge(src Attributes) {
	mergeField(&a.FontSize, src.FontSize)
	mergeField(&a.Horiz, src.Horiz)
	mergeField(&a.Position, src.Position)
	mergeField(&a.Align, src.Align)
	mergeField(&a.Vert, src.Vert)
	mergeField(&a.VAlign, src.VAlign)
	mergeField(&a.Line, src.Line)
	mergeField(&a.TextAlign, src.TextAlign)
	mergeField(&a.Rotate, src.Rotate)
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

func mergeField[T any](dst **T, src *T) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}

func ptr[T any](v T) *T {
	return &v
}

// Cue is one timed subtitle entry. Start and End are seconds.
type Cue struct {
	Text  string  `json:"text" yaml:"text" msgpack:"text"`
	Start float64 `json:"start" yaml:"start" msgpack:"start"`
	End   float64 `json:"end" yaml:"end" msgpack:"end"`
	Style string  `json:"style,omitempty" yaml:"style,omitempty" msgpack:"style,omitempty"`

	Attributes `yaml:",inline"`

	HasAnimation bool  `json:"has_animation,omitempty" yaml:"has_animation,omitempty" msgpack:"has_animation,omitempty"`
	Show         bool  `json:"show,omitempty" yaml:"show,omitempty" msgpack:"show,omitempty"`
	Animation    *Fade `json:"animation,omitempty" yaml:"animation,omitempty" msgpack:"animation,omitempty"`
}
