package track

import (
	"strings"

	"golang.org/x/text/cases"

	"subtag/internal/override"
	"subtag/internal/tags"
)

// Styles resolves cue style names. Matching is exact first, then
// case-insensitive, then the fallback style.
type Styles struct {
	exact    map[string]override.Style
	folded   map[string]override.Style
	fallback override.Style
}

// NewStyles indexes styles. defaultName selects the fallback; when no style
// has that name a bottom-centred style without margins is used. Styles with
// no outline thickness get outline.
func NewStyles(styles []override.Style, defaultName string, outline float64) *Styles {
	s := &Styles{
		exact:  make(map[string]override.Style, len(styles)),
		folded: make(map[string]override.Style, len(styles)),
	}
	fold := cases.Fold()
	for _, style := range styles {
		if style.Outline.Thickness <= 0 && outline > 0 {
			style.Outline.Thickness = outline
		}
		style.Alignment = tags.NormalizeStyleAlignment(style.Alignment)
		if _, dup := s.exact[style.Name]; !dup {
			s.exact[style.Name] = style
		}
		key := fold.String(strings.TrimSpace(style.Name))
		if _, dup := s.folded[key]; !dup {
			s.folded[key] = style
		}
	}

	fallback, ok := s.exact[defaultName]
	if !ok {
		fallback, ok = s.folded[fold.String(defaultName)]
	}
	if !ok {
		fallback = override.Style{Name: defaultName, Alignment: 2, Outline: override.Outline{Thickness: outline}}
	}
	s.fallback = fallback
	return s
}

// Lookup returns the style for name and whether it was found by name.
func (s *Styles) Lookup(name string) (override.Style, bool) {
	if style, ok := s.exact[name]; ok {
		return style, true
	}
	// Casers keep state; a fresh one per call keeps Lookup safe for
	// concurrent use.
	if style, ok := s.folded[cases.Fold().String(strings.TrimSpace(name))]; ok {
		return style, true
	}
	return s.fallback, false
}

// Fallback returns the style used for unknown names.
func (s *Styles) Fallback() override.Style {
	return s.fallback
}
