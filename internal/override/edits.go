package override

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEditOutOfRange reports an insertion outside the text it targets. It
// indicates a defect in offset bookkeeping, never bad input.
var ErrEditOutOfRange = errors.New("edit offset out of range")

type edit struct {
	offset int
	seq    int
	text   string
}

// editList collects insertions against the cleared text and applies them in
// one pass, ordered by offset and then by the order they were recorded.
type editList struct {
	edits []edit
}

func (l *editList) insert(offset int, text string) {
	if text == "" {
		return
	}
	l.edits = append(l.edits, edit{offset: offset, seq: len(l.edits), text: text})
}

func (l *editList) len() int {
	return len(l.edits)
}

func (l *editList) apply(text string) (string, error) {
	if len(l.edits) == 0 {
		return text, nil
	}
	sorted := slices.Clone(l.edits)
	slices.SortFunc(sorted, func(a, b edit) int {
		if a.offset != b.offset {
			return a.offset - b.offset
		}
		return a.seq - b.seq
	})

	var b strings.Builder
	size := len(text)
	for _, e := range sorted {
		size += len(e.text)
	}
	b.Grow(size)

	last := 0
	for _, e := range sorted {
		if e.offset < 0 || e.offset > len(text) {
			return "", fmt.Errorf("%w: %d not in [0,%d]", ErrEditOutOfRange, e.offset, len(text))
		}
		b.WriteString(text[last:e.offset])
		b.WriteString(e.text)
		last = e.offset
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
