package override

import (
	"slices"
	"strings"
)

// element is an open markup tag: its name and the exact opening text.
type element struct {
	name string
	open string
}

// nesting keeps inline toggles and colour spans well formed. want holds the
// elements the next run of text should sit inside, in nesting order; open
// holds what has actually been emitted so far.
type nesting struct {
	want []element
	open []element
}

// push applies one piece of handler markup. A closing tag with nothing to
// close is dropped.
func (n *nesting) push(markup string) {
	if name, ok := strings.CutPrefix(markup, "</"); ok {
		name = strings.TrimSuffix(name, ">")
		for i := len(n.want) - 1; i >= 0; i-- {
			if n.want[i].name == name {
				n.want = slices.Delete(n.want, i, i+1)
				return
			}
		}
		return
	}
	n.want = append(n.want, element{name: tagName(markup), open: markup})
}

// settle returns the markup that turns the open elements into the wanted
// ones. Elements above the first difference are closed innermost first and
// the remainder reopened, so tags never cross.
func (n *nesting) settle() string {
	common := 0
	for common < len(n.open) && common < len(n.want) && n.open[common] == n.want[common] {
		common++
	}
	var b strings.Builder
	for i := len(n.open) - 1; i >= common; i-- {
		b.WriteString("</" + n.open[i].name + ">")
	}
	for _, el := range n.want[common:] {
		b.WriteString(el.open)
	}
	n.open = append(n.open[:common], n.want[common:]...)
	return b.String()
}

// finish closes everything still open.
func (n *nesting) finish() string {
	n.want = n.want[:0]
	return n.settle()
}

func tagName(open string) string {
	name := strings.TrimPrefix(open, "<")
	if i := strings.IndexAny(name, " >"); i >= 0 {
		name = name[:i]
	}
	return name
}
