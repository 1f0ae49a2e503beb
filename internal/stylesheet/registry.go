package stylesheet

import (
	"cmp"
	"io"
	"slices"
	"strings"
	"sync"
)

// Rule is one generated class rule.
type Rule struct {
	Class string `json:"class" msgpack:"class"`
	Text  string `json:"text" msgpack:"text"`
}

// Registry collects generated rules keyed by class name. Registration is
// insert-if-absent: the first rule stored for a class is kept and repeated
// registrations are no-ops, so concurrent compilers need no coordination.
type Registry struct {
	rules sync.Map
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores rule under class unless the class is already known. It
// reports whether the rule was newly added.
func (r *Registry) Register(class, rule string) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	_, loaded := r.rules.LoadOrStore(class, rule)
	return !loaded
}

// Seed registers previously generated rules.
func (r *Registry) Seed(rules []Rule) int {
	added := 0
	for _, rule := range rules {
		if r.Register(rule.Class, rule.Text) {
			added++
		}
	}
	return added
}

// Lookup returns the rule text stored for class.
func (r *Registry) Lookup(class string) (string, bool) {
	v, ok := r.rules.Load(class)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Rules returns a snapshot sorted by class name.
func (r *Registry) Rules() []Rule {
	var out []Rule
	r.rules.Range(func(key, value any) bool {
		out = append(out, Rule{Class: key.(string), Text: value.(string)})
		return true
	})
	slices.SortFunc(out, func(a, b Rule) int { return cmp.Compare(a.Class, b.Class) })
	return out
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	n := 0
	r.rules.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// WriteTo renders the registry as a stylesheet, one rule per line.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	return writeRules(w, r.Rules())
}

func writeRules(w io.Writer, rules []Rule) (int64, error) {
	var total int64
	for _, rule := range rules {
		n, err := io.WriteString(w, rule.Text+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
