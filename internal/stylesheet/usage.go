package stylesheet

import (
	"cmp"
	"slices"
	"sync"
)

// Usage forwards registrations to a Registry and remembers every class asked
// for, including classes the registry already knew.
type Usage struct {
	registry *Registry
	used     sync.Map
}

// NewUsage wraps registry.
func NewUsage(registry *Registry) *Usage {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Usage{registry: registry}
}

// Register records class and registers rule in the underlying registry.
func (u *Usage) Register(class, rule string) bool {
	added := u.registry.Register(class, rule)
	if _, known := u.registry.Lookup(class); known {
		u.used.Store(class, struct{}{})
	}
	return added
}

// Rules returns the registry's rules for every recorded class, sorted by
// class name.
func (u *Usage) Rules() []Rule {
	var out []Rule
	u.used.Range(func(key, _ any) bool {
		class := key.(string)
		if text, ok := u.registry.Lookup(class); ok {
			out = append(out, Rule{Class: class, Text: text})
		}
		return true
	})
	slices.SortFunc(out, func(a, b Rule) int { return cmp.Compare(a.Class, b.Class) })
	return out
}
