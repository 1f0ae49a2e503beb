// Package tags holds the declarative catalog of SSA/ASS override tags.
//
// The catalog lists every recognised tag signature as data: a name, a
// category, the compiled pattern, whether the compiler renders it, and a
// sample used by the catalog command and the collision tests. Supported and
// unsupported patterns are kept disjoint so that stripping the unsupported set
// never damages a tag the compiler understands.
//
// The package also owns the alignment lookup tables shared by the position
// and alignment handlers (legacy SSA to numpad conversion and the
// left/middle/right and top/vcenter/bottom sets).
package tags
