// Package stylesheet owns the generated style rules produced while compiling
// colour overrides.
//
// Registry is the in-process sink handed to the compiler: an insert-if-absent
// map keyed by class name, safe for concurrent use. Store persists rules in
// SQLite so separate runs share one rule set, and MergeFile folds rules into a
// CSS file under a file lock, reading the existing sheet back with the
// tdewolff CSS parser so earlier definitions are preserved.
package stylesheet
