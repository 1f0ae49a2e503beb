// Package track loads subtitle track documents, compiles their cues in
// parallel and writes the results.
//
// Documents are JSON, YAML or msgpack, selected by file extension. Cue style
// names resolve through Styles, which falls back to case-insensitive matching
// and then to a configured default style.
package track
