// Package override compiles SSA/ASS override blocks embedded in cue text.
//
// Compile strips every {...} block from the text, runs the unsupported-tag
// stripper over each block, and feeds the cleaned block through the handlers
// in fixed order: inline style toggles, font size, colour, fade, position,
// rotation, alignment. Inline toggles and colour spans become insertions
// against the cleared text; they are collected as an edit list and applied in
// a single pass sorted by offset, so no handler has to track how earlier
// insertions shifted the text. Markup stays well formed: closing an element
// first closes whatever is nested inside it and reopens those after, and
// anything still open is closed at the end of the cue. Style attributes merge
// last-write-wins per attribute, and the last fade in document order wins.
//
// Unknown, unsupported, or malformed tags never produce an error; they simply
// yield no directive.
package override
