// Package main hosts the subtag CLI entrypoint and command graph.
//
// The Cobra command tree loads subtitle tracks, compiles their override
// markup, persists the generated style rules and prints the tag catalog. It
// centralizes configuration resolution and logging setup so subcommands only
// wire the internal packages together.
package main
