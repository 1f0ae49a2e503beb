// Package config loads, normalizes, and validates subtag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes the rendering
// surface assumptions, batch compilation knobs, stylesheet persistence
// locations, and logging settings the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
