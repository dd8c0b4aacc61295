// Package locale models the per-language YAML files kept in sync with the
// translation platform: where they live, which languages exist, and the
// line-based rewrite of their header comment and top-level language key.
//
// Files are never parsed structurally on the write path. Only the first
// top-level key line is touched, so everything else in the file survives a
// rewrite byte for byte.
package locale
