// Package config loads txsync settings. User-level settings live at
// ~/.txsync/config.yaml and are limited to the keys in Settings. Project
// settings (locale directories, file prefixes, languages, tool options) live
// in txsync.yaml or txsync.toml at the project root and are validated
// against an embedded JSON schema.
package config
