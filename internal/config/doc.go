// Package config loads, normalizes, and validates subtract configuration.
//
// Settings come from a TOML file (~/.config/subtract/config.toml, a
// ./subtract.toml next to the working directory, or an explicit --config
// path). A missing file is not an error: the tool runs on repository
// defaults so that a fresh install needs no setup. Always obtain settings
// through Load so downstream code sees trimmed values, expanded paths,
// and clear validation errors.
package config
