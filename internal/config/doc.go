// Package config loads viewer configuration.
//
// Configuration is read from a TOML or YAML file, chosen by extension,
// and then overridden from SODIUM_* environment variables:
//
//	[display]
//	highlight = true
//	line_marker = true
//
//	[theme]
//	background = "#191919"
//
//	[theme.palette]
//	string = "#E2E1A7"
//
// Missing files are not an error; the defaults are used instead.
package config
