// Package config loads argspec's configuration.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. built-in values
//  2. the embedded defaults.toml, which carries the standard library
//     auto-argument table
//  3. a user file, either the one given explicitly (TOML or YAML, picked by
//     extension) or $XDG_CONFIG_HOME/argspec/config.toml when present
//  4. ARGSPEC_* environment variables; a double underscore separates
//     nested keys (ARGSPEC_LOG__VERBOSITY=2)
package config
