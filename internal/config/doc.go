// Package config loads and validates collector configuration.
//
// Configuration is YAML with ${VAR} environment variable expansion, so
// secrets (database passwords) can stay out of the file. Defaults are
// applied for every optional field; Validate reports the first missing
// required field by its YAML path.
package config
