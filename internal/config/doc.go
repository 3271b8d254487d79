// Package config loads server configuration from JSON files, environment
// variables, and built-in defaults.
package config
