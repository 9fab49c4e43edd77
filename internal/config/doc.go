// Package config loads and validates the application configuration from
// environment variables and an optional config file. Environment
// variables (LEDGER_ prefix) take precedence over file values.
package config
