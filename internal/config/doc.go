// Package config handles application configuration: defaults, an optional
// YAML config file, and environment variable overrides with the INKPOST_
// prefix. Loaded configuration is validated before use so misconfiguration
// is an operator-facing startup failure, not a latent runtime one.
package config
