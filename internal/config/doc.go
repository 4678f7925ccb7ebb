// Package config loads and validates the application configuration.
//
// Configuration is assembled by merging three sources in precedence order:
// environment variables (caarlos0/env struct tags on [StructuredConfig]),
// command-line flags ([ParseFlags]), and built-in defaults. Merging is done
// with mergo, which only fills fields still unset by a higher-precedence
// source. [GetClientConfig] returns the validated client view.
package config
