package config

import "errors"

var (
	// ErrInvalidAppConfigs indicates a missing OAuth client credential.
	ErrInvalidAppConfigs = errors.New("invalid app configs: client id and secret must be set")

	// ErrInvalidAdapterConfigs indicates missing or malformed transport
	// settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs: service urls and request timeout must be set")

	// ErrInvalidAuthConfigs indicates inconsistent device-code polling
	// settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs: poll interval must be positive and below max wait")

	// ErrInvalidUIConfigs indicates a non-positive viewport size.
	ErrInvalidUIConfigs = errors.New("invalid ui configs: viewport size must be positive")
)
