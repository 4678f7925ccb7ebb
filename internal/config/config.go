package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// friend-list remover. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the OAuth client
	// credential.
	App App `envPrefix:"APP_"`

	// Adapter holds network addresses and timeouts for the remote Epic
	// services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds device-code polling settings.
	Auth Auth `envPrefix:"AUTH_"`

	// UI holds interactive selector settings.
	UI UI `envPrefix:"UI_"`
}

// App holds application-level configuration values.
type App struct {
	// ClientID is the OAuth client identifier used for the
	// client-credentials grant and for polling the device-code exchange.
	// Env: APP_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the matching OAuth client secret.
	// Must be kept confidential.
	// Env: APP_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// PurgeAll skips the interactive selector and clears the entire
	// friend list in a single call after confirmation.
	// Flag-only: -purge
	PurgeAll bool `env:"-"`
}

// Adapter holds network and timeout settings for the outbound transport
// layer.
type Adapter struct {
	// AccountServiceURL is the base URL of the account service
	// (OAuth tokens, device authorization, public account lookup).
	// Env: ADAPTER_ACCOUNT_URL
	AccountServiceURL string `env:"ACCOUNT_URL"`

	// FriendsServiceURL is the base URL of the friends service
	// (summary, per-friend removal).
	// Env: ADAPTER_FRIENDS_URL
	FriendsServiceURL string `env:"FRIENDS_URL"`

	// RequestTimeout is the per-call timeout for every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds settings for the device-code polling loop.
type Auth struct {
	// PollInterval is the fixed pause between token-exchange attempts
	// while the user approval is still pending.
	// Env: AUTH_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MaxWait bounds the total time spent polling before the handshake
	// is reported as expired.
	// Env: AUTH_MAX_WAIT
	MaxWait time.Duration `env:"MAX_WAIT"`
}

// UI holds settings for the interactive friend selector.
type UI struct {
	// ViewportSize is the number of friend rows rendered at once.
	// Env: UI_VIEWPORT_SIZE
	ViewportSize int `env:"VIEWPORT_SIZE"`
}

// defaults returns the built-in configuration merged in last, so it only
// fills fields that neither the environment nor the flags set.
//
// The client credential defaults to the public Epic Games Launcher client,
// which is authorized for the device-code grant.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ClientID:     "98f7e42c2e3a4f86a74eb43fbb41ed39",
			ClientSecret: "0a2449a2-001a-451e-afec-3e812901c4d7",
		},
		Adapter: Adapter{
			AccountServiceURL: "https://account-public-service-prod.ol.epicgames.com",
			FriendsServiceURL: "https://friends-public-service-prod.ol.epicgames.com",
			RequestTimeout:    10 * time.Second,
		},
		Auth: Auth{
			PollInterval: 2 * time.Second,
			MaxWait:      180 * time.Second,
		},
		UI: UI{
			ViewportSize: 14,
		},
	}
}
