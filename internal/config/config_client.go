package config

import (
	"time"
)

// ClientApp holds client identity settings derived from the shared structured
// config.
type ClientApp struct {
	// ClientID is the OAuth client identifier.
	ClientID string
	// ClientSecret is the OAuth client secret.
	ClientSecret string
	// PurgeAll requests clearing the whole friend list without the
	// interactive selector.
	PurgeAll bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// AccountServiceURL is the account service base URL.
	AccountServiceURL string
	// FriendsServiceURL is the friends service base URL.
	FriendsServiceURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientAuth holds device-code polling settings.
type ClientAuth struct {
	// PollInterval is the fixed pause between token-exchange attempts.
	PollInterval time.Duration
	// MaxWait bounds the total polling time.
	MaxWait time.Duration
}

// ClientUI holds interactive selector settings.
type ClientUI struct {
	// ViewportSize is the number of friend rows rendered at once.
	ViewportSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Auth contains device-code handshake settings.
	Auth ClientAuth
	// UI contains selector settings.
	UI ClientUI
}

// GetClientConfig builds and validates the client config.
//
// Values are resolved in precedence order: environment variables, then
// command-line flags, then built-in defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ClientID:     cfg.App.ClientID,
			ClientSecret: cfg.App.ClientSecret,
			PurgeAll:     cfg.App.PurgeAll,
		},
		Adapter: ClientAdapter{
			AccountServiceURL: cfg.Adapter.AccountServiceURL,
			FriendsServiceURL: cfg.Adapter.FriendsServiceURL,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			PollInterval: cfg.Auth.PollInterval,
			MaxWait:      cfg.Auth.MaxWait,
		},
		UI: ClientUI{ViewportSize: cfg.UI.ViewportSize},
	}

	return clientCfg, clientCfg.validate()
}

// validate checks that the final merged [ClientConfig] satisfies all
// invariants the runtime depends on.
func (cfg *ClientConfig) validate() error {
	if cfg.App.ClientID == "" || cfg.App.ClientSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.AccountServiceURL == "" || cfg.Adapter.FriendsServiceURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Auth.PollInterval <= 0 || cfg.Auth.MaxWait < cfg.Auth.PollInterval {
		return ErrInvalidAuthConfigs
	}

	if cfg.UI.ViewportSize <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
