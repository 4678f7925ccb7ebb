package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── merge precedence ─────────────────────────────────────────────────────────

func TestConfigBuilder_EarlierSourcesWin(t *testing.T) {
	envCfg := &StructuredConfig{
		Adapter: Adapter{AccountServiceURL: "https://env.example.com"},
		Auth:    Auth{PollInterval: 7 * time.Second},
	}
	flagCfg := &StructuredConfig{
		Adapter: Adapter{
			AccountServiceURL: "https://flags.example.com",
			FriendsServiceURL: "https://flags-friends.example.com",
		},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, envCfg, flagCfg, defaults())

	cfg, err := b.build()
	require.NoError(t, err)

	// Env beats flags, flags beat defaults, defaults fill the rest.
	assert.Equal(t, "https://env.example.com", cfg.Adapter.AccountServiceURL)
	assert.Equal(t, "https://flags-friends.example.com", cfg.Adapter.FriendsServiceURL)
	assert.Equal(t, 7*time.Second, cfg.Auth.PollInterval)
	assert.Equal(t, 180*time.Second, cfg.Auth.MaxWait)
	assert.Equal(t, 14, cfg.UI.ViewportSize)
	assert.NotEmpty(t, cfg.App.ClientID)
}

func TestConfigBuilder_DefaultsAloneAreComplete(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, defaults())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://account-public-service-prod.ol.epicgames.com", cfg.Adapter.AccountServiceURL)
	assert.Equal(t, "https://friends-public-service-prod.ol.epicgames.com", cfg.Adapter.FriendsServiceURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Auth.PollInterval)
}

// ── environment parsing ──────────────────────────────────────────────────────

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("APP_CLIENT_ID", "env-client-id")
	t.Setenv("ADAPTER_ACCOUNT_URL", "https://env-account.example.com")
	t.Setenv("AUTH_POLL_INTERVAL", "3s")
	t.Setenv("UI_VIEWPORT_SIZE", "20")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-client-id", cfg.App.ClientID)
	assert.Equal(t, "https://env-account.example.com", cfg.Adapter.AccountServiceURL)
	assert.Equal(t, 3*time.Second, cfg.Auth.PollInterval)
	assert.Equal(t, 20, cfg.UI.ViewportSize)
}

func TestParseEnv_RejectsMalformedDuration(t *testing.T) {
	t.Setenv("AUTH_POLL_INTERVAL", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

// ── validation ───────────────────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{ClientID: "id", ClientSecret: "secret"},
		Adapter: ClientAdapter{
			AccountServiceURL: "https://account.example.com",
			FriendsServiceURL: "https://friends.example.com",
			RequestTimeout:    10 * time.Second,
		},
		Auth: ClientAuth{PollInterval: 2 * time.Second, MaxWait: 3 * time.Minute},
		UI:   ClientUI{ViewportSize: 14},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "missing client id", mutate: func(c *ClientConfig) { c.App.ClientID = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing account url", mutate: func(c *ClientConfig) { c.Adapter.AccountServiceURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero poll interval", mutate: func(c *ClientConfig) { c.Auth.PollInterval = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "ceiling below interval", mutate: func(c *ClientConfig) { c.Auth.MaxWait = time.Second }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero viewport", mutate: func(c *ClientConfig) { c.UI.ViewportSize = 0 }, wantErr: ErrInvalidUIConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
