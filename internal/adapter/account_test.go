package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

func newTestAccountAdapter(t *testing.T, handler http.Handler) AccountAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	adapterCfg := config.ClientAdapter{
		AccountServiceURL: server.URL,
		RequestTimeout:    5 * time.Second,
	}
	appCfg := config.ClientApp{ClientID: "client-id", ClientSecret: "client-secret"}

	adapter, err := NewAccountAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)

	return adapter
}

// ── NewAccountAdapter ────────────────────────────────────────────────────────

func TestNewAccountAdapter_InvalidURL(t *testing.T) {
	_, err := NewAccountAdapter(config.ClientAdapter{AccountServiceURL: ""}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

// ── ClientCredentialsToken ───────────────────────────────────────────────────

func TestAccountAdapter_ClientCredentialsToken_Success(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account/api/oauth/token", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": "client-token"})
	}))

	grant, err := adapter.ClientCredentialsToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "client-token", grant.AccessToken)
}

func TestAccountAdapter_ClientCredentialsToken_Unauthorized(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := adapter.ClientCredentialsToken(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

// ── IssueDeviceCode ──────────────────────────────────────────────────────────

func TestAccountAdapter_IssueDeviceCode_Success(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/api/oauth/deviceAuthorization", r.URL.Path)
		assert.Equal(t, "Bearer client-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"device_code":               "device-code-1",
			"user_code":                 "ABCD1234",
			"verification_uri_complete": "https://www.epicgames.com/activate?userCode=ABCD1234",
			"expires_in":                600,
			"interval":                  10,
		})
	}))

	device, err := adapter.IssueDeviceCode(context.Background(), "client-token")
	require.NoError(t, err)
	assert.Equal(t, "device-code-1", device.DeviceCode)
	assert.Equal(t, "ABCD1234", device.UserCode)
	assert.Equal(t, "https://www.epicgames.com/activate?userCode=ABCD1234", device.VerificationURL)
	assert.Equal(t, 600, device.ExpiresIn)
}

// ── ExchangeDeviceCode ───────────────────────────────────────────────────────

func TestAccountAdapter_ExchangeDeviceCode_Authorized(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "device_code", r.PostFormValue("grant_type"))
		assert.Equal(t, "device-code-1", r.PostFormValue("device_code"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "bearer-token",
			"account_id":   "acc-1",
			"displayName":  "PlayerOne",
		})
	}))

	grant, err := adapter.ExchangeDeviceCode(context.Background(), "device-code-1")
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", grant.AccessToken)
	assert.Equal(t, "acc-1", grant.AccountID)
	assert.Equal(t, "PlayerOne", grant.DisplayName)
}

func TestAccountAdapter_ExchangeDeviceCode_PendingCodes(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{code: "authorization_pending", status: http.StatusBadRequest},
		{code: "invalid_grant", status: http.StatusBadRequest},
		{code: "slow_down", status: http.StatusBadRequest},
		{code: "authorization_pending", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%d", tt.code, tt.status), func(t *testing.T) {
			adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(models.OAuthError{Code: tt.code, Message: "not yet"})
			}))

			_, err := adapter.ExchangeDeviceCode(context.Background(), "device-code-1")
			require.ErrorIs(t, err, ErrAuthorizationPending)
		})
	}
}

func TestAccountAdapter_ExchangeDeviceCode_TerminalOAuthError(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.OAuthError{Code: "access_denied", Message: "user declined"})
	}))

	_, err := adapter.ExchangeDeviceCode(context.Background(), "device-code-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthorizationPending)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestAccountAdapter_ExchangeDeviceCode_ServerError(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := adapter.ExchangeDeviceCode(context.Background(), "device-code-1")
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrAuthorizationPending)
}

// ── Invalidate ───────────────────────────────────────────────────────────────

func TestAccountAdapter_Invalidate_Success(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/account/api/oauth/sessions/kill/bearer-token", r.URL.Path)
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, adapter.Invalidate(context.Background(), "bearer-token"))
}

// ── ResolveBatch ─────────────────────────────────────────────────────────────

func TestAccountAdapter_ResolveBatch_ArrayResponse(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/api/public/account", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("locale"))
		assert.Equal(t, []string{"acc-1", "acc-2"}, r.URL.Query()["accountId"])
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.AccountInfo{
			{ID: "acc-1", DisplayName: "PlayerOne"},
			{ID: "acc-2", DisplayName: "PlayerTwo"},
		})
	}))
	adapter.SetToken("bearer-token")

	names, err := adapter.ResolveBatch(context.Background(), []string{"acc-1", "acc-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"acc-1": "PlayerOne", "acc-2": "PlayerTwo"}, names)
}

func TestAccountAdapter_ResolveBatch_SingleObjectResponse(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AccountInfo{ID: "acc-1", DisplayName: "PlayerOne"})
	}))
	adapter.SetToken("bearer-token")

	names, err := adapter.ResolveBatch(context.Background(), []string{"acc-1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"acc-1": "PlayerOne"}, names)
}

func TestAccountAdapter_ResolveBatch_SkipsNamelessAccounts(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.AccountInfo{
			{ID: "acc-1", DisplayName: "PlayerOne"},
			{ID: "acc-2"},
		})
	}))
	adapter.SetToken("bearer-token")

	names, err := adapter.ResolveBatch(context.Background(), []string{"acc-1", "acc-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"acc-1": "PlayerOne"}, names)
}

func TestAccountAdapter_ResolveBatch_RejectsOversizedBatch(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))

	ids := make([]string, MaxBatchSize+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("acc-%d", i)
	}

	_, err := adapter.ResolveBatch(context.Background(), ids)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestAccountAdapter_ResolveBatch_EmptyInputSkipsRequest(t *testing.T) {
	adapter := newTestAccountAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))

	names, err := adapter.ResolveBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

// ── decodeAccountList ────────────────────────────────────────────────────────

func TestDecodeAccountList_Malformed(t *testing.T) {
	_, err := decodeAccountList([]byte("not json"))
	require.Error(t, err)
}
