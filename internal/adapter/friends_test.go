package adapter

import (
	"context"
	"encoding/json"
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

func newTestFriendsAdapter(t *testing.T, handler http.Handler) FriendDirectory {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	adapterCfg := config.ClientAdapter{
		FriendsServiceURL: server.URL,
		RequestTimeout:    5 * time.Second,
	}

	adapter, err := NewFriendsAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	adapter.SetToken("bearer-token")

	return adapter
}

// ── ListRelationships ────────────────────────────────────────────────────────

func TestFriendsAdapter_ListRelationships_Success(t *testing.T) {
	adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/friends/api/v1/me/summary", r.URL.Path)
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.FriendsSummary{Friends: []models.FriendRecord{
			{AccountID: "acc-1", Mutual: 2, Created: "2024-01-01T10:00:00.000Z"},
			{AccountID: "acc-2"},
		}})
	}))

	records, err := adapter.ListRelationships(context.Background(), "me")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "acc-1", records[0].AccountID)
	assert.Equal(t, 2, records[0].Mutual)
}

func TestFriendsAdapter_ListRelationships_Unauthorized(t *testing.T) {
	adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := adapter.ListRelationships(context.Background(), "me")
	require.ErrorIs(t, err, ErrUnauthorized)
}

// ── RemoveRelationship ───────────────────────────────────────────────────────

func TestFriendsAdapter_RemoveRelationship_Removed(t *testing.T) {
	statuses := []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/friends/api/v1/me/friends/acc-1", r.URL.Path)

				w.WriteHeader(status)
			}))

			result, err := adapter.RemoveRelationship(context.Background(), "me", "acc-1")
			require.NoError(t, err)
			assert.Equal(t, Removed, result)
		})
	}
}

func TestFriendsAdapter_RemoveRelationship_NotFoundIsAlreadyAbsent(t *testing.T) {
	adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	result, err := adapter.RemoveRelationship(context.Background(), "me", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, AlreadyAbsent, result)
}

func TestFriendsAdapter_RemoveRelationship_ServerError(t *testing.T) {
	adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := adapter.RemoveRelationship(context.Background(), "me", "acc-1")
	require.ErrorIs(t, err, ErrInternalServerError)
}

// ── RemoveAllRelationships ───────────────────────────────────────────────────

func TestFriendsAdapter_RemoveAllRelationships_Success(t *testing.T) {
	adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/friends/api/v1/me/friends", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, adapter.RemoveAllRelationships(context.Background(), "me"))
}

func TestFriendsAdapter_RemoveAllRelationships_Forbidden(t *testing.T) {
	adapter := newTestFriendsAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	require.ErrorIs(t, adapter.RemoveAllRelationships(context.Background(), "me"), ErrForbidden)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host gets https", raw: "account-public-service-prod.ol.epicgames.com", want: "https://account-public-service-prod.ol.epicgames.com"},
		{name: "explicit http kept", raw: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{name: "trailing slash trimmed", raw: "https://example.com/", want: "https://example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
