package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/utils"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

type friendsAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewFriendsAdapter constructs an HTTP/REST implementation of
// [FriendDirectory] against the friends service. It normalises and validates
// the base URL from adapterCfg.FriendsServiceURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.FriendsServiceURL is empty or cannot be
// parsed as a valid URL.
func NewFriendsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (FriendDirectory, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.FriendsServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid friends service address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &friendsAdapter{client: client, logger: logger}, nil
}

// SetToken implements [FriendDirectory]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// requests.
func (h *friendsAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// ListRelationships implements [FriendDirectory]. It GETs the friends
// summary of accountID and returns the raw relationship records, display
// names unresolved.
func (h *friendsAdapter) ListRelationships(ctx context.Context, accountID string) ([]models.FriendRecord, error) {
	var summary models.FriendsSummary

	resp, err := h.authedRequest(ctx).
		SetResult(&summary).
		Get("/friends/api/v1/" + url.PathEscape(accountID) + "/summary")
	if err != nil {
		return nil, fmt.Errorf("friends summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return summary.Friends, nil
}

// RemoveRelationship implements [FriendDirectory]. It DELETEs the friendship
// between accountID and targetID. 200, 202 and 204 all mean removed; a 404
// means the friendship no longer existed and is reported as [AlreadyAbsent]
// so callers can treat the removal as idempotent.
func (h *friendsAdapter) RemoveRelationship(ctx context.Context, accountID, targetID string) (RemoveResult, error) {
	resp, err := h.authedRequest(ctx).
		Delete("/friends/api/v1/" + url.PathEscape(accountID) + "/friends/" + url.PathEscape(targetID))
	if err != nil {
		return Removed, fmt.Errorf("remove friend request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return Removed, nil
	case http.StatusNotFound:
		return AlreadyAbsent, nil
	default:
		return Removed, mapHTTPError(resp)
	}
}

// RemoveAllRelationships implements [FriendDirectory]. It clears the entire
// friend list of accountID with the bulk endpoint.
func (h *friendsAdapter) RemoveAllRelationships(ctx context.Context, accountID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/friends/api/v1/" + url.PathEscape(accountID) + "/friends")
	if err != nil {
		return fmt.Errorf("clear friends request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *friendsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
