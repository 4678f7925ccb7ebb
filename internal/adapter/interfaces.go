// Package adapter provides transport-layer access to the remote Epic
// services.
//
// Three abstractions decouple the service layer from the wire protocol:
// [AuthProvider] for the device-code OAuth flow against the account service,
// [IdentityDirectory] for batched display-name resolution, and
// [FriendDirectory] for the friends service (relationship listing and
// removal). Both shipped implementations are HTTP/REST over resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapters_mock.go -package=mock

// AuthProvider defines the account-service operations needed for one
// device-code handshake and its teardown.
type AuthProvider interface {
	// ClientCredentialsToken exchanges the configured client credential
	// for a short-lived client token. The token is only good for
	// requesting a device code.
	ClientCredentialsToken(ctx context.Context) (models.TokenGrant, error)

	// IssueDeviceCode requests a device authorization using clientToken.
	// The result carries the device code to poll with and the
	// verification URL shown to the user.
	IssueDeviceCode(ctx context.Context, clientToken string) (models.DeviceAuthorization, error)

	// ExchangeDeviceCode attempts to exchange deviceCode for a user
	// credential. While the user has not yet approved the login it
	// returns an error wrapping [ErrAuthorizationPending]; any other
	// error is terminal for the handshake.
	ExchangeDeviceCode(ctx context.Context, deviceCode string) (models.TokenGrant, error)

	// Invalidate kills the session behind bearerToken. Best-effort:
	// callers are expected to log and swallow the returned error.
	Invalidate(ctx context.Context, bearerToken string) error
}

// IdentityDirectory resolves opaque account ids to display names.
type IdentityDirectory interface {
	// SetToken stores the user bearer token attached to all subsequent
	// lookups.
	SetToken(token string)

	// ResolveBatch resolves up to [MaxBatchSize] canonical account ids in
	// one call. Ids the service does not know are simply absent from the
	// returned map.
	ResolveBatch(ctx context.Context, accountIDs []string) (map[string]string, error)
}

// AccountAdapter groups the two account-service roles: the device-code OAuth
// flow and batched display-name resolution. Both are served by the same
// remote service and share one authenticated client.
type AccountAdapter interface {
	AuthProvider
	IdentityDirectory
}

// RemoveResult classifies a successful removal call.
type RemoveResult int

const (
	// Removed means the friendship existed and was deleted.
	Removed RemoveResult = iota

	// AlreadyAbsent means the friendship did not exist. Removal is
	// idempotent, so callers treat this as success.
	AlreadyAbsent
)

// FriendDirectory defines the friends-service operations.
type FriendDirectory interface {
	// SetToken stores the user bearer token attached to all subsequent
	// requests.
	SetToken(token string)

	// ListRelationships fetches the raw friend list of accountID.
	ListRelationships(ctx context.Context, accountID string) ([]models.FriendRecord, error)

	// RemoveRelationship deletes the friendship between accountID and
	// targetID. A missing friendship is reported as [AlreadyAbsent], not
	// as an error.
	RemoveRelationship(ctx context.Context, accountID, targetID string) (RemoveResult, error)

	// RemoveAllRelationships clears the entire friend list of accountID
	// in a single call.
	RemoveAllRelationships(ctx context.Context, accountID string) error
}
