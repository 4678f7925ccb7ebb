package models

import "time"

// AuthSession is the user credential obtained from a completed device-code
// handshake. It is owned by the orchestrator for the lifetime of one run,
// never persisted, and invalidated (best-effort) at teardown.
type AuthSession struct {
	// AccountID is the authenticated user's account identifier.
	AccountID string

	// BearerToken is the user access token attached to all authenticated
	// requests. Sensitive; must never be logged in full.
	BearerToken string

	// DisplayName is the authenticated user's display name, when the
	// token grant carried one.
	DisplayName string

	// ObtainedAt is when the handshake completed.
	ObtainedAt time.Time
}
