package service

import "errors"

var (
	// ErrHandshakeFailed wraps terminal failures of the device-code
	// handshake (network errors, revoked credentials, malformed codes).
	ErrHandshakeFailed = errors.New("device code handshake failed")

	// ErrHandshakeExpired means the user did not approve the login before
	// the polling ceiling elapsed.
	ErrHandshakeExpired = errors.New("login approval not received in time")

	// ErrIncompleteGrant means the token response was missing the account
	// id or the access token.
	ErrIncompleteGrant = errors.New("token grant missing account id or access token")
)
