package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrAuthorizationPending marks a transient device-code rejection:
	// the user has not approved the login yet (or the service asked the
	// client to slow down). The handshake keeps polling on this error and
	// treats everything else as terminal.
	ErrAuthorizationPending = errors.New("authorization pending")
)
