// Package service implements the core flows of the friend-list remover: the
// device-code auth handshake, batched identity resolution, friend-list
// assembly, and bulk removal.
package service

import (
	"context"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

// AuthHandshakeService drives the device-code grant from nothing to an
// authorized user session.
type AuthHandshakeService interface {
	// Start exchanges the configured client credential for a client token
	// and requests a device authorization. The returned value carries the
	// verification URL to show the user. Any failure here is fatal to the
	// run; nothing is retried.
	Start(ctx context.Context) (models.DeviceAuthorization, error)

	// Await polls the device-code exchange until the user approves the
	// login, the configured ceiling elapses, or the service rejects the
	// code for good. Polling never runs faster than the configured
	// interval. Returns exactly one of an authorized session or a
	// terminal error.
	Await(ctx context.Context, deviceCode string) (models.AuthSession, error)

	// Invalidate kills the session best-effort. Failures are logged and
	// swallowed, never escalated.
	Invalidate(ctx context.Context, session models.AuthSession)
}

// IdentityResolverService maps opaque account identifiers to display names.
type IdentityResolverService interface {
	// Resolve canonicalises rawIDs, partitions them into directory-sized
	// batches, resolves the batches, and merges the results into one
	// mapping. Ids unknown to the directory are absent from the result.
	// Any batch failure aborts the whole resolution.
	Resolve(ctx context.Context, rawIDs []string) (map[string]string, error)
}

// FriendListService assembles the working friend list shown in the selector.
type FriendListService interface {
	// List fetches the raw relationships of accountID, resolves their
	// display names up front, and returns the merged entries sorted by
	// (lowercased display name, account id).
	List(ctx context.Context, accountID string) ([]models.FriendEntry, error)
}

// ProgressSink receives a notification after each completed removal.
type ProgressSink interface {
	Progress(completed, total int)
}

// ProgressFunc adapts a function to the [ProgressSink] interface.
type ProgressFunc func(completed, total int)

func (f ProgressFunc) Progress(completed, total int) { f(completed, total) }

// BulkRemoverService applies the removal to a confirmed selection.
type BulkRemoverService interface {
	// RemoveSelected removes every target sequentially, never aborting on
	// a per-item failure, and reports progress after each item. The
	// returned report accounts for every submitted target exactly once,
	// in input order. An already-absent friendship counts as success.
	RemoveSelected(ctx context.Context, accountID string, targets []string, progress ProgressSink) models.RemovalReport

	// RemoveAll clears the entire friend list in a single bulk call.
	RemoveAll(ctx context.Context, accountID string) error
}
