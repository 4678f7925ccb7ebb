package models

import (
	"sort"
	"strings"
)

// FriendEntry is a single row of the working friend list: a raw relationship
// record merged with its resolved display name. Entries are immutable once
// constructed.
type FriendEntry struct {
	// AccountID is the opaque unique identifier of the friend account.
	AccountID string

	// DisplayName is the resolved human-readable name, or a placeholder
	// when the identity directory did not return one.
	DisplayName string

	// MutualCount is the number of mutual friends reported by the
	// friends service.
	MutualCount int

	// CreatedAt is the raw timestamp of when the friendship was created,
	// empty when the service omits it.
	CreatedAt string
}

// SortFriendEntries orders entries by (lowercased display name, account id)
// ascending, in place. The ordering is deterministic and stable, so the
// selection UI always shows the same list for the same input.
func SortFriendEntries(entries []FriendEntry) {
	sort.Slice(entries, func(i, j int) bool {
		ni, nj := strings.ToLower(entries[i].DisplayName), strings.ToLower(entries[j].DisplayName)
		if ni != nj {
			return ni < nj
		}
		return entries[i].AccountID < entries[j].AccountID
	})
}

// CanonicalAccountID strips an optional namespace prefix ("ns:id") and
// returns the suffix after the first separator. Ids without a separator are
// returned unchanged. The canonical form is the stable key used for identity
// resolution and removal.
func CanonicalAccountID(raw string) string {
	if _, id, found := strings.Cut(raw, ":"); found {
		return id
	}
	return raw
}
