package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalAccountID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "abc123", want: "abc123"},
		{raw: "epic:abc123", want: "abc123"},
		{raw: "ns:sub:abc123", want: "sub:abc123"},
		{raw: ":abc123", want: "abc123"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalAccountID(tt.raw), "raw=%q", tt.raw)
	}
}

func TestSortFriendEntries(t *testing.T) {
	entries := []FriendEntry{
		{AccountID: "acc-3", DisplayName: "charlie"},
		{AccountID: "acc-1", DisplayName: "Alpha"},
		{AccountID: "acc-4", DisplayName: "BRAVO"},
		{AccountID: "acc-2", DisplayName: "bravo"},
	}

	SortFriendEntries(entries)

	// Names compare case-insensitively; equal names fall back to the id.
	assert.Equal(t, "acc-1", entries[0].AccountID)
	assert.Equal(t, "acc-2", entries[1].AccountID)
	assert.Equal(t, "acc-4", entries[2].AccountID)
	assert.Equal(t, "acc-3", entries[3].AccountID)
}

func TestRemovalOutcome_OK(t *testing.T) {
	assert.True(t, RemovalOutcome{Status: RemovalSucceeded}.OK())
	assert.True(t, RemovalOutcome{Status: RemovalAlreadyAbsent}.OK())
	assert.False(t, RemovalOutcome{Status: RemovalFailed}.OK())
}
