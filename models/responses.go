package models

// TokenGrant is the account service's OAuth token response, for both the
// client-credentials and the device-code grant.
type TokenGrant struct {
	// AccessToken is the issued bearer token.
	AccessToken string `json:"access_token"`

	// AccountID is the owning account id. Empty for client-credentials
	// grants.
	AccountID string `json:"account_id"`

	// DisplayName is the account's display name, when present.
	DisplayName string `json:"displayName"`

	// ExpiresAt is the token expiry timestamp in RFC 3339 form.
	ExpiresAt string `json:"expires_at"`
}

// OAuthError is the error payload the account service returns alongside 4xx
// token responses. The Code field drives the transient/terminal split of the
// device-code polling loop.
type OAuthError struct {
	// Code is the OAuth error code, e.g. "authorization_pending".
	Code string `json:"error"`

	// Message is the human-readable error description, when present.
	Message string `json:"errorMessage"`
}

// FriendRecord is one raw relationship as returned by the friends summary
// endpoint, before display names are resolved.
type FriendRecord struct {
	// AccountID is the friend's opaque account id, possibly carrying a
	// namespace prefix.
	AccountID string `json:"accountId"`

	// Mutual is the mutual-friend count.
	Mutual int `json:"mutual"`

	// Created is the friendship creation timestamp, when present.
	Created string `json:"created"`
}

// FriendsSummary is the friends service summary response. Only the friends
// collection is consumed; suggested and blocked lists are ignored.
type FriendsSummary struct {
	Friends []FriendRecord `json:"friends"`
}

// AccountInfo is one entry of the public account lookup response used for
// display-name resolution.
type AccountInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}
