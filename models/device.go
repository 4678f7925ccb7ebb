package models

// DeviceAuthorization is the result of requesting a device code: the code the
// client polls with and the URL the user opens to approve the login
// out-of-band.
type DeviceAuthorization struct {
	// DeviceCode is the opaque token exchanged for a user credential once
	// the user has approved the login.
	DeviceCode string `json:"device_code"`

	// UserCode is the short code shown to the user on the verification
	// page.
	UserCode string `json:"user_code"`

	// VerificationURL is the complete verification link the user opens in
	// a browser.
	VerificationURL string `json:"verification_uri_complete"`

	// ExpiresIn is the device code lifetime in seconds.
	ExpiresIn int `json:"expires_in"`

	// Interval is the minimum polling interval in seconds suggested by
	// the service.
	Interval int `json:"interval"`
}
