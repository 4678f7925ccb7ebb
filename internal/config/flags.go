package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-account-url account service base URL
//	-friends-url friends service base URL
//	-request-timeout per-request timeout (e.g., "10s")
//	-poll-interval device-code polling interval (e.g., "2s")
//	-max-wait device-code polling ceiling (e.g., "3m")
//	-viewport number of visible rows in the selector
//	-purge clear the entire friend list without the selector
func ParseFlags() *StructuredConfig {
	var accountURL string
	var friendsURL string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var maxWait time.Duration
	var viewportSize int
	var purgeAll bool

	flag.StringVar(&accountURL, "account-url", "", "Account service base URL")
	flag.StringVar(&friendsURL, "friends-url", "", "Friends service base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Device-code polling interval (e.g., 2s)")
	flag.DurationVar(&maxWait, "max-wait", 0, "Device-code polling ceiling (e.g., 3m)")
	flag.IntVar(&viewportSize, "viewport", 0, "Visible rows in the friend selector")
	flag.BoolVar(&purgeAll, "purge", false, "Remove ALL friends without interactive selection")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PurgeAll: purgeAll,
		},
		Adapter: Adapter{
			AccountServiceURL: accountURL,
			FriendsServiceURL: friendsURL,
			RequestTimeout:    requestTimeout,
		},
		Auth: Auth{
			PollInterval: pollInterval,
			MaxWait:      maxWait,
		},
		UI: UI{
			ViewportSize: viewportSize,
		},
	}
}
