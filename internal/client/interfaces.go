package client

import (
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/service"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UserInterface is the terminal surface the orchestrator drives. *tui.TUI is
// the production implementation; tests substitute a scripted one.
type UserInterface interface {
	// Banner prints the application header.
	Banner()

	// ShowVerification presents the login link for the device
	// authorization.
	ShowVerification(device models.DeviceAuthorization)

	// WaitForLogin blocks until the user signals that the out-of-band
	// verification is done.
	WaitForLogin() error

	// LoggedIn announces the authenticated account.
	LoggedIn(displayName string)

	// SelectFriends runs the interactive multi-select and returns the
	// chosen account ids; an empty result means nothing to do.
	SelectFriends(entries []models.FriendEntry) ([]string, error)

	// Confirm asks a yes/no question.
	Confirm(message string) (bool, error)

	// ProgressSink returns the sink notified after each removal.
	ProgressSink() service.ProgressSink

	// ShowReport prints the final removal summary.
	ShowReport(report models.RemovalReport)

	// Info, Warn and Error print status lines of increasing severity.
	Info(message string)
	Warn(message string)
	Error(message string)
}
