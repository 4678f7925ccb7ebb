package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/service"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       UserInterface
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UserInterface, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errors.New("services, ui and config are required")
	}

	return &App{cfg: cfg, services: services, ui: ui, logger: log}, nil
}

// Run executes one full session: device-code handshake, friend-list
// assembly, interactive selection, confirmation, bulk removal, teardown.
//
// The session is invalidated exactly once on every exit path after the
// handshake succeeds, including fatal errors and cancellation. Nothing
// destructive runs unless the user confirms a non-empty selection.
func (a *App) Run() error {
	ctx := context.Background()

	a.ui.Banner()

	device, err := a.services.Handshake.Start(ctx)
	if err != nil {
		a.ui.Error("Could not start the login handshake.")
		return err
	}

	a.ui.ShowVerification(device)
	if err = a.ui.WaitForLogin(); err != nil {
		return err
	}

	session, err := a.services.Handshake.Await(ctx, device.DeviceCode)
	if err != nil {
		a.ui.Error("User not logged in or device code expired.")
		return err
	}

	defer func() {
		a.services.Handshake.Invalidate(ctx, session)
		a.ui.Warn("Session has been killed.")
	}()

	a.services.BindSession(session)
	a.ui.LoggedIn(session.DisplayName)

	entries, err := a.services.Friends.List(ctx, session.AccountID)
	if err != nil {
		a.ui.Error("Could not load the friend list.")
		return err
	}
	if len(entries) == 0 {
		a.ui.Warn("No friends found.")
		return nil
	}

	if a.cfg.App.PurgeAll {
		return a.purge(ctx, session, len(entries))
	}

	selected, err := a.ui.SelectFriends(entries)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		a.ui.Warn("No selection made or cancelled. Exiting without removing anyone.")
		return nil
	}

	confirmed, err := a.ui.Confirm(fmt.Sprintf("Remove %d friend(s)?", len(selected)))
	if err != nil {
		return err
	}
	if !confirmed {
		a.ui.Warn("Cancelled. No changes made.")
		return nil
	}

	report := a.services.Remover.RemoveSelected(ctx, session.AccountID, selected, a.ui.ProgressSink())
	a.ui.ShowReport(report)

	return nil
}

// purge clears the entire friend list with the bulk endpoint instead of the
// interactive per-friend selection. Triggered by the -purge flag.
func (a *App) purge(ctx context.Context, session models.AuthSession, total int) error {
	confirmed, err := a.ui.Confirm(fmt.Sprintf("Remove ALL %d friend(s)?", total))
	if err != nil {
		return err
	}
	if !confirmed {
		a.ui.Warn("Cancelled. No changes made.")
		return nil
	}

	if err = a.services.Remover.RemoveAll(ctx, session.AccountID); err != nil {
		a.ui.Error("Could not clear the friend list.")
		return err
	}

	a.ui.Info(fmt.Sprintf("Removed: %d", total))
	return nil
}
