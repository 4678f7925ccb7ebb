// Package tui implements the interactive terminal surface: the multi-select
// friend list, confirmation prompts, the login-wait prompt, and removal
// progress/report output.
//
// The selection core (selector.go) is a plain deterministic state machine;
// bubbletea only feeds it key events and renders its state.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

type TUI struct {
	viewportSize int

	out io.Writer
	in  *bufio.Reader

	logger *logger.Logger
}

func New(uiCfg config.ClientUI, log *logger.Logger) (*TUI, error) {
	if uiCfg.ViewportSize <= 0 {
		return nil, fmt.Errorf("viewport size must be positive, got %d", uiCfg.ViewportSize)
	}

	return &TUI{
		viewportSize: uiCfg.ViewportSize,
		out:          os.Stdout,
		in:           bufio.NewReader(os.Stdin),
		logger:       log,
	}, nil
}

// Banner prints the application header.
func (t *TUI) Banner() {
	fmt.Fprintln(t.out, titleStyle.Render("[!] Epic Games Friends List Remover"))
}

// ShowVerification prints the login link and copies it to the clipboard
// best-effort.
func (t *TUI) ShowVerification(device models.DeviceAuthorization) {
	fmt.Fprintln(t.out, "[>] Login Link:")
	fmt.Fprintln(t.out, linkStyle.Render(device.VerificationURL))

	if err := clipboard.WriteAll(device.VerificationURL); err != nil {
		t.logger.Debug().Err(err).Msg("clipboard copy failed")
		return
	}
	fmt.Fprintln(t.out, helpStyle.Render("(link copied to clipboard)"))
}

// WaitForLogin blocks until the user presses Enter, signalling that the
// out-of-band verification is done. Returns an error if stdin is closed
// before that.
func (t *TUI) WaitForLogin() error {
	fmt.Fprint(t.out, "\n[*] Press Enter once you have logged in ")
	if _, err := t.in.ReadString('\n'); err != nil {
		return fmt.Errorf("read login confirmation: %w", err)
	}

	return nil
}

// LoggedIn prints the post-handshake banner.
func (t *TUI) LoggedIn(displayName string) {
	if displayName == "" {
		displayName = "<you>"
	}
	fmt.Fprintf(t.out, "[+] Logged in as (%s)\n\n", displayName)
}

// SelectFriends runs the interactive multi-select over entries and returns
// the selected canonical account ids in display order. A cancelled session
// returns an empty selection, indistinguishable from confirming nothing;
// callers treat both as "do nothing".
func (t *TUI) SelectFriends(entries []models.FriendEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	fmt.Fprintln(t.out, titleStyle.Render("Use the interface below to select friends to remove."))

	finalModel, err := tea.NewProgram(newSelectModel(entries, t.viewportSize), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(selectModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.cancelled {
		return nil, nil
	}

	return result.state.selectedIDs(result.entries), nil
}

// Confirm asks a yes/no question and reports the answer. Cancelling counts
// as no.
func (t *TUI) Confirm(message string) (bool, error) {
	finalModel, err := tea.NewProgram(newConfirmModel(message)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.accepted, nil
}

// Info prints a plain status line.
func (t *TUI) Info(message string) {
	fmt.Fprintln(t.out, message)
}

// Warn prints a highlighted warning line.
func (t *TUI) Warn(message string) {
	fmt.Fprintln(t.out, warnStyle.Render(message))
}

// Error prints a highlighted fatal-failure line.
func (t *TUI) Error(message string) {
	fmt.Fprintln(t.out, errorStyle.Render(message))
}
