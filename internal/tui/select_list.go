package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

type selectModel struct {
	entries      []models.FriendEntry
	state        selectionState
	viewportSize int
	cancelled    bool
}

func newSelectModel(entries []models.FriendEntry, viewportSize int) selectModel {
	return selectModel{
		entries:      entries,
		state:        newSelectionState(),
		viewportSize: viewportSize,
	}
}

func (m selectModel) current() (models.FriendEntry, bool) {
	if len(m.entries) == 0 || m.state.cursor < 0 || m.state.cursor >= len(m.entries) {
		return models.FriendEntry{}, false
	}
	return m.entries[m.state.cursor], true
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.state.moveUp(len(m.entries))
		case key.Matches(msg, keys.down):
			m.state.moveDown(len(m.entries))
		case key.Matches(msg, keys.toggle):
			if entry, ok := m.current(); ok {
				m.state.toggle(entry.AccountID)
			}
		case key.Matches(msg, keys.all):
			m.state.toggleAll(m.entries)
		case key.Matches(msg, keys.enter):
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			m.cancelled = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		return m, nil
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Friends (interactive)"))
	b.WriteString("\n\n")

	start, end := viewportBounds(m.state.cursor, len(m.entries), m.viewportSize)
	for i := start; i < end; i++ {
		entry := m.entries[i]
		isCurrent := i == m.state.cursor
		isSelected := m.state.isSelected(entry.AccountID)

		marker := "[ ]"
		if isSelected {
			marker = "[x]"
		}
		cursor := "  "
		if isCurrent {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%s %-32s %6d  %s",
			cursor, marker, entry.DisplayName, entry.MutualCount, formatSince(entry.CreatedAt))

		switch {
		case isCurrent && isSelected:
			row = pickedRowStyle.Render(row)
		case isCurrent:
			row = cursorRowStyle.Render(row)
		case isSelected:
			row = selectedStyle.Render(row)
		}

		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d/%d  •  %d selected\n", m.state.cursor+1, len(m.entries), len(m.state.selected)))
	b.WriteString(helpStyle.Render("↑/↓ move  x select  a all/none  enter confirm  q cancel"))
	return b.String()
}

// formatSince trims the friendship timestamp to "YYYY-MM-DD HH:MM:SS".
func formatSince(created string) string {
	if len(created) > 19 {
		created = created[:19]
	}
	return strings.ReplaceAll(created, "T", " ")
}
