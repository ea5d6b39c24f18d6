package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/flyout/internal/menu"
	"github.com/leighmacdonald/flyout/internal/overlay"
	"github.com/leighmacdonald/flyout/internal/store"
)

type menuOpenedMsg struct{}

type menuClosedMsg struct{}

type optionSelectedMsg struct {
	option menu.Option
}

type optionHoveredMsg struct {
	option menu.Option
}

type sideResolvedMsg struct {
	side overlay.Side
}

type historyRowsMsg struct {
	rows []store.Selection
}

type statusMsg struct {
	Message string
	Err     bool
}

type clearStatusMessageMsg struct{}

func setStatusMessage(msg string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: isError}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}
