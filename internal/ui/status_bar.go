package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/flyout/internal/overlay"
	"github.com/leighmacdonald/flyout/internal/ui/styles"
)

const clearMessageTimeout = time.Second * 10

// statusBarModel is the single line footer showing menu state and transient
// status messages.
type statusBarModel struct {
	version string
	width   int
	open    bool
	side    overlay.Side
	hovered string
	status  statusMsg
}

func newStatusBarModel(version string, side overlay.Side) statusBarModel {
	return statusBarModel{version: version, side: side}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case menuOpenedMsg:
		m.open = true
	case menuClosedMsg:
		m.open = false
		m.hovered = ""
	case sideResolvedMsg:
		m.side = msg.side
	case optionHoveredMsg:
		m.hovered = msg.option.Label
	case statusMsg:
		m.status = msg

		return m, clearStatusAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.status = statusMsg{}
	}

	return m, nil
}

func (m statusBarModel) View() string {
	state := "closed"
	if m.open {
		state = "open"
	}

	left := styles.StatusBar.Render(fmt.Sprintf(" flyout %s │ menu %s │ side %s ", m.version, state, m.side))
	if m.hovered != "" {
		left += styles.StatusBar.Render(fmt.Sprintf("│ %s ", m.hovered))
	}

	right := ""
	if m.status.Message != "" {
		style := styles.StatusOK
		if m.status.Err {
			style = styles.StatusError
		}
		right = style.Render(" " + m.status.Message + " ")
	}

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))

	return left + styles.StatusBar.Render(pad(gap)) + right
}
