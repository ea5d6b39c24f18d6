package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/flyout/internal/store"
	"github.com/leighmacdonald/flyout/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// historyModel shows the most recent selections recorded in the store.
type historyModel struct {
	rows   []store.Selection
	width  int
	height int
}

func newHistoryModel() historyModel {
	return historyModel{}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyRowsMsg:
		m.rows = msg.rows
	case panelSizeMsg:
		m.width = msg.width
		m.height = msg.height
	}

	return m, nil
}

func (m historyModel) View() string {
	if m.width <= 0 {
		return ""
	}

	// Border and padding eat four columns.
	innerWidth := max(10, m.width-4)

	lines := []string{styles.HistoryTitle.Render("Recent selections")}
	if len(m.rows) == 0 {
		lines = append(lines, styles.HistoryTime.Render("nothing selected yet"))
	}

	for _, row := range m.rows {
		label := wordwrap.String(row.OptionLabel, innerWidth)
		when := humanize.RelTime(row.CreatedOn, time.Now(), "ago", "from now")
		lines = append(lines,
			styles.HistoryRow.Render(label),
			styles.HistoryTime.Render(when),
		)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, lines...)

	return styles.HistoryPanel.Width(m.width - 2).MaxHeight(m.height).Render(view)
}
