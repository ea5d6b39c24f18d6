package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/flyout/internal/config"
	"github.com/leighmacdonald/flyout/internal/menu"
	"github.com/leighmacdonald/flyout/internal/store"
	"github.com/leighmacdonald/flyout/internal/ui/input"
	"github.com/leighmacdonald/flyout/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

const (
	demoMenuID     = "demo"
	historyWidth   = 34
	storageTimeout = time.Second * 5
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	width        int
	height       int
	currentView  contentView
	flyoutModel  tea.Model
	historyModel tea.Model
	statusModel  tea.Model
	helpModel    tea.Model
	selections   *store.Selections
	historyLimit int
	headerHeight int
	footerHeight int
}

func newRootModel(conf config.Config, selections *store.Selections, version string, configPath string) *rootModel {
	return &rootModel{
		currentView:  viewMain,
		flyoutModel:  newFlyoutModel(conf),
		historyModel: newHistoryModel(),
		statusModel:  newStatusBarModel(version, conf.Side()),
		helpModel:    newHelpModel(version, configPath),
		selections:   selections,
		historyLimit: conf.HistoryLimit,
		headerHeight: 1,
		footerHeight: 1,
	}
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("flyout"),
		m.flyoutModel.Init(),
		m.historyModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
		m.loadHistory(),
	)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - m.headerHeight - m.footerHeight

		var flyoutCmd tea.Cmd
		m.flyoutModel, flyoutCmd = m.flyoutModel.Update(panelSizeMsg{width: m.width - historyWidth, height: contentHeight})
		m.historyModel, _ = m.historyModel.Update(panelSizeMsg{width: historyWidth, height: contentHeight})
		m.statusModel, _ = m.statusModel.Update(inMsg)
		m.helpModel, _ = m.helpModel.Update(inMsg)

		return m, flyoutCmd
	case tea.KeyMsg:
		keys := input.Default
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			if m.currentView == viewHelp {
				m.currentView = viewMain
			} else {
				m.currentView = viewHelp
			}

			return m, nil
		}

		if m.currentView == viewHelp {
			if key.Matches(msg, keys.Back) {
				m.currentView = viewMain
			}

			return m, nil
		}

		var cmd tea.Cmd
		m.flyoutModel, cmd = m.flyoutModel.Update(inMsg)

		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.flyoutModel, cmd = m.flyoutModel.Update(inMsg)

		return m, cmd
	case optionSelectedMsg:
		slog.Debug("Option selected", slog.String("option", msg.option.ID))

		cmds = append(cmds,
			m.recordSelection(msg.option),
			setStatusMessage("Selected "+msg.option.Label, false))
	case config.Config:
		m.historyLimit = msg.HistoryLimit

		var cmd tea.Cmd
		m.flyoutModel, cmd = m.flyoutModel.Update(inMsg)
		cmds = append(cmds, cmd, setStatusMessage("Configuration reloaded", false))
	case historyRowsMsg:
		m.historyModel, _ = m.historyModel.Update(inMsg)

		return m, nil
	}

	var statusCmd tea.Cmd
	m.statusModel, statusCmd = m.statusModel.Update(inMsg)
	cmds = append(cmds, statusCmd)

	return m, tea.Batch(cmds...)
}

// recordSelection persists the pick and reloads the history panel.
func (m *rootModel) recordSelection(option menu.Option) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()

		if err := m.selections.Record(ctx, demoMenuID, option); err != nil {
			slog.Error("Failed to record selection", slog.String("error", err.Error()))

			return statusMsg{Message: "Failed to save selection", Err: true}
		}

		if err := m.selections.Prune(ctx, m.historyLimit); err != nil {
			slog.Error("Failed to prune selections", slog.String("error", err.Error()))
		}

		rows, errRecent := m.selections.Recent(ctx, m.historyLimit)
		if errRecent != nil {
			return statusMsg{Message: "Failed to load history", Err: true}
		}

		return historyRowsMsg{rows: rows}
	}
}

func (m *rootModel) loadHistory() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()

		rows, errRecent := m.selections.Recent(ctx, m.historyLimit)
		if errRecent != nil {
			slog.Error("Failed to load history", slog.String("error", errRecent.Error()))

			return statusMsg{Message: "Failed to load history", Err: true}
		}

		return historyRowsMsg{rows: rows}
	}
}

func (m *rootModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := styles.HeaderStyle.Width(m.width).Render("flyout demo")

	var content string
	if m.currentView == viewHelp {
		content = m.helpModel.View()
	} else {
		panel := lipgloss.NewStyle().Width(m.width - historyWidth).Render(m.flyoutModel.View())
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			panel,
			m.historyModel.View(),
		)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		m.statusModel.View(),
	))
}
