package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/flyout/internal/ui/input"
	"github.com/leighmacdonald/flyout/internal/ui/styles"
)

func newHelpModel(version string, configPath string) helpModel {
	return helpModel{
		helpView:   help.New(),
		version:    version,
		configPath: configPath,
	}
}

type helpModel struct {
	helpView   help.Model
	version    string
	configPath string
	width      int
	height     int
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	return m, nil
}

func (m helpModel) View() string {
	keys := input.Default

	bindings := m.helpView.FullHelpView([][]key.Binding{
		{
			keys.Open,
			keys.Accept,
			keys.Up,
			keys.Down,
		},
		{
			keys.Home,
			keys.End,
			keys.Help,
			keys.Quit,
		},
	})

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.HeaderStyle.Render("flyout "+m.version),
		"",
		bindings,
		"",
		styles.HelpStyle.Render("config: "+m.configPath),
	)

	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, body)
}
