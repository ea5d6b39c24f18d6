package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#f4722b")

	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#3e3e3e")
	White  = lipgloss.Color("#cccccc")
	Whiter = lipgloss.Color("#aaaaaa")
	Green  = lipgloss.Color("#4d7455")
	Blue   = lipgloss.Color("#5885A2")

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(Accent).Align(lipgloss.Center)

	Trigger       = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(Black).Background(Blue)
	TriggerOpen   = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(Black).Background(Accent)
	MenuBorder    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Gray)
	MenuItem      = lipgloss.NewStyle().Padding(0, 1).Foreground(White)
	MenuItemFocus = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(Black).Background(Blue)
	MenuItemOff   = lipgloss.NewStyle().Padding(0, 1).Faint(true).Foreground(Gray)

	HistoryTitle = lipgloss.NewStyle().Bold(true).Foreground(Whiter)
	HistoryRow   = lipgloss.NewStyle().Foreground(White)
	HistoryTime  = lipgloss.NewStyle().Faint(true).Foreground(Whiter)
	HistoryPanel = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Gray).Padding(0, 1)

	StatusBar   = lipgloss.NewStyle().Foreground(White).Background(Gray)
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8383B")).Background(Gray).Bold(true)
	StatusOK    = lipgloss.NewStyle().Foreground(Green).Background(Gray)

	HelpStyle = lipgloss.NewStyle().Foreground(Whiter)
)
