package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/flyout/internal/config"
	"github.com/leighmacdonald/flyout/internal/menu"
	"github.com/leighmacdonald/flyout/internal/overlay"
	"github.com/leighmacdonald/flyout/internal/ui/input"
	"github.com/leighmacdonald/flyout/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	triggerZone = "trigger"
	anchorLeft  = 2
)

// flyoutModel renders the demo trigger button and its flyout menu. It owns
// the menu controller and feeds it translated key and mouse input; the
// resolved overlay side is recomputed on every open and every resize.
type flyoutModel struct {
	id         string
	controller *menu.Controller
	preferred  overlay.Side
	side       overlay.Side
	width      int
	height     int
	events     []tea.Msg
}

func newFlyoutModel(conf config.Config) *flyoutModel {
	model := &flyoutModel{
		id:        zone.NewPrefix(),
		preferred: conf.Side(),
		side:      conf.Side(),
	}

	model.controller = menu.NewController(conf.MenuOptions(), menu.Config{
		InitialOpen:   conf.OpenOnStart,
		CloseOnSelect: conf.Policy(),
	}, menu.Callbacks{
		OnOpen:   func() { model.events = append(model.events, menuOpenedMsg{}) },
		OnClose:  func() { model.events = append(model.events, menuClosedMsg{}) },
		OnSelect: func(option menu.Option) { model.events = append(model.events, optionSelectedMsg{option: option}) },
		OnHover:  func(option menu.Option) { model.events = append(model.events, optionHoveredMsg{option: option}) },
	})

	return model
}

func (m *flyoutModel) Init() tea.Cmd {
	return nil
}

func (m *flyoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if engineKey, ok := translateKey(msg); ok {
			m.controller.HandleKey(engineKey)
			m.resolve()

			return m, m.drain()
		}

		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case panelSizeMsg:
		m.width = msg.width
		m.height = msg.height
		m.resolve()

		return m, m.drain()
	case config.Config:
		m.controller.Navigator().SetOptions(msg.MenuOptions())
		m.controller.SetPolicy(msg.Policy())
		m.preferred = msg.Side()
		m.resolve()

		return m, m.drain()
	}

	return m, nil
}

type panelSizeMsg struct {
	width  int
	height int
}

// translateKey maps terminal key events onto the identifiers the menu engine
// understands. Unmapped keys are left for other models.
func translateKey(msg tea.KeyMsg) (menu.Key, bool) {
	keys := input.Default

	switch {
	case key.Matches(msg, keys.Up):
		return menu.KeyArrowUp, true
	case key.Matches(msg, keys.Down):
		return menu.KeyArrowDown, true
	case key.Matches(msg, keys.Home):
		return menu.KeyHome, true
	case key.Matches(msg, keys.End):
		return menu.KeyEnd, true
	case key.Matches(msg, keys.Accept):
		return menu.KeyEnter, true
	case key.Matches(msg, keys.Open):
		return menu.KeySpace, true
	case key.Matches(msg, keys.Back):
		return menu.KeyEscape, true
	case key.Matches(msg, keys.Tab):
		return menu.KeyTab, true
	default:
		return "", false
	}
}

func (m *flyoutModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		for _, option := range m.controller.Navigator().Options() {
			if option.Disabled || !zone.Get(m.id+option.ID).InBounds(msg) {
				continue
			}

			// Hover only on entry, not on every motion event inside the row.
			if focused, ok := m.controller.Navigator().Focused(); ok && focused.ID == option.ID {
				return nil
			}

			m.controller.Hover(option)

			return m.drain()
		}

		return nil
	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}

		if zone.Get(m.id + triggerZone).InBounds(msg) {
			m.controller.Toggle(!m.controller.IsOpen())
			m.resolve()

			return m.drain()
		}

		for _, option := range m.controller.Navigator().Options() {
			if option.Disabled || !zone.Get(m.id+option.ID).InBounds(msg) {
				continue
			}

			m.controller.Select(option)

			return m.drain()
		}

		return nil
	default:
		return nil
	}
}

// resolve remeasures the rendered menu and recomputes which side of the
// trigger it should open on.
func (m *flyoutModel) resolve() {
	if !m.controller.IsOpen() || m.width <= 0 || m.height <= 0 {
		return
	}

	menuView := m.renderMenu()
	menuRect := overlay.Rect{
		Width:  lipgloss.Width(menuView),
		Height: lipgloss.Height(menuView),
	}

	side := overlay.ResolveSide(menuRect, m.anchorRect(), overlay.Viewport{
		Width:  m.width,
		Height: m.height,
	}, m.preferred)

	if side != m.side {
		m.side = side
		m.events = append(m.events, sideResolvedMsg{side: side})
	}
}

// anchorRect measures the trigger position within the panel.
func (m *flyoutModel) anchorRect() overlay.Rect {
	trigger := m.renderTrigger()
	top := m.height / 2

	return overlay.Rect{
		Top:    top,
		Bottom: top + 1,
		Left:   anchorLeft,
		Right:  anchorLeft + lipgloss.Width(trigger),
		Width:  lipgloss.Width(trigger),
		Height: 1,
	}
}

func (m *flyoutModel) renderTrigger() string {
	style := styles.Trigger
	if m.controller.IsOpen() {
		style = styles.TriggerOpen
	}

	return zone.Mark(m.id+triggerZone, style.Render("Session ▾"))
}

func (m *flyoutModel) renderMenu() string {
	focusedID := ""
	if focused, ok := m.controller.Navigator().Focused(); ok {
		focusedID = focused.ID
	}

	width := 0
	options := m.controller.Navigator().Options()
	for _, option := range options {
		width = max(width, lipgloss.Width(option.Label)+2)
	}

	rows := make([]string, 0, len(options))
	for _, option := range options {
		style := styles.MenuItem
		switch {
		case option.Disabled:
			style = styles.MenuItemOff
		case option.ID == focusedID:
			style = styles.MenuItemFocus
		}

		row := style.Width(width).Render(option.Label)
		if !option.Disabled {
			row = zone.Mark(m.id+option.ID, row)
		}

		rows = append(rows, row)
	}

	return styles.MenuBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// View paints the panel as a row canvas: the trigger sits at the anchor, the
// open menu is spliced in at the origin computed for the resolved side. Rows
// falling outside the panel are cropped, the engine itself never clamps.
func (m *flyoutModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := make([]string, m.height)
	anchor := m.anchorRect()
	trigger := m.renderTrigger()

	if anchor.Top >= 0 && anchor.Top < m.height {
		rows[anchor.Top] = pad(anchor.Left) + trigger
	}

	if m.controller.IsOpen() {
		menuView := m.renderMenu()
		menuRect := overlay.Rect{
			Width:  lipgloss.Width(menuView),
			Height: lipgloss.Height(menuView),
		}

		originX, originY := overlay.Origin(menuRect, anchor, m.side)

		for i, line := range strings.Split(menuView, "\n") {
			row := originY + i
			if row < 0 || row >= m.height {
				continue
			}

			switch {
			case row == anchor.Top && m.side == overlay.Right:
				rows[row] = pad(anchor.Left) + trigger + line
			case row == anchor.Top && m.side == overlay.Left:
				rows[row] = pad(max(0, originX)) + line + trigger
			case row == anchor.Top:
				// Vertical placements never share the anchor row.
			default:
				rows[row] = pad(max(0, originX)) + line
			}
		}
	}

	return strings.Join(rows, "\n")
}

func (m *flyoutModel) drain() tea.Cmd {
	if len(m.events) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(m.events))
	for _, event := range m.events {
		msg := event
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.events = nil

	return tea.Batch(cmds...)
}

func pad(width int) string {
	if width <= 0 {
		return ""
	}

	return strings.Repeat(" ", width)
}
