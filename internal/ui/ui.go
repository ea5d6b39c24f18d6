// Package ui renders the flyout demo application. All menu interaction flows
// through the engine packages, this layer only translates terminal events and
// draws the resulting state.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/flyout/internal/config"
	"github.com/leighmacdonald/flyout/internal/store"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, selections *store.Selections, version string, configPath string) *UI {
	zone.NewGlobal()

	fps := conf.FPS
	if fps <= 0 {
		fps = 30
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(conf, selections, version, configPath),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
