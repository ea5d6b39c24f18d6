package internal

import (
	"context"
	"log/slog"

	"github.com/leighmacdonald/flyout/internal/config"
	"github.com/leighmacdonald/flyout/internal/ui"
	"golang.org/x/sync/errgroup"
)

// App is the main application container.
type App struct {
	ui            *ui.UI
	configUpdates <-chan config.Config
}

// NewApp returns a new application instance. To actually start the app you
// must call Start().
func NewApp(userInterface *ui.UI, configUpdates <-chan config.Config) *App {
	return &App{
		ui:            userInterface,
		configUpdates: configUpdates,
	}
}

// Start runs the UI and forwards externally triggered config reloads into it.
// It returns once the UI exits or the context is cancelled.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})

	group.Go(func() error {
		for {
			select {
			case conf := <-app.configUpdates:
				slog.Debug("Forwarding config update to UI")
				app.ui.Send(conf)
			case <-groupCtx.Done():
				return nil
			}
		}
	})

	return group.Wait()
}
