package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/flyout/internal/menu"
	"github.com/leighmacdonald/flyout/internal/overlay"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "flyout"
	DefaultConfigName = "flyout"
	DefaultDBName     = "flyout.db"
	DefaultLogName    = "flyout.log"
	EnvPrefix         = "flyout"
)

// MenuOption is the config-file form of a menu entry.
type MenuOption struct {
	ID       string `mapstructure:"id"`
	Label    string `mapstructure:"label"`
	Disabled bool   `mapstructure:"disabled"`
}

type Config struct {
	// PreferredSide is where the menu overlay wants to open relative to its
	// trigger. One of top, right, bottom, left.
	PreferredSide string `mapstructure:"preferred_side"`
	// OpenOnStart opens the demo menu immediately instead of waiting for input.
	OpenOnStart bool `mapstructure:"open_on_start"`
	// CloseOnSelect is one of always, never or sticky. With sticky, selecting
	// an option listed in sticky_options leaves the menu open.
	CloseOnSelect string   `mapstructure:"close_on_select"`
	StickyOptions []string `mapstructure:"sticky_options"`
	// Options is the demo menu content.
	Options []MenuOption `mapstructure:"options"`
	// HistoryLimit caps how many past selections are kept and shown.
	HistoryLimit int  `mapstructure:"history_limit"`
	Debug        bool `mapstructure:"debug"`
	FPS          int  `mapstructure:"fps"`
}

// Side resolves the configured preferred side, defaulting to top.
func (c Config) Side() overlay.Side {
	return overlay.ParseSide(c.PreferredSide)
}

// MenuOptions converts the configured entries into engine options.
func (c Config) MenuOptions() []menu.Option {
	options := make([]menu.Option, 0, len(c.Options))
	for _, entry := range c.Options {
		options = append(options, menu.Option{
			ID:       entry.ID,
			Label:    entry.Label,
			Disabled: entry.Disabled,
		})
	}

	return options
}

// Policy builds the close-on-select policy from the config. The sticky mode
// maps onto a predicate that keeps the menu open for the listed option IDs;
// anything unrecognized falls back to always closing.
func (c Config) Policy() menu.ClosePolicy {
	switch c.CloseOnSelect {
	case "never":
		return menu.ClosePolicy{Mode: menu.CloseNever}
	case "sticky":
		sticky := make(map[string]bool, len(c.StickyOptions))
		for _, id := range c.StickyOptions {
			sticky[id] = true
		}

		return menu.ClosePolicy{
			Mode:      menu.ClosePredicate,
			Predicate: func(option menu.Option) bool { return !sticky[option.ID] },
		}
	case "always":
		fallthrough
	default:
		return menu.ClosePolicy{Mode: menu.CloseAlways}
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func PathCache(name string) string {
	cacheDir, found := os.LookupEnv("CACHE_DIR")
	if found && cacheDir != "" {
		return cacheDir
	}

	return path.Join(xdg.CacheHome, ConfigDirName, name)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logName string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logName))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
