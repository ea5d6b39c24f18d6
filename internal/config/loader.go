package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("preferred_side", "bottom")
	loader.SetDefault("open_on_start", false)
	loader.SetDefault("close_on_select", "always")
	loader.SetDefault("sticky_options", []string{})
	loader.SetDefault("options", []map[string]any{
		{"id": "new", "label": "New Session"},
		{"id": "attach", "label": "Attach"},
		{"id": "rename", "label": "Rename"},
		{"id": "archive", "label": "Archive", "disabled": true},
		{"id": "quit", "label": "Quit"},
	})
	loader.SetDefault("history_limit", 25)
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", 30)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()
	loader.WatchConfig()
	loader.OnConfigChange(loader.onConfigChange)

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Write(config Config) error {
	cl.Set("preferred_side", config.PreferredSide)
	cl.Set("open_on_start", config.OpenOnStart)
	cl.Set("close_on_select", config.CloseOnSelect)
	cl.Set("sticky_options", config.StickyOptions)
	cl.Set("options", config.Options)
	cl.Set("history_limit", config.HistoryLimit)
	cl.Set("debug", config.Debug)
	cl.Set("fps", config.FPS)

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
