package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/charmbracelet/fang"
	flyout "github.com/leighmacdonald/flyout/internal"
	"github.com/leighmacdonald/flyout/internal/config"
	"github.com/leighmacdonald/flyout/internal/store"
	"github.com/leighmacdonald/flyout/internal/ui"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion = "master"
	BuildCommit  = "00000000"
	BuildDate    = "unknown"

	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "flyout",
		Short: "Flyout menu demo",
		Long:  `flyout - An anchored overlay menu toolkit for terminal UIs`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about flyout",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("flyout - anchored overlay menus\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)       //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)        //nolint:forbidigo
	fmt.Printf("  Date:    %s\n", BuildDate)          //nolint:forbidigo
	fmt.Printf("  Go:      %s\n", runtime.Version())  //nolint:forbidigo
}

func run(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	configUpdates := make(chan config.Config)
	loader := config.NewLoader(configUpdates)
	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	}

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting flyout", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Setup the sqlite database system.
	database, errDB := store.Open(ctx, config.Path(config.DefaultDBName), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	selections := store.NewSelections(database)
	userInterface := ui.New(ctx, userConfig, selections, BuildVersion, loader.Path())

	return flyout.NewApp(userInterface, configUpdates).Start(ctx)
}
