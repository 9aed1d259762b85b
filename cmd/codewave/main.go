// codewave inspects, validates and replays Code Wave level maps.
//
// Usage:
//
//	codewave levels                  - List the level catalog and map status
//	codewave inspect <file.tmx>      - Show the contents of a map
//	codewave grid <file.tmx> <layer> - Print one tile layer as rows
//	codewave validate [dir]          - Check that every map can be finished
//	codewave replay <file.json>      - Play a recorded run headlessly
//	codewave times [level]           - Show best times
//	codewave settings                - Show or change saved settings
//
// Global flags:
//
//	--config <path> - YAML configuration (default: embedded)
//	--db <path>     - Best-times database (default from config)
//	--verbose       - Debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool

	cfg    *config.GameConfig
	logger *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codewave",
	Short: "Code Wave level tools",
	Long: `Code Wave is a top-down word game: collect the letters of a code word,
then cross the water to reach the goal.

This tool works with the game's TMX level maps.

Examples:
  codewave levels
  codewave inspect assets/maps/level3.tmx
  codewave grid assets/maps/level1.tmx Water
  codewave validate assets/maps --watch
  codewave times 4`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the best-times database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(settingsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "codewave",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	var err error
	cfg, err = config.Resolve(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagDBPath == "" {
		flagDBPath = cfg.Storage.DBPath
	}
	logger.Debug("config loaded", "levels", cfg.LevelCount(), "db", flagDBPath)
	return nil
}
