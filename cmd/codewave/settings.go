package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/internal/application/settings"
	"github.com/younwookim/codewave/internal/infrastructure/config"
)

// openSettingsStore is replaced in tests.
var openSettingsStore = func(appName string) (settings.Store, error) {
	return settings.OpenStore(appName)
}

var settingsCmd = &cobra.Command{
	Use:   "settings [mute|unmute|difficulty <preset>]",
	Short: "Show or change saved settings",
	Long: `Without arguments, prints the saved settings. The mute and unmute
subcommands switch the background music; difficulty picks a preset
(easy, normal or hard).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(cmd, nil)
	},
}

func init() {
	settingsCmd.AddCommand(&cobra.Command{
		Use:   "mute",
		Short: "Turn the music off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd, func(s *settings.Settings) error {
				s.SetMuted(true)
				return nil
			})
		},
	})
	settingsCmd.AddCommand(&cobra.Command{
		Use:   "unmute",
		Short: "Turn the music on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd, func(s *settings.Settings) error {
				s.SetMuted(false)
				return nil
			})
		},
	})
	settingsCmd.AddCommand(&cobra.Command{
		Use:       "difficulty <preset>",
		Short:     "Pick a difficulty preset",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"easy", "normal", "hard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd, func(s *settings.Settings) error {
				return s.SetDifficulty(config.Difficulty(args[0]))
			})
		},
	})
}

// withSettings loads the saved settings, applies change when given, saves
// and prints the result.
func withSettings(cmd *cobra.Command, change func(*settings.Settings) error) error {
	store, err := openSettingsStore(cfg.Storage.AppName)
	if err != nil {
		return err
	}

	s := settings.New(cfg.Difficulty.Default)
	if err := s.Load(store); err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
	}

	if change != nil {
		if err := change(s); err != nil {
			return err
		}
		if err := s.Save(store); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render("Settings"))
	fmt.Fprintf(out, "  %-10s %v (button: %s)\n", "muted", s.Muted(), s.MuteLabel())
	fmt.Fprintf(out, "  %-10s %s\n", "difficulty", s.Difficulty())
	fmt.Fprintf(out, "  %-10s %d\n", "reached", s.LastLevel())
	return nil
}
