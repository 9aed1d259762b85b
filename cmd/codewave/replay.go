package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/internal/application/replay"
	"github.com/younwookim/codewave/internal/application/settings"
	"github.com/younwookim/codewave/internal/application/state"
	"github.com/younwookim/codewave/internal/application/system"
	"github.com/younwookim/codewave/internal/infrastructure/config"
	"github.com/younwookim/codewave/internal/infrastructure/levels"
	"github.com/younwookim/codewave/internal/infrastructure/storage"
)

var flagReplaySave bool

var replayCmd = &cobra.Command{
	Use:   "replay <file.json>",
	Short: "Play a recorded run headlessly",
	Long: `Feeds the frames of a recorded run into the level it was recorded on,
using the recording's seed so enemies move the same way, and reports the
result. With --save a finished run is stored as a best-time candidate.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplaySave, "save", false, "Store the run if the level was finished")
	replayCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory to read catalog maps from")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	level, ok := cfg.Level(data.Level)
	if !ok {
		return fmt.Errorf("replay is for level %d, which is not in the catalog", data.Level)
	}
	difficulty := cfg.Difficulty.Default
	if data.Difficulty != "" {
		if difficulty, err = config.ParseDifficulty(data.Difficulty); err != nil {
			return err
		}
	}

	m, err := levels.NewLoader(mapsFS(), levels.WithLogger(logger)).LoadLevel(level)
	if err != nil {
		return err
	}
	stage, err := system.LoadStage(m, level, cfg)
	if err != nil {
		return err
	}

	machine := state.NewMachine(cfg.LevelCount())
	machine.OnTransition(func(from, to state.GameState, p state.Payload) {
		logger.Debug("state", "from", from, "to", to, "level", p.Level)
	})
	for _, step := range []func() error{machine.Preload, machine.Ready} {
		if err := step(); err != nil {
			return err
		}
	}
	if err := machine.Start(level.Number); err != nil {
		return err
	}

	round := system.NewRound(stage, cfg, difficulty, replay.RNG(data.Seed))
	res := replay.Play(round, replay.NewReplayer(*data), data.FrameDuration())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Level %d - %s", level.Number, level.Word)))
	fmt.Fprintf(out, "  %-10s %d of %d\n", "frames", res.Frames, len(data.Frames))
	fmt.Fprintf(out, "  %-10s %s\n", "collected", letterStyle.Render(res.Collected))
	fmt.Fprintf(out, "  %-10s %d\n", "hits", res.Hits)
	fmt.Fprintf(out, "  %-10s %s\n", "time", system.FormatClock(res.Elapsed))

	if !res.Finished {
		fmt.Fprintf(out, "  %-10s %s\n", "result", failStyle.Render("goal not reached"))
		return nil
	}
	fmt.Fprintf(out, "  %-10s %s\n", "result", okStyle.Render("finished"))

	if err := machine.CompleteLevel(res.Elapsed, round.Word().Letters()); err != nil {
		return err
	}
	if err := machine.Advance(); err != nil {
		return err
	}
	if machine.Current() == state.StateGameOver {
		fmt.Fprintln(out, "  That was the last level.")
	} else {
		fmt.Fprintf(out, "  Next up: level %d.\n", machine.Payload().Level)
	}

	if flagReplaySave {
		return saveRun(cmd, level, res, machine.Payload().Level)
	}
	return nil
}

func saveRun(cmd *cobra.Command, level config.LevelConfig, res replay.Result, reached int) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	best, hadBest, err := store.BestTime(level.Number)
	if err != nil {
		return err
	}
	if _, err := store.SaveRun(level.Number, level.Word, res.Elapsed, res.Hits); err != nil {
		return err
	}
	if !hadBest || res.Elapsed < best {
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("  New best time!"))
	}

	sstore, err := openSettingsStore(cfg.Storage.AppName)
	if err != nil {
		logger.Warn("could not open settings", "error", err)
		return nil
	}
	s := settings.New(cfg.Difficulty.Default)
	if err := s.Load(sstore); err != nil {
		logger.Warn("could not load settings", "error", err)
	}
	s.ReachLevel(reached)
	return s.Save(sstore)
}
