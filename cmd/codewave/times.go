package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/internal/application/system"
	"github.com/younwookim/codewave/internal/infrastructure/storage"
)

var (
	flagTimesLimit int
	flagTimesClear bool
)

var timesCmd = &cobra.Command{
	Use:   "times [level]",
	Short: "Show best times",
	Long: `Shows the fastest runs of one level, or the best time of every level
when no level is given. --clear deletes the runs of the given level.

Examples:
  codewave times
  codewave times 3 --limit 5
  codewave times 3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimes,
}

func init() {
	timesCmd.Flags().IntVarP(&flagTimesLimit, "limit", "n", 10, "Number of runs to show")
	timesCmd.Flags().BoolVar(&flagTimesClear, "clear", false, "Delete the runs of the level")
}

func runTimes(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagTimesClear {
			return fmt.Errorf("--clear needs a level")
		}
		fmt.Fprintln(out, headingStyle.Render("Best times"))
		fmt.Fprintln(out)
		for _, level := range cfg.Levels {
			best, ok, err := store.BestTime(level.Number)
			if err != nil {
				return err
			}
			clock := "--:--"
			if ok {
				clock = system.FormatClock(best)
			}
			fmt.Fprintf(out, "  %-3d  %-10s  %s\n", level.Number, level.Word, clock)
		}
		return nil
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid level %q", args[0])
	}
	level, ok := cfg.Level(number)
	if !ok {
		return fmt.Errorf("level %d is not in the catalog", number)
	}

	if flagTimesClear {
		n, err := store.ClearLevel(number)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d runs of level %d.\n", n, number)
		return nil
	}

	runs, err := store.TopRuns(number, flagTimesLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Level %d - %s", level.Number, level.Word)))
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %s\n", "Rank", "Time", "Hits", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %s\n", "----", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6s  %-4d  %s\n", i+1, system.FormatClock(r.Elapsed), r.Hits, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
