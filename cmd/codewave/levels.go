package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/assets"
	"github.com/younwookim/codewave/internal/application/system"
	"github.com/younwookim/codewave/internal/infrastructure/levels"
)

var flagMapsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level in the catalog with its word and whether its map
loads and can be finished. Maps come from the bundled assets unless --maps
points at a directory that holds the catalog's map paths.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory to read catalog maps from")
}

func mapsFS() fs.FS {
	if flagMapsDir != "" {
		return os.DirFS(flagMapsDir)
	}
	return assets.Maps
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loader := levels.NewLoader(mapsFS(), levels.WithLogger(logger))

	fmt.Fprintln(out, headingStyle.Render("Levels"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-3s  %-10s  %-20s  %s\n", "#", "Word", "Map", "Status")
	fmt.Fprintf(out, "  %-3s  %-10s  %-20s  %s\n", "-", "----", "---", "------")

	failed := 0
	for _, level := range cfg.Levels {
		err := checkLevel(loader, level.Number)
		if err != nil {
			failed++
			logger.Warn("level does not load", "level", level.Number, "error", err)
		}
		fmt.Fprintf(out, "  %-3d  %-10s  %-20s  %s\n", level.Number, level.Word, level.Map, status(err))
	}

	fmt.Fprintln(out)
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, cfg.LevelCount())
	}
	fmt.Fprintf(out, "All %d levels load.\n", cfg.LevelCount())
	return nil
}

func checkLevel(loader *levels.Loader, number int) error {
	level, ok := cfg.Level(number)
	if !ok {
		return fmt.Errorf("level %d is not in the catalog", number)
	}
	m, err := loader.LoadLevel(level)
	if err != nil {
		return err
	}
	stage, err := system.LoadStage(m, level, cfg)
	if err != nil {
		return err
	}
	return system.CheckStage(stage)
}
