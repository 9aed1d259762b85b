package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/assets"
	"github.com/younwookim/codewave/internal/application/system"
	"github.com/younwookim/codewave/internal/infrastructure/config"
	"github.com/younwookim/codewave/internal/infrastructure/levels"
	"github.com/younwookim/codewave/internal/infrastructure/watch"
)

var flagWatch bool

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check that every map can be finished",
	Long: `Parses every .tmx file in dir (the bundled maps by default) and checks
the game rules: the required layers exist, every letter object names its
letter, the letters cover the level's word, there is a goal, and the spawn
point is on open ground.

A map is matched to its level by file name against the catalog, or else by
its "level" and "word" map properties.

With --watch the directory is watched and maps are checked again whenever
they change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Re-check maps when they change")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		fsys fs.FS = assets.Maps
		dir        = "maps"
	)
	if len(args) == 1 {
		fsys, dir = os.DirFS(args[0]), "."
	} else if flagWatch {
		return errors.New("--watch needs a directory")
	}

	loader := levels.NewLoader(fsys, levels.WithLogger(logger))
	paths, err := loader.Discover(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .tmx files in %s", dir)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, p := range paths {
		if err := validateMap(out, loader, p); err != nil {
			failed++
		}
	}
	fmt.Fprintf(out, "\n%d maps checked, %d failed\n", len(paths), failed)

	if !flagWatch {
		if failed > 0 {
			return fmt.Errorf("%d maps failed validation", failed)
		}
		return nil
	}
	return watchMaps(cmd, loader, args[0])
}

func watchMaps(cmd *cobra.Command, loader *levels.Loader, dir string) error {
	w, err := watch.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.Close()

	logger.Info("watching for map changes", "dir", dir)
	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, err := os.Stat(name); err != nil {
				logger.Info("map removed", "map", name)
				continue
			}
			rel, err := filepath.Rel(dir, name)
			if err != nil {
				rel = filepath.Base(name)
			}
			_ = validateMap(cmd.OutOrStdout(), loader, filepath.ToSlash(rel))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// validateMap checks one map and prints a status line for it.
func validateMap(out io.Writer, loader *levels.Loader, p string) error {
	err := checkMap(loader, p)
	fmt.Fprintf(out, "  %-4s %s\n", status(err), p)
	if err != nil {
		fmt.Fprintf(out, "       %s\n", failStyle.Render(err.Error()))
	}
	return err
}

func checkMap(loader *levels.Loader, p string) error {
	m, err := loader.LoadMap(p)
	if err != nil {
		return err
	}

	level, ok := levelForMap(p)
	if !ok {
		level = config.LevelConfig{
			Number: m.Properties.GetInt("level"),
			Word:   m.Properties.GetString("word"),
			Map:    p,
		}
	}
	if level.Word == "" {
		return fmt.Errorf("%s is not in the catalog and has no word property", p)
	}
	if word := m.Properties.GetString("word"); word != "" && word != level.Word {
		return fmt.Errorf("word property %q does not match level %d word %q", word, level.Number, level.Word)
	}

	stage, err := system.LoadStage(m, level, cfg)
	if err != nil {
		return err
	}
	return system.CheckStage(stage)
}

// levelForMap finds the catalog entry whose map has the same file name.
func levelForMap(p string) (config.LevelConfig, bool) {
	base := path.Base(p)
	for _, l := range cfg.Levels {
		if path.Base(l.Map) == base {
			return l, true
		}
	}
	return config.LevelConfig{}, false
}
