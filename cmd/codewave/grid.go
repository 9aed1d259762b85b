package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/codewave/internal/infrastructure/tmx"
)

var flagGridMask bool

var gridCmd = &cobra.Command{
	Use:   "grid <file.tmx> <layer>",
	Short: "Print one tile layer as rows",
	Long: `Prints the named layer row by row, top to bottom. With --mask every
set cell prints as # and every empty cell as a dot.

Examples:
  codewave grid assets/maps/level1.tmx Water --mask`,
	Args: cobra.ExactArgs(2),
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().BoolVar(&flagGridMask, "mask", false, "Print # for set cells and . for empty ones")
}

func runGrid(cmd *cobra.Command, args []string) error {
	m, err := loadMapFile(args[0])
	if err != nil {
		return err
	}

	layer, ok := tmx.FindLayer(m, args[1])
	if !ok {
		names := make([]string, 0, len(m.Layers))
		for _, l := range m.Layers {
			names = append(names, l.Name)
		}
		return fmt.Errorf("no layer %q in %s (have %s)", args[1], args[0], strings.Join(names, ", "))
	}

	out := cmd.OutOrStdout()
	for _, row := range tmx.LayerAsGrid(layer) {
		cells := make([]string, len(row))
		for i, c := range row {
			switch {
			case !flagGridMask:
				cells[i] = fmt.Sprint(c)
			case c != 0:
				cells[i] = "#"
			default:
				cells[i] = "."
			}
		}
		sep := ","
		if flagGridMask {
			sep = ""
		}
		fmt.Fprintln(out, strings.Join(cells, sep))
	}
	return nil
}
