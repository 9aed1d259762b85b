package system

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/younwookim/codewave/internal/domain/entity"
)

// ErrUnwinnable is returned by CheckStage for stages that cannot be finished.
var ErrUnwinnable = errors.New("stage cannot be completed")

// CheckStage reports problems that would keep a player from finishing the
// stage: the letters on the map must cover every character of the word, and
// there must be a goal.
func CheckStage(stage *entity.Stage) error {
	var problems []string

	have := make(map[string]int)
	for _, l := range stage.Letters {
		have[l.Char]++
	}
	var missing []string
	for _, r := range stage.Word {
		c := string(r)
		if have[c] > 0 {
			have[c]--
			continue
		}
		missing = append(missing, c)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		problems = append(problems, fmt.Sprintf("letters for %s are missing %s", stage.Word, strings.Join(missing, ",")))
	}

	if stage.Goal.Count() == 0 {
		problems = append(problems, "goal layer is empty")
	}
	if stage.IsBlocked(stage.Spawn.X, stage.Spawn.Y, false) {
		problems = append(problems, fmt.Sprintf("spawn (%.0f,%.0f) is blocked", stage.Spawn.X, stage.Spawn.Y))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("level %d: %w: %s", stage.Number, ErrUnwinnable, strings.Join(problems, "; "))
}
