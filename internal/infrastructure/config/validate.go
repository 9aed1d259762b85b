package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the game cannot run without.
func (c *GameConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		add("display size %dx%d must be positive", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Zoom <= 0 {
		add("display zoom must be positive")
	}
	if c.Player.Speed <= 0 {
		add("player speed must be positive")
	}
	if c.Player.DiagonalFactor <= 0 || c.Player.DiagonalFactor > 1 {
		add("player diagonal_factor %.3f must be in (0, 1]", c.Player.DiagonalFactor)
	}
	for name, a := range map[string]AnimationConfig{"walk": c.Player.Walk, "boat": c.Player.Boat} {
		if a.First > a.Last || a.FrameRate <= 0 {
			add("player %s animation %d..%d at %d fps is invalid", name, a.First, a.Last, a.FrameRate)
		}
	}
	if c.Enemies.HovercraftSpeed < 0 {
		add("enemies hovercraft_speed must not be negative")
	}
	if c.Enemies.TurnInterval <= 0 {
		add("enemies turn_interval must be positive")
	}

	l := c.Layers
	for key, v := range map[string]string{
		"ground": l.Ground, "water": l.Water, "goal": l.Goal,
		"player_group": l.PlayerGroup, "letter_group": l.LetterGroup, "enemy_group": l.EnemyGroup,
	} {
		if v == "" {
			add("layers %s must be set", key)
		}
	}

	if len(c.Levels) == 0 {
		add("at least one level is required")
	}
	seen := make(map[int]bool, len(c.Levels))
	for i, lv := range c.Levels {
		if lv.Number != i+1 {
			add("level #%d has number %d, levels must be numbered 1..n in order", i+1, lv.Number)
		}
		if seen[lv.Number] {
			add("level %d is defined twice", lv.Number)
		}
		seen[lv.Number] = true
		if lv.Word == "" || strings.IndexFunc(lv.Word, func(r rune) bool { return !unicode.IsUpper(r) && !unicode.IsDigit(r) }) >= 0 {
			add("level %d word %q must be upper-case letters or digits", lv.Number, lv.Word)
		}
		if lv.Map == "" {
			add("level %d has no map", lv.Number)
		}
	}

	if _, ok := c.Difficulty.Presets[c.Difficulty.Default]; !ok {
		add("difficulty default %q has no preset", c.Difficulty.Default)
	}
	for d, p := range c.Difficulty.Presets {
		if p.EnemySpeed < 0 || p.TurnInterval <= 0 {
			add("difficulty %s multipliers must be positive", d)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
