// Package settings holds the player-facing options that outlive a level:
// mute, difficulty and the furthest level reached.
package settings

import (
	"github.com/younwookim/codewave/internal/infrastructure/config"
)

// Music is the background track the mute toggle controls.
type Music interface {
	Pause()
	Resume()
}

// Settings replaces a global key/value registry with typed fields.
type Settings struct {
	muted      bool
	difficulty config.Difficulty
	lastLevel  int
	music      Music
}

// New returns settings with sound on and the given difficulty.
func New(difficulty config.Difficulty) *Settings {
	return &Settings{difficulty: difficulty}
}

func (s *Settings) Muted() bool {
	return s.muted
}

// ToggleMute flips the mute flag and returns the new value.
func (s *Settings) ToggleMute() bool {
	s.SetMuted(!s.muted)
	return s.muted
}

// SetMuted pauses or resumes the attached music to match muted.
func (s *Settings) SetMuted(muted bool) {
	s.muted = muted
	if s.music == nil {
		return
	}
	if muted {
		s.music.Pause()
	} else {
		s.music.Resume()
	}
}

// AttachMusic connects the background track. A muted track is paused right
// away.
func (s *Settings) AttachMusic(m Music) {
	s.music = m
	if m != nil && s.muted {
		m.Pause()
	}
}

// MuteLabel is the text of the mute button.
func (s *Settings) MuteLabel() string {
	if s.muted {
		return "Unmute (M)"
	}
	return "Mute (M)"
}

func (s *Settings) Difficulty() config.Difficulty {
	return s.difficulty
}

// SetDifficulty accepts only the built-in presets.
func (s *Settings) SetDifficulty(d config.Difficulty) error {
	parsed, err := config.ParseDifficulty(string(d))
	if err != nil {
		return err
	}
	s.difficulty = parsed
	return nil
}

// LastLevel returns the furthest level reached.
func (s *Settings) LastLevel() int {
	return s.lastLevel
}

// ReachLevel records level if it is further than any reached before.
func (s *Settings) ReachLevel(level int) {
	if level > s.lastLevel {
		s.lastLevel = level
	}
}
