package system

import (
	"fmt"
	"time"
)

// HUDLines is the text of the in-level overlay.
type HUDLines struct {
	Word      string
	Collected string
	Clock     string
}

// Lines returns the overlay rows top to bottom.
func (h HUDLines) Lines() []string {
	return []string{h.Word, h.Collected, h.Clock}
}

// HUD returns the overlay for the current frame.
func (r *Round) HUD() HUDLines {
	return HUDLines{
		Word:      r.word.Word(),
		Collected: r.word.Collected(),
		Clock:     FormatClock(r.elapsed),
	}
}

// FormatClock renders d as MM:SS, truncating fractions of a second.
// Negative durations render as 00:00.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
