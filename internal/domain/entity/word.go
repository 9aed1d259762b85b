package entity

import "strings"

// WordProgress tracks the letters picked up toward a level's word.
type WordProgress struct {
	word      string
	collected []string
}

// NewWordProgress starts tracking word. The word is upper-cased.
func NewWordProgress(word string) *WordProgress {
	return &WordProgress{word: strings.ToUpper(word)}
}

// Word returns the target word.
func (w *WordProgress) Word() string {
	return w.word
}

// Collect records a picked-up letter. Every letter is kept; the result
// reports whether it filled a slot of the word that was still open.
func (w *WordProgress) Collect(char string) bool {
	char = strings.ToUpper(char)
	before := w.matchedCount()
	w.collected = append(w.collected, char)
	return w.matchedCount() > before
}

// Matched returns one flag per character of the word. Each collected letter
// fills the first unmatched slot holding the same character.
func (w *WordProgress) Matched() []bool {
	slots := []rune(w.word)
	matched := make([]bool, len(slots))
	for _, c := range w.collected {
		for i, r := range slots {
			if !matched[i] && string(r) == c {
				matched[i] = true
				break
			}
		}
	}
	return matched
}

func (w *WordProgress) matchedCount() int {
	n := 0
	for _, m := range w.Matched() {
		if m {
			n++
		}
	}
	return n
}

// Collected returns the picked-up letters in pickup order.
func (w *WordProgress) Collected() string {
	return strings.Join(w.collected, "")
}

// Letters returns a copy of the picked-up letters.
func (w *WordProgress) Letters() []string {
	return append([]string(nil), w.collected...)
}

// Count returns how many letters have been picked up.
func (w *WordProgress) Count() int {
	return len(w.collected)
}

// Complete reports whether at least as many letters as the word has were
// picked up.
func (w *WordProgress) Complete() bool {
	return len(w.collected) >= len([]rune(w.word))
}

// Reset forgets every picked-up letter.
func (w *WordProgress) Reset() {
	w.collected = w.collected[:0]
}
