package entity

// Letter is a collectible glyph placed on the stage
type Letter struct {
	ID        EntityID
	Char      string
	Pos       Vec2 // top-left
	Size      Vec2
	Frame     int
	Collected bool
}

// NewLetter creates a letter pickup
func NewLetter(id EntityID, char string, pos Vec2, frame int) *Letter {
	return &Letter{
		ID:    id,
		Char:  char,
		Pos:   pos,
		Frame: frame,
	}
}

// Overlaps reports whether the letter's box intersects the given box.
func (l *Letter) Overlaps(pos, size Vec2) bool {
	return overlaps(l.Pos, l.Size, pos, size)
}

// Contains reports whether the pixel lies within the letter's box.
func (l *Letter) Contains(px, py float64) bool {
	return px >= l.Pos.X && px < l.Pos.X+l.Size.X && py >= l.Pos.Y && py < l.Pos.Y+l.Size.Y
}
