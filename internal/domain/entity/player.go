package entity

// Player represents the player entity
type Player struct {
	Pos  Vec2 // top-left of the collision box
	Size Vec2

	FacingLeft bool
	InBoat     bool // true while standing on water
	Moving     bool
}

// NewPlayer creates a player at the spawn point with a body of the given size.
func NewPlayer(spawn Vec2, width, height int) *Player {
	return &Player{
		Pos:  spawn,
		Size: Vec2{X: float64(width), Y: float64(height)},
	}
}

// Center returns the middle of the collision box.
func (p *Player) Center() Vec2 {
	return Vec2{X: p.Pos.X + p.Size.X/2, Y: p.Pos.Y + p.Size.Y/2}
}

// Corners returns the four corners of the collision box.
func (p *Player) Corners(pos Vec2) [4]Vec2 {
	// Right and bottom edges are exclusive.
	r, b := pos.X+p.Size.X-0.01, pos.Y+p.Size.Y-0.01
	return [4]Vec2{{pos.X, pos.Y}, {r, pos.Y}, {pos.X, b}, {r, b}}
}

// Velocity returns the velocity for an input direction. dx and dy are -1, 0
// or 1. Diagonal input scales both axes by diagonal.
func Velocity(dx, dy int, speed, diagonal float64) Vec2 {
	v := Vec2{X: float64(sign(dx)) * speed, Y: float64(sign(dy)) * speed}
	if dx != 0 && dy != 0 {
		v = v.Scale(diagonal)
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
