package entity

// EnemyKind defines the type of enemy behavior
type EnemyKind int

const (
	EnemyBomb EnemyKind = iota
	EnemyHovercraft
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBomb:
		return "bomb"
	case EnemyHovercraft:
		return "hovercraft"
	default:
		return "unknown"
	}
}

// Picker picks a random index in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Picker interface {
	IntN(n int) int
}

// Enemy represents an enemy entity. Touching one sends the player back to
// the spawn point.
type Enemy struct {
	ID    EntityID
	Kind  EnemyKind
	Pos   Vec2 // top-left
	Size  Vec2
	Frame int

	Dir   Vec2 // velocity in pixels per second
	FlipX bool

	// TurnTimer counts down to the next direction change (seconds)
	TurnTimer float64
}

// NewEnemy creates a new enemy
func NewEnemy(id EntityID, kind EnemyKind, pos Vec2, frame int) *Enemy {
	return &Enemy{
		ID:    id,
		Kind:  kind,
		Pos:   pos,
		Frame: frame,
	}
}

// Moves reports whether the enemy roams. Bombs stay put.
func (e *Enemy) Moves() bool {
	return e.Kind == EnemyHovercraft
}

// Turn points the enemy along one of the four axes at the given speed.
// Heading left flips the sprite, heading right unflips it, and vertical
// moves keep the current flip.
func (e *Enemy) Turn(rng Picker, speed float64) {
	if !e.Moves() {
		return
	}
	directions := [4]Vec2{{speed, 0}, {-speed, 0}, {0, speed}, {0, -speed}}
	e.Dir = directions[rng.IntN(len(directions))]

	switch {
	case e.Dir.X < 0:
		e.FlipX = true
	case e.Dir.X > 0:
		e.FlipX = false
	}
}

// Step advances the enemy by dt seconds along its direction.
func (e *Enemy) Step(dt float64) {
	if !e.Moves() {
		return
	}
	e.Pos = e.Pos.Add(e.Dir.Scale(dt))
}

// Overlaps reports whether the enemy's box intersects the given box.
func (e *Enemy) Overlaps(pos, size Vec2) bool {
	return overlaps(e.Pos, e.Size, pos, size)
}

func overlaps(aPos, aSize, bPos, bSize Vec2) bool {
	return aPos.X < bPos.X+bSize.X && bPos.X < aPos.X+aSize.X &&
		aPos.Y < bPos.Y+bSize.Y && bPos.Y < aPos.Y+aSize.Y
}
