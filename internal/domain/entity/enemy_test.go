package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPicker returns the queued indices in order.
type fixedPicker struct {
	picks []int
}

func (p *fixedPicker) IntN(n int) int {
	v := p.picks[0] % n
	p.picks = p.picks[1:]
	return v
}

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(7, EnemyHovercraft, Vec2{X: 10, Y: 20}, 252)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(7), enemy.ID)
	assert.Equal(t, EnemyHovercraft, enemy.Kind)
	assert.Equal(t, Vec2{X: 10, Y: 20}, enemy.Pos)
	assert.Equal(t, 252, enemy.Frame)
	assert.True(t, enemy.Moves())
	assert.False(t, NewEnemy(1, EnemyBomb, Vec2{}, 0).Moves())
}

func TestEnemyKind_String(t *testing.T) {
	assert.Equal(t, "bomb", EnemyBomb.String())
	assert.Equal(t, "hovercraft", EnemyHovercraft.String())
	assert.Equal(t, "unknown", EnemyKind(9).String())
}

func TestEnemy_Turn(t *testing.T) {
	tests := []struct {
		name      string
		pick      int
		startFlip bool
		wantDir   Vec2
		wantFlip  bool
	}{
		{"right unflips", 0, true, Vec2{X: 20}, false},
		{"left flips", 1, false, Vec2{X: -20}, true},
		{"down keeps flip", 2, true, Vec2{Y: 20}, true},
		{"up keeps unflipped", 3, false, Vec2{Y: -20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemy := NewEnemy(1, EnemyHovercraft, Vec2{}, 0)
			enemy.FlipX = tt.startFlip

			enemy.Turn(&fixedPicker{picks: []int{tt.pick}}, 20)
			assert.Equal(t, tt.wantDir, enemy.Dir)
			assert.Equal(t, tt.wantFlip, enemy.FlipX)
		})
	}
}

func TestEnemy_BombNeverMoves(t *testing.T) {
	bomb := NewEnemy(1, EnemyBomb, Vec2{X: 5, Y: 5}, 250)

	bomb.Turn(&fixedPicker{picks: []int{0}}, 20)
	bomb.Step(1)

	assert.Equal(t, Vec2{}, bomb.Dir)
	assert.Equal(t, Vec2{X: 5, Y: 5}, bomb.Pos)
}

func TestEnemy_Step(t *testing.T) {
	enemy := NewEnemy(1, EnemyHovercraft, Vec2{X: 100, Y: 50}, 0)
	enemy.Dir = Vec2{X: -20}

	enemy.Step(0.5)
	assert.InDelta(t, 90.0, enemy.Pos.X, 1e-9)
	assert.InDelta(t, 50.0, enemy.Pos.Y, 1e-9)
}

func TestEnemy_Overlaps(t *testing.T) {
	enemy := NewEnemy(1, EnemyBomb, Vec2{X: 16, Y: 16}, 0)
	enemy.Size = Vec2{X: 16, Y: 16}

	assert.True(t, enemy.Overlaps(Vec2{X: 20, Y: 20}, Vec2{X: 4, Y: 4}))
	assert.True(t, enemy.Overlaps(Vec2{X: 2, Y: 2}, Vec2{X: 15, Y: 15}))
	assert.False(t, enemy.Overlaps(Vec2{X: 0, Y: 0}, Vec2{X: 16, Y: 16}), "touching edges do not overlap")
	assert.False(t, enemy.Overlaps(Vec2{X: 40, Y: 16}, Vec2{X: 4, Y: 4}))
}
