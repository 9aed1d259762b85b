package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(Vec2{X: 32, Y: 112}, 14, 14)

	assert.Equal(t, Vec2{X: 32, Y: 112}, p.Pos)
	assert.Equal(t, Vec2{X: 14, Y: 14}, p.Size)
	assert.Equal(t, Vec2{X: 39, Y: 119}, p.Center())
	assert.False(t, p.InBoat)
}

func TestPlayer_Corners(t *testing.T) {
	p := NewPlayer(Vec2{}, 10, 10)
	c := p.Corners(Vec2{X: 5, Y: 5})

	assert.Equal(t, Vec2{X: 5, Y: 5}, c[0])
	assert.InDelta(t, 14.99, c[3].X, 1e-9)
	assert.InDelta(t, 14.99, c[3].Y, 1e-9)
}

func TestVelocity(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Vec2
	}{
		{"idle", 0, 0, Vec2{}},
		{"right", 1, 0, Vec2{X: 70}},
		{"up", 0, -1, Vec2{Y: -70}},
		{"diagonal", 1, 1, Vec2{X: 70 * 0.707, Y: 70 * 0.707}},
		{"large input clamps to unit", -5, 0, Vec2{X: -70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Velocity(tt.dx, tt.dy, 70, 0.707)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}
