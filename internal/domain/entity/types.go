package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vec2 is a position or velocity in pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Grid is one tile layer addressed by tile coordinates.
// Cells hold raw TMX values; 0 is empty.
type Grid struct {
	Width  int
	Height int
	Cells  []int
}

// NewGrid wraps row-major cells of a width x height layer.
func NewGrid(width, height int, cells []int) Grid {
	return Grid{Width: width, Height: height, Cells: cells}
}

// At returns the cell at the given tile coordinates, or 0 outside the grid.
func (g Grid) At(tx, ty int) int {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return 0
	}
	i := ty*g.Width + tx
	if i >= len(g.Cells) {
		return 0
	}
	return g.Cells[i]
}

// Occupied reports whether the cell holds a tile.
func (g Grid) Occupied(tx, ty int) bool {
	return g.At(tx, ty) > 0
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for _, c := range g.Cells {
		if c > 0 {
			n++
		}
	}
	return n
}

// Stage represents one level built from its map
type Stage struct {
	Number   int
	Word     string
	Width    int // tiles
	Height   int // tiles
	TileSize int

	Ground    Grid
	Water     Grid
	Obstacles Grid // empty when the map has no obstacle layer
	Goal      Grid

	Spawn   Vec2
	Letters []*Letter
	Enemies []*Enemy
}

// PixelWidth returns the stage width in pixels.
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// PixelHeight returns the stage height in pixels.
func (s *Stage) PixelHeight() int {
	return s.Height * s.TileSize
}

// WorldToTile returns the tile containing the given pixel coordinates
func (s *Stage) WorldToTile(px, py float64) (tx, ty int) {
	return int(math.Floor(px / float64(s.TileSize))), int(math.Floor(py / float64(s.TileSize)))
}

// InBounds reports whether the pixel lies inside the stage.
func (s *Stage) InBounds(px, py float64) bool {
	tx, ty := s.WorldToTile(px, py)
	return tx >= 0 && tx < s.Width && ty >= 0 && ty < s.Height
}

// IsWater checks if the tile at pixel coordinates is water
func (s *Stage) IsWater(px, py float64) bool {
	tx, ty := s.WorldToTile(px, py)
	return s.Water.Occupied(tx, ty)
}

// IsGoal checks if the tile at pixel coordinates is part of the goal
func (s *Stage) IsGoal(px, py float64) bool {
	tx, ty := s.WorldToTile(px, py)
	return s.Goal.Occupied(tx, ty)
}

// IsBlocked checks if a walker may not stand on the pixel. Obstacles and the
// stage edge always block; water blocks unless canSwim.
func (s *Stage) IsBlocked(px, py float64, canSwim bool) bool {
	if !s.InBounds(px, py) {
		return true
	}
	tx, ty := s.WorldToTile(px, py)
	if s.Obstacles.Occupied(tx, ty) {
		return true
	}
	return !canSwim && s.Water.Occupied(tx, ty)
}

// FrameForGID converts a 1-based TMX gid into a 0-based sprite frame.
// Non-positive gids have no frame and return -1.
func FrameForGID(gid int) int {
	if gid <= 0 {
		return -1
	}
	return gid - 1
}

// TopLeft converts the bottom-left anchor of a tile object into its top-left
// corner.
func TopLeft(x, y, height float64) Vec2 {
	return Vec2{X: x, Y: y - height}
}
