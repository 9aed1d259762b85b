package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/codewave/internal/domain/entity"
	"github.com/younwookim/codewave/internal/infrastructure/config"
	"github.com/younwookim/codewave/internal/infrastructure/tmx"
)

var (
	// ErrMissingLayer is returned when a required tile layer is absent.
	ErrMissingLayer = errors.New("missing layer")
	// ErrInvalidObject is returned for objects the stage cannot use.
	ErrInvalidObject = errors.New("invalid object")
)

// LoadStage converts a parsed map into a Stage entity. The ground, water and
// goal layers are required; obstacles and every object group are optional.
func LoadStage(m *tmx.Map, level config.LevelConfig, cfg *config.GameConfig) (*entity.Stage, error) {
	names := cfg.Layers
	stage := &entity.Stage{
		Number:   level.Number,
		Word:     level.Word,
		Width:    m.Width,
		Height:   m.Height,
		TileSize: m.TileWidth,
	}

	required := []struct {
		name string
		grid *entity.Grid
	}{
		{names.Ground, &stage.Ground},
		{names.Water, &stage.Water},
		{names.Goal, &stage.Goal},
	}
	for _, r := range required {
		layer, ok := tmx.FindLayer(m, r.name)
		if !ok {
			return nil, fmt.Errorf("level %d: %w %q", level.Number, ErrMissingLayer, r.name)
		}
		*r.grid = gridOf(layer)
	}
	if layer, ok := tmx.FindLayer(m, names.Obstacles); ok {
		stage.Obstacles = gridOf(layer)
	}

	if group, ok := tmx.FindObjectGroup(m, names.PlayerGroup); ok {
		if spawn, ok := group.FirstOfType(names.SpawnType); ok {
			stage.Spawn = entity.Vec2{X: spawn.X, Y: spawn.Y}
		}
	}

	if group, ok := tmx.FindObjectGroup(m, names.LetterGroup); ok {
		for _, o := range group.ObjectsOfType(names.LetterType) {
			char := o.Letter()
			if char == "" {
				return nil, fmt.Errorf("level %d: %w: letter object %d has no character in name %q",
					level.Number, ErrInvalidObject, o.ID, o.Name)
			}
			letter := entity.NewLetter(entity.EntityID(o.ID), char, anchor(o, m.TileHeight), entity.FrameForGID(o.TileGID()))
			letter.Size = size(o, m.TileWidth, m.TileHeight)
			stage.Letters = append(stage.Letters, letter)
		}
	}

	if group, ok := tmx.FindObjectGroup(m, names.EnemyGroup); ok {
		for _, o := range group.Objects {
			var kind entity.EnemyKind
			switch o.Type {
			case names.BombType:
				kind = entity.EnemyBomb
			case names.HovercraftType:
				kind = entity.EnemyHovercraft
			default:
				continue
			}
			enemy := entity.NewEnemy(entity.EntityID(o.ID), kind, anchor(o, m.TileHeight), entity.FrameForGID(o.TileGID()))
			enemy.Size = size(o, m.TileWidth, m.TileHeight)
			stage.Enemies = append(stage.Enemies, enemy)
		}
	}

	return stage, nil
}

func gridOf(layer *tmx.TileLayer) entity.Grid {
	return entity.NewGrid(layer.Width, layer.Height, layer.Data)
}

// anchor returns the top-left corner of an object. Tile objects are
// positioned by their bottom-left corner.
func anchor(o tmx.Object, tileHeight int) entity.Vec2 {
	if !o.HasGID() {
		return entity.Vec2{X: o.X, Y: o.Y}
	}
	h := o.Height
	if h == 0 {
		h = float64(tileHeight)
	}
	return entity.TopLeft(o.X, o.Y, h)
}

func size(o tmx.Object, tileWidth, tileHeight int) entity.Vec2 {
	s := entity.Vec2{X: o.Width, Y: o.Height}
	if s.X == 0 {
		s.X = float64(tileWidth)
	}
	if s.Y == 0 {
		s.Y = float64(tileHeight)
	}
	return s
}
