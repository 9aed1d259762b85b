package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/codewave/internal/domain/entity"
	"github.com/younwookim/codewave/internal/infrastructure/config"
	"github.com/younwookim/codewave/internal/infrastructure/tmx"
)

// 6x4 tiles: water in column 3, a rock at (1,3), goal at (5,1).
const stageDoc = `<map width="6" height="4" tilewidth="16" tileheight="16">
 <layer name="Ground" width="6" height="4"><data encoding="csv">
1,1,1,0,1,1,
1,1,1,0,1,1,
1,1,1,0,1,1,
1,1,1,0,1,1
</data></layer>
 <layer name="Water" width="6" height="4"><data encoding="csv">
0,0,0,26,0,0,
0,0,0,26,0,0,
0,0,0,26,0,0,
0,0,0,26,0,0
</data></layer>
 <layer name="Obstacles" width="6" height="4"><data encoding="csv">
0,0,0,0,0,0,
0,0,0,0,0,0,
0,0,0,0,0,0,
0,76,0,0,0,0
</data></layer>
 <layer name="Goal" width="6" height="4"><data encoding="csv">
0,0,0,0,0,0,
0,0,0,0,0,51,
0,0,0,0,0,0,
0,0,0,0,0,0
</data></layer>
 <objectgroup name="Player">
  <object id="1" name="Spawn" type="spawn" x="0" y="16"/>
 </objectgroup>
 <objectgroup name="Letter Layer">
  <object id="2" name="Letter A" type="letter" gid="201" x="32" y="16" width="16" height="16"/>
  <object id="3" name="Letter I" type="letter" gid="209" x="32" y="64" width="16" height="16"/>
 </objectgroup>
 <objectgroup name="Enemy Layer">
  <object id="4" name="Bomb" type="bomb" gid="251" x="0" y="64" width="16" height="16"/>
  <object id="5" name="Hovercraft" type="hovercraft" gid="253" x="48" y="32"/>
  <object id="6" name="Seaweed" type="decoration" gid="90" x="48" y="64"/>
 </objectgroup>
</map>`

func testConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func testLevel() config.LevelConfig {
	return config.LevelConfig{Number: 1, Word: "AI", Map: "maps/test.tmx"}
}

func loadTestStage(t *testing.T, doc string) *entity.Stage {
	t.Helper()
	m, err := tmx.Parse(doc)
	require.NoError(t, err)
	stage, err := LoadStage(m, testLevel(), testConfig(t))
	require.NoError(t, err)
	return stage
}

func TestLoadStage(t *testing.T) {
	t.Run("loads basic stage", func(t *testing.T) {
		stage := loadTestStage(t, stageDoc)

		require.NotNil(t, stage)
		assert.Equal(t, 1, stage.Number)
		assert.Equal(t, "AI", stage.Word)
		assert.Equal(t, 6, stage.Width)
		assert.Equal(t, 4, stage.Height)
		assert.Equal(t, 16, stage.TileSize)
		assert.Equal(t, entity.Vec2{X: 0, Y: 16}, stage.Spawn)
	})

	t.Run("maps layers to grids", func(t *testing.T) {
		stage := loadTestStage(t, stageDoc)

		assert.Equal(t, 20, stage.Ground.Count())
		assert.Equal(t, 4, stage.Water.Count())
		assert.Equal(t, 76, stage.Obstacles.At(1, 3))
		assert.True(t, stage.Goal.Occupied(5, 1))
	})

	t.Run("anchors letters at their top-left", func(t *testing.T) {
		stage := loadTestStage(t, stageDoc)

		require.Len(t, stage.Letters, 2)
		a := stage.Letters[0]
		assert.Equal(t, entity.EntityID(2), a.ID)
		assert.Equal(t, "A", a.Char)
		assert.Equal(t, entity.Vec2{X: 32, Y: 0}, a.Pos)
		assert.Equal(t, entity.Vec2{X: 16, Y: 16}, a.Size)
		assert.Equal(t, 200, a.Frame)
		assert.Equal(t, "I", stage.Letters[1].Char)
	})

	t.Run("keeps bombs and hovercraft only", func(t *testing.T) {
		stage := loadTestStage(t, stageDoc)

		require.Len(t, stage.Enemies, 2)
		bomb, hover := stage.Enemies[0], stage.Enemies[1]
		assert.Equal(t, entity.EnemyBomb, bomb.Kind)
		assert.Equal(t, entity.Vec2{X: 0, Y: 48}, bomb.Pos)
		assert.Equal(t, 250, bomb.Frame)

		assert.Equal(t, entity.EnemyHovercraft, hover.Kind)
		assert.Equal(t, entity.Vec2{X: 48, Y: 16}, hover.Pos, "missing height defaults to one tile")
		assert.Equal(t, entity.Vec2{X: 16, Y: 16}, hover.Size)
	})

	t.Run("obstacles are optional", func(t *testing.T) {
		doc := strings.Replace(stageDoc, `name="Obstacles"`, `name="Decor"`, 1)
		stage := loadTestStage(t, doc)

		assert.Equal(t, 0, stage.Obstacles.Count())
		assert.False(t, stage.IsBlocked(20, 52, false))
	})

	t.Run("spawn defaults to origin", func(t *testing.T) {
		doc := strings.Replace(stageDoc, `type="spawn"`, `type="marker"`, 1)
		stage := loadTestStage(t, doc)

		assert.Equal(t, entity.Vec2{}, stage.Spawn)
	})
}

func TestLoadStage_Errors(t *testing.T) {
	cfg := testConfig(t)

	t.Run("missing water", func(t *testing.T) {
		m, err := tmx.Parse(strings.Replace(stageDoc, `name="Water"`, `name="Lava"`, 1))
		require.NoError(t, err)

		_, err = LoadStage(m, testLevel(), cfg)
		assert.ErrorIs(t, err, ErrMissingLayer)
		assert.ErrorContains(t, err, `"Water"`)
	})

	t.Run("letter without character", func(t *testing.T) {
		m, err := tmx.Parse(strings.Replace(stageDoc, `name="Letter I"`, `name="Mystery"`, 1))
		require.NoError(t, err)

		_, err = LoadStage(m, testLevel(), cfg)
		assert.ErrorIs(t, err, ErrInvalidObject)
		assert.ErrorContains(t, err, "letter object 3")
	})
}
