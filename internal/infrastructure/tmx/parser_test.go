package tmx

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" source="sprites.tsx"/>
 <layer id="1" name="Ground" width="2" height="2">
  <data encoding="csv">
1,0,
2,3
</data>
 </layer>
 <objectgroup id="2" name="Letter Layer">
  <object id="7" name="Letter G" type="letter" gid="5" x="10" y="20"/>
 </objectgroup>
</map>`

func TestParse_EndToEndExample(t *testing.T) {
	m, err := Parse(exampleDoc)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 16, m.TileWidth)
	assert.Equal(t, 16, m.TileHeight)

	ground, ok := FindLayer(m, "Ground")
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 2, 3}, ground.Data)
	assert.Equal(t, [][]int{{1, 0}, {2, 3}}, LayerAsGrid(ground))

	letters, ok := FindObjectGroup(m, "Letter Layer")
	require.True(t, ok)
	require.Len(t, letters.Objects, 1)

	obj := letters.Objects[0]
	assert.Equal(t, 7, obj.ID)
	assert.Equal(t, "letter", obj.Type)
	require.NotNil(t, obj.GID)
	assert.Equal(t, 5, *obj.GID)
	assert.Equal(t, 10.0, obj.X)
	assert.Equal(t, 20.0, obj.Y)
	assert.Equal(t, "G", ExtractLetter(obj.Name))
}

func TestParse_GridMatchesFlatIndex(t *testing.T) {
	doc := `<map width="4" height="3" tilewidth="8" tileheight="8">
 <layer name="Water" width="4" height="3">
  <data encoding="csv">1,2,3,4,5,6,7,8,9,10,11,12</data>
 </layer>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	layer, ok := m.Layer("Water")
	require.True(t, ok)

	grid := LayerAsGrid(layer)
	require.Len(t, grid, layer.Height)
	for y := 0; y < layer.Height; y++ {
		require.Len(t, grid[y], layer.Width)
		for x := 0; x < layer.Width; x++ {
			assert.Equal(t, layer.Data[y*layer.Width+x], grid[y][x], "cell (%d,%d)", x, y)
			assert.Equal(t, layer.Data[y*layer.Width+x], layer.At(x, y))
		}
	}
}

func TestParse_DocumentOrder(t *testing.T) {
	doc := `<map width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup name="Player">
  <object id="1" name="" type="spawn" x="1" y="1"/>
 </objectgroup>
 <layer name="Ground" width="1" height="1"><data encoding="csv">1</data></layer>
 <objectgroup name="Enemy Layer">
  <object id="4" type="bomb" gid="9" x="30" y="30"/>
  <object id="2" type="hovercraft" gid="10" x="10" y="10"/>
  <object id="3" type="bomb" gid="9" x="20" y="20"/>
 </objectgroup>
 <layer name="Water" width="1" height="1"><data encoding="csv">0</data></layer>
 <objectgroup name="Letter Layer"/>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	var groupNames []string
	for _, g := range m.ObjectGroups {
		groupNames = append(groupNames, g.Name)
	}
	assert.Equal(t, []string{"Player", "Enemy Layer", "Letter Layer"}, groupNames)

	var layerNames []string
	for _, l := range m.Layers {
		layerNames = append(layerNames, l.Name)
	}
	assert.Equal(t, []string{"Ground", "Water"}, layerNames)

	enemies, ok := m.ObjectGroup("Enemy Layer")
	require.True(t, ok)
	var ids []int
	for _, o := range enemies.Objects {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int{4, 2, 3}, ids)

	empty, ok := m.ObjectGroup("Letter Layer")
	require.True(t, ok)
	assert.Empty(t, empty.Objects)
}

func TestParse_NestedGroupsKeepDocumentOrder(t *testing.T) {
	doc := `<map width="1" height="1" tilewidth="16" tileheight="16">
 <layer name="A" width="1" height="1"><data encoding="csv">1</data></layer>
 <group name="Terrain">
  <properties><property name="ignored" value="x"/></properties>
  <layer name="B" width="1" height="1"><data encoding="csv">2</data></layer>
  <group name="Deep">
   <layer name="C" width="1" height="1"><data encoding="csv">3</data></layer>
   <objectgroup name="Inner"><object id="1" x="0" y="0"/></objectgroup>
  </group>
 </group>
 <layer name="D" width="1" height="1"><data encoding="csv">4</data></layer>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	var names []string
	for _, l := range m.Layers {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)
	require.Len(t, m.ObjectGroups, 1)
	assert.Equal(t, "Inner", m.ObjectGroups[0].Name)
	assert.Empty(t, m.Properties, "group properties are not map properties")
}

func TestParse_OptionalObjectFields(t *testing.T) {
	doc := `<map width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup name="Player">
  <object id="1" x="5.5" y="6.25"/>
  <object id="2" name="Zero" gid="0" x="0" y="0" width="16" height="8"/>
 </objectgroup>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	g, ok := m.ObjectGroup("Player")
	require.True(t, ok)
	require.Len(t, g.Objects, 2)

	bare := g.Objects[0]
	assert.Equal(t, "", bare.Name)
	assert.Equal(t, "", bare.Type)
	assert.Nil(t, bare.GID)
	assert.False(t, bare.HasGID())
	assert.Equal(t, 0, bare.TileGID())
	assert.Equal(t, 5.5, bare.X)
	assert.Equal(t, 6.25, bare.Y)
	assert.Equal(t, 0.0, bare.Width)
	assert.Equal(t, 0.0, bare.Height)

	zero := g.Objects[1]
	require.NotNil(t, zero.GID, "explicit gid=0 must differ from an absent gid")
	assert.Equal(t, 0, *zero.GID)
	assert.True(t, zero.HasGID())
	assert.Equal(t, 16.0, zero.Width)
	assert.Equal(t, 8.0, zero.Height)
}

func TestParse_WhitespaceAroundNumbers(t *testing.T) {
	doc := `<map width=" 2 " height="1" tilewidth="16 " tileheight=" 16">
 <layer name="Ground" width="2" height=" 1">
  <data encoding="csv">
     7 ,
   -1
  </data>
 </layer>
 <objectgroup name="G"><object id=" 3 " gid=" 4" x=" 1.5 " y="2 " width=" 3"/></objectgroup>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Width)
	layer, ok := m.Layer("Ground")
	require.True(t, ok)
	assert.Equal(t, []int{7, -1}, layer.Data)

	obj := m.ObjectGroups[0].Objects[0]
	assert.Equal(t, 3, obj.ID)
	assert.Equal(t, 4, obj.TileGID())
	assert.Equal(t, 1.5, obj.X)
	assert.Equal(t, 2.0, obj.Y)
	assert.Equal(t, 3.0, obj.Width)
}

func TestParse_XMLTileEncoding(t *testing.T) {
	doc := `<map width="3" height="1" tilewidth="16" tileheight="16">
 <layer name="Goal" width="3" height="1">
  <data>
   <tile gid="12"/>
   <tile/>
   <tile gid="3"/>
  </data>
 </layer>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	goal, ok := m.Layer("Goal")
	require.True(t, ok)
	assert.Equal(t, []int{12, 0, 3}, goal.Data)
}

func TestParse_PlainTextDataWithoutEncoding(t *testing.T) {
	doc := `<map width="2" height="1" tilewidth="16" tileheight="16">
 <layer name="Ground" width="2" height="1"><data>4,5</data></layer>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, m.Layers[0].Data)
}

func TestParse_TypeFallsBackToClass(t *testing.T) {
	doc := `<map width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup name="Enemy Layer">
  <object id="1" class="hovercraft" x="0" y="0"/>
  <object id="2" type="bomb" class="ignored" x="0" y="0"/>
  <object id="3" type="" class="ignored" x="0" y="0"/>
 </objectgroup>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	objs := m.ObjectGroups[0].Objects
	assert.Equal(t, "hovercraft", objs[0].Type)
	assert.Equal(t, "bomb", objs[1].Type)
	assert.Equal(t, "", objs[2].Type, "an explicit empty type wins over class")
}

func TestParse_Properties(t *testing.T) {
	doc := `<map width="1" height="1" tilewidth="16" tileheight="16">
 <properties>
  <property name="music" value="waves.ogg"/>
  <property name="par" type="int" value="45"/>
 </properties>
 <layer name="Obstacles" width="1" height="1">
  <properties><property name="collides" type="bool" value="true"/></properties>
  <data encoding="csv">9</data>
 </layer>
 <objectgroup name="Enemy Layer">
  <properties><property name="speed" type="float" value="1.5"/></properties>
  <object id="1" type="hovercraft" x="0" y="0">
   <properties>
    <property name="note">multi
line</property>
   </properties>
  </object>
 </objectgroup>
</map>`
	m, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, "waves.ogg", m.Properties.GetString("music"))
	assert.Equal(t, 45, m.Properties.GetInt("par"))
	assert.True(t, m.Layers[0].Properties.GetBool("collides"))
	assert.Equal(t, 1.5, m.ObjectGroups[0].Properties.GetFloat("speed"))
	assert.Equal(t, "multi\nline", m.ObjectGroups[0].Objects[0].Properties.GetString("note"))
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"not xml", "width=2 height=2"},
		{"wrong root", `<tileset name="sprites"/>`},
		{"unclosed root", `<map width="1" height="1" tilewidth="16" tileheight="16">`},
		{"missing width", `<map height="1" tilewidth="16" tileheight="16"></map>`},
		{"non-numeric height", `<map width="1" height="tall" tilewidth="16" tileheight="16"></map>`},
		{"missing tilewidth", `<map width="1" height="1" tileheight="16"></map>`},
		{"fractional tileheight", `<map width="1" height="1" tilewidth="16" tileheight="16.5"></map>`},
		{"zero width", `<map width="0" height="1" tilewidth="16" tileheight="16"></map>`},
		{"negative tilewidth", `<map width="1" height="1" tilewidth="-16" tileheight="16"></map>`},
		{"layer without width", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" height="1"><data encoding="csv">1</data></layer></map>`},
		{"layer without data", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="1" height="1"></layer></map>`},
		{"non-integer cell", `<map width="2" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="2" height="1"><data encoding="csv">1,x</data></layer></map>`},
		{"trailing comma", `<map width="2" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="2" height="1"><data encoding="csv">1,2,</data></layer></map>`},
		{"too few cells", `<map width="2" height="2" tilewidth="16" tileheight="16">
			<layer name="Ground" width="2" height="2"><data encoding="csv">1,2,3</data></layer></map>`},
		{"too many cells", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="1" height="1"><data encoding="csv">1,2</data></layer></map>`},
		{"empty data", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="1" height="1"><data encoding="csv">  </data></layer></map>`},
		{"bad tile gid", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="1" height="1"><data><tile gid="one"/></data></layer></map>`},
		{"object without x", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<objectgroup name="Player"><object id="1" y="3"/></objectgroup></map>`},
		{"object with bad y", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<objectgroup name="Player"><object id="1" x="1" y="up"/></objectgroup></map>`},
		{"object with bad id", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<objectgroup name="Player"><object id="first" x="1" y="1"/></objectgroup></map>`},
		{"object with bad gid", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<objectgroup name="Player"><object id="1" gid="1.5" x="1" y="1"/></objectgroup></map>`},
		{"object with bad width", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<objectgroup name="Player"><object id="1" x="1" y="1" width="wide"/></objectgroup></map>`},
		{"layer size overflows", `<map width="1" height="1" tilewidth="16" tileheight="16">
			<layer name="Ground" width="4294967296" height="4294967296"><data encoding="csv"></data></layer></map>`},
		{"map size overflows", `<map width="4294967296" height="4294967296" tilewidth="16" tileheight="16"></map>`},
		{"element after root", `<map width="1" height="1" tilewidth="16" tileheight="16"></map><junk/>`},
		{"unclosed element after root", `<map width="1" height="1" tilewidth="16" tileheight="16"></map><junk`},
		{"text after root", `<map width="1" height="1" tilewidth="16" tileheight="16"></map>trailing`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedDocument)
			assert.Nil(t, m, "no partial result on failure")
		})
	}
}

func TestParse_CommentsAfterRoot(t *testing.T) {
	doc := `<?xml version="1.0"?>
<map width="1" height="1" tilewidth="16" tileheight="16">
 <layer name="Ground" width="1" height="1"><data encoding="csv">1</data></layer>
</map>
<!-- exported by Tiled -->
`
	m, err := Parse(doc)
	require.NoError(t, err)
	assert.Len(t, m.Layers, 1)
}

func TestParse_UnsupportedEncoding(t *testing.T) {
	doc := `<map width="2" height="2" tilewidth="16" tileheight="16">
 <layer name="Ground" width="2" height="2">
  <data encoding="base64" compression="zlib">eJxjZGBgYAQAAA0ABA==</data>
 </layer>
</map>`
	m, err := Parse(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.NotErrorIs(t, err, ErrMalformedDocument)
	assert.Contains(t, err.Error(), "base64+zlib")
	assert.Nil(t, m)
}

func TestParse_ErrorNamesTheLayer(t *testing.T) {
	doc := `<map width="2" height="1" tilewidth="16" tileheight="16">
 <layer name="Water" width="2" height="1"><data encoding="csv">1</data></layer>
</map>`
	_, err := Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `layer "Water"`)
	assert.Contains(t, err.Error(), "has 1 cells, want 2")
}

func TestParseBytesAndReader(t *testing.T) {
	fromBytes, err := ParseBytes([]byte(exampleDoc))
	require.NoError(t, err)

	fromReader, err := ParseReader(strings.NewReader(exampleDoc))
	require.NoError(t, err)

	assert.Equal(t, fromBytes, fromReader)
}

func TestParse_IndependentResults(t *testing.T) {
	first, err := Parse(exampleDoc)
	require.NoError(t, err)
	second, err := Parse(exampleDoc)
	require.NoError(t, err)

	first.Layers[0].Data[0] = 99
	assert.Equal(t, 1, second.Layers[0].Data[0], "parses must not share storage")
}

func TestParse_Concurrent(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	results := make([]*Map, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Parse(exampleDoc)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestMap_PixelSize(t *testing.T) {
	m, err := Parse(exampleDoc)
	require.NoError(t, err)

	w, h := m.PixelSize()
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)
}
