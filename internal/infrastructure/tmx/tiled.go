package tmx

import (
	"github.com/lafriks/go-tiled"
)

// FromTiled converts a map decoded by go-tiled into a Map.
//
// go-tiled resolves every layer against the map's tilesets, so it can read the
// base64 and compressed encodings Parse rejects. Tile layers take the map's
// dimensions, and layer cells are rebuilt as tileset FirstGID + local tile ID.
// go-tiled stores an object without a gid as 0, so an object gid of 0 comes
// back as absent. Custom properties are not carried over.
//
// Layers and object groups inside <group> elements are flattened depth first
// after the top-level ones. go-tiled keeps each element kind in its own slice,
// so the interleaving of groups with top-level layers is lost.
func FromTiled(tm *tiled.Map) (*Map, error) {
	if tm == nil {
		return nil, malformed("nil tiled map")
	}
	if tm.Width <= 0 || tm.Height <= 0 || tm.TileWidth <= 0 || tm.TileHeight <= 0 {
		return nil, malformed("map dimensions %dx%d with %dx%d tiles must be positive",
			tm.Width, tm.Height, tm.TileWidth, tm.TileHeight)
	}

	m := &Map{
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}

	if err := m.addTiled(tm.Layers, tm.ObjectGroups); err != nil {
		return nil, err
	}
	if err := m.addTiledGroups(tm.Groups); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Map) addTiledGroups(groups []*tiled.Group) error {
	for _, g := range groups {
		if g == nil {
			continue
		}
		if err := m.addTiled(g.Layers, g.ObjectGroups); err != nil {
			return err
		}
		if err := m.addTiledGroups(g.Groups); err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) addTiled(layers []*tiled.Layer, groups []*tiled.ObjectGroup) error {
	want, err := cellCount("map", m.Width, m.Height)
	if err != nil {
		return err
	}

	for _, l := range layers {
		layer := TileLayer{
			Name:   l.Name,
			Width:  m.Width,
			Height: m.Height,
			Data:   make([]int, len(l.Tiles)),
		}
		for i, tile := range l.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			gid := int(tile.ID)
			if tile.Tileset != nil {
				gid += int(tile.Tileset.FirstGID)
			}
			layer.Data[i] = gid
		}
		if len(layer.Data) != want {
			return malformed("layer %q has %d cells, want %d", l.Name, len(layer.Data), want)
		}
		m.Layers = append(m.Layers, layer)
	}

	for _, og := range groups {
		group := ObjectGroup{
			Name:    og.Name,
			Objects: make([]Object, 0, len(og.Objects)),
		}
		for _, o := range og.Objects {
			obj := Object{
				ID:     int(o.ID),
				Name:   o.Name,
				Type:   o.Type, //nolint:staticcheck // TMX uses type= attribute
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
			}
			if obj.Type == "" {
				obj.Type = o.Class
			}
			if o.GID != 0 {
				gid := int(o.GID)
				obj.GID = &gid
			}
			group.Objects = append(group.Objects, obj)
		}
		m.ObjectGroups = append(m.ObjectGroups, group)
	}
	return nil
}
