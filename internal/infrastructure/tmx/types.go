// Package tmx reads Tiled map documents (.tmx) into plain Go values.
//
// The package holds no state between calls: Parse allocates a fresh Map for
// every document and the result is owned by the caller. Lookups over a parsed
// Map are linear scans in document order.
package tmx

// Map is the parsed form of a map document.
type Map struct {
	Width      int // grid width in tiles
	Height     int // grid height in tiles
	TileWidth  int // pixel width of one tile
	TileHeight int // pixel height of one tile

	// Layers and ObjectGroups keep document order, including entries that
	// were nested inside <group> elements.
	Layers       []TileLayer
	ObjectGroups []ObjectGroup

	Properties Properties
}

// PixelSize returns the map extent in pixels.
func (m *Map) PixelSize() (w, h int) {
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

// Layer is shorthand for FindLayer(m, name).
func (m *Map) Layer(name string) (*TileLayer, bool) {
	return FindLayer(m, name)
}

// ObjectGroup is shorthand for FindObjectGroup(m, name).
func (m *Map) ObjectGroup(name string) (*ObjectGroup, bool) {
	return FindObjectGroup(m, name)
}

// TileLayer is a full grid of tile indices.
//
// Data is row-major (index = y*Width + x). Values <= 0 mean "no tile";
// positive values are 1-based indices into the tile image strip.
type TileLayer struct {
	Name       string
	Width      int
	Height     int
	Data       []int
	Properties Properties
}

// At returns the cell value at (x, y), or 0 outside the layer.
func (l *TileLayer) At(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	i := y*l.Width + x
	if i >= len(l.Data) {
		return 0
	}
	return l.Data[i]
}

// Grid is shorthand for LayerAsGrid(l).
func (l *TileLayer) Grid() [][]int {
	return LayerAsGrid(l)
}

// ObjectGroup is a named collection of point and rectangle objects.
type ObjectGroup struct {
	Name       string
	Objects    []Object
	Properties Properties
}

// ObjectsOfType returns the objects whose Type equals typ, in document order.
func (g *ObjectGroup) ObjectsOfType(typ string) []Object {
	var out []Object
	for _, o := range g.Objects {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}

// FirstOfType returns the first object whose Type equals typ.
func (g *ObjectGroup) FirstOfType(typ string) (Object, bool) {
	for _, o := range g.Objects {
		if o.Type == typ {
			return o, true
		}
	}
	return Object{}, false
}

// Object is a single annotation inside an object group.
//
// Tile-image objects (GID != nil) are anchored at their bottom-left corner;
// everything else at the top-left.
type Object struct {
	ID   int
	Name string
	Type string

	// GID is nil when the document has no gid attribute, which is not the
	// same thing as an explicit gid of 0.
	GID *int

	X, Y          float64
	Width, Height float64

	Properties Properties
}

// HasGID reports whether the object references a tile image.
func (o Object) HasGID() bool {
	return o.GID != nil
}

// TileGID returns the referenced tile id, or 0 when there is none.
func (o Object) TileGID() int {
	if o.GID == nil {
		return 0
	}
	return *o.GID
}

// Letter returns the character encoded in the object's name ("Letter A" -> "A").
func (o Object) Letter() string {
	return ExtractLetter(o.Name)
}
