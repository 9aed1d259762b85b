package tmx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

type xmlTile struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlData struct {
	Encoding    string    `xml:"encoding,attr"`
	Compression string    `xml:"compression,attr"`
	Tiles       []xmlTile `xml:"tile"`
	Text        string    `xml:",chardata"`
}

type xmlLayer struct {
	Attrs      []xml.Attr    `xml:",any,attr"`
	Data       *xmlData      `xml:"data"`
	Properties []xmlProperty `xml:"properties>property"`
}

type xmlObject struct {
	Attrs      []xml.Attr    `xml:",any,attr"`
	Properties []xmlProperty `xml:"properties>property"`
}

type xmlObjectGroup struct {
	Attrs      []xml.Attr    `xml:",any,attr"`
	Objects    []xmlObject   `xml:"object"`
	Properties []xmlProperty `xml:"properties>property"`
}

// Parse converts a map document into a Map. It either returns a fully
// populated Map or an error wrapping ErrMalformedDocument (or
// ErrUnsupportedEncoding); no partial result is returned.
func Parse(document string) (*Map, error) {
	return ParseReader(strings.NewReader(document))
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(document []byte) (*Map, error) {
	return ParseReader(bytes.NewReader(document))
}

// ParseReader reads a whole map document from r.
//
// Layers and object groups are collected in document order wherever they
// appear under the root, so layers inside <group> elements are included.
// Only comments, processing instructions and whitespace may follow </map>.
func ParseReader(r io.Reader) (*Map, error) {
	dec := xml.NewDecoder(r)

	var m *Map
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed("read document: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if m == nil {
				if t.Name.Local != "map" {
					return nil, malformed("root element is <%s>, want <map>", t.Name.Local)
				}
				if m, err = newMap(t.Attr); err != nil {
					return nil, err
				}
				depth = 1
				continue
			}

			switch t.Name.Local {
			case "layer":
				var xl xmlLayer
				if err := dec.DecodeElement(&xl, &t); err != nil {
					return nil, malformed("decode <layer>: %v", err)
				}
				layer, err := buildLayer(&xl)
				if err != nil {
					return nil, err
				}
				m.Layers = append(m.Layers, layer)
			case "objectgroup":
				var xg xmlObjectGroup
				if err := dec.DecodeElement(&xg, &t); err != nil {
					return nil, malformed("decode <objectgroup>: %v", err)
				}
				group, err := buildObjectGroup(&xg)
				if err != nil {
					return nil, err
				}
				m.ObjectGroups = append(m.ObjectGroups, group)
			case "group":
				depth++
			case "properties":
				if depth != 1 {
					if err := dec.Skip(); err != nil {
						return nil, malformed("skip <properties>: %v", err)
					}
					continue
				}
				var props struct {
					Items []xmlProperty `xml:"property"`
				}
				if err := dec.DecodeElement(&props, &t); err != nil {
					return nil, malformed("decode map <properties>: %v", err)
				}
				m.Properties = buildProperties(props.Items)
			default:
				if err := dec.Skip(); err != nil {
					return nil, malformed("skip <%s>: %v", t.Name.Local, err)
				}
			}

		case xml.EndElement:
			if m == nil {
				continue
			}
			depth--
			if depth == 0 {
				if err := expectEnd(dec); err != nil {
					return nil, err
				}
				return m, nil
			}
		}
	}

	if m == nil {
		return nil, malformed("missing <map> root element")
	}
	return nil, malformed("unexpected end of document inside <map>")
}

func newMap(raw []xml.Attr) (*Map, error) {
	a := attrs(raw)
	m := &Map{}
	var err error
	if m.Width, err = a.positiveInt("map", "width"); err != nil {
		return nil, err
	}
	if m.Height, err = a.positiveInt("map", "height"); err != nil {
		return nil, err
	}
	if m.TileWidth, err = a.positiveInt("map", "tilewidth"); err != nil {
		return nil, err
	}
	if m.TileHeight, err = a.positiveInt("map", "tileheight"); err != nil {
		return nil, err
	}
	if _, err = cellCount("map", m.Width, m.Height); err != nil {
		return nil, err
	}
	return m, nil
}

// expectEnd consumes what is left after the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return malformed("after </map>: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return malformed("unexpected <%s> after </map>", t.Name.Local)
		case xml.EndElement:
			return malformed("unexpected </%s> after </map>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return malformed("unexpected text after </map>")
			}
		}
	}
}

// cellCount returns width*height, rejecting sizes that overflow int.
func cellCount(elem string, width, height int) (int, error) {
	if height > 0 && width > math.MaxInt/height {
		return 0, malformed("%s size %dx%d is too large", elem, width, height)
	}
	return width * height, nil
}

func buildLayer(xl *xmlLayer) (TileLayer, error) {
	a := attrs(xl.Attrs)
	name, _ := a.lookup("name")
	elem := fmt.Sprintf("layer %q", name)

	layer := TileLayer{
		Name:       name,
		Properties: buildProperties(xl.Properties),
	}
	var err error
	if layer.Width, err = a.positiveInt(elem, "width"); err != nil {
		return TileLayer{}, err
	}
	if layer.Height, err = a.positiveInt(elem, "height"); err != nil {
		return TileLayer{}, err
	}
	want, err := cellCount(elem, layer.Width, layer.Height)
	if err != nil {
		return TileLayer{}, err
	}

	if xl.Data == nil {
		return TileLayer{}, malformed("%s has no <data> block", elem)
	}
	if layer.Data, err = decodeData(elem, xl.Data); err != nil {
		return TileLayer{}, err
	}

	if len(layer.Data) != want {
		return TileLayer{}, malformed("%s has %d cells, want %d (%dx%d)",
			elem, len(layer.Data), want, layer.Width, layer.Height)
	}
	return layer, nil
}

func decodeData(elem string, d *xmlData) ([]int, error) {
	switch strings.TrimSpace(d.Encoding) {
	case "csv":
		return parseCSV(elem, d.Text)
	case "":
		if len(d.Tiles) == 0 {
			return parseCSV(elem, d.Text)
		}
		cells := make([]int, 0, len(d.Tiles))
		for i, t := range d.Tiles {
			gid, err := attrs(t.Attrs).optionalInt(elem, "gid")
			if err != nil {
				return nil, fmt.Errorf("tile %d: %w", i, err)
			}
			if gid == nil {
				cells = append(cells, 0)
				continue
			}
			cells = append(cells, *gid)
		}
		return cells, nil
	default:
		enc := d.Encoding
		if d.Compression != "" {
			enc += "+" + d.Compression
		}
		return nil, fmt.Errorf("%w: %s uses %s", ErrUnsupportedEncoding, elem, enc)
	}
}

func parseCSV(elem, text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []int{}, nil
	}

	fields := strings.Split(text, ",")
	cells := make([]int, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, malformed("%s cell %d: %q is not an integer", elem, i, f)
		}
		cells = append(cells, v)
	}
	return cells, nil
}

func buildObjectGroup(xg *xmlObjectGroup) (ObjectGroup, error) {
	name, _ := attrs(xg.Attrs).lookup("name")
	group := ObjectGroup{
		Name:       name,
		Objects:    make([]Object, 0, len(xg.Objects)),
		Properties: buildProperties(xg.Properties),
	}
	for i := range xg.Objects {
		obj, err := buildObject(name, &xg.Objects[i])
		if err != nil {
			return ObjectGroup{}, err
		}
		group.Objects = append(group.Objects, obj)
	}
	return group, nil
}

func buildObject(groupName string, xo *xmlObject) (Object, error) {
	a := attrs(xo.Attrs)
	idRaw, _ := a.lookup("id")
	elem := fmt.Sprintf("object %s in group %q", idRaw, groupName)

	obj := Object{Properties: buildProperties(xo.Properties)}
	obj.Name, _ = a.lookup("name")
	if typ, ok := a.lookup("type"); ok {
		obj.Type = typ
	} else {
		obj.Type, _ = a.lookup("class")
	}

	id, err := a.optionalInt(elem, "id")
	if err != nil {
		return Object{}, err
	}
	if id != nil {
		obj.ID = *id
	}
	if obj.GID, err = a.optionalInt(elem, "gid"); err != nil {
		return Object{}, err
	}
	if obj.X, err = a.requiredFloat(elem, "x"); err != nil {
		return Object{}, err
	}
	if obj.Y, err = a.requiredFloat(elem, "y"); err != nil {
		return Object{}, err
	}
	if obj.Width, err = a.optionalFloat(elem, "width"); err != nil {
		return Object{}, err
	}
	if obj.Height, err = a.optionalFloat(elem, "height"); err != nil {
		return Object{}, err
	}
	return obj, nil
}

func buildProperties(items []xmlProperty) Properties {
	if len(items) == 0 {
		return nil
	}
	props := make(Properties, 0, len(items))
	for _, p := range items {
		value := p.Value
		if value == "" {
			value = p.Text
		}
		props = append(props, Property{Name: p.Name, Type: p.Type, Value: value})
	}
	return props
}

// attrs wraps raw XML attributes so presence can be told apart from an
// empty value.
type attrs []xml.Attr

func (a attrs) lookup(name string) (string, bool) {
	for _, at := range a {
		if at.Name.Local == name {
			return at.Value, true
		}
	}
	return "", false
}

func (a attrs) requiredInt(elem, name string) (int, error) {
	raw, ok := a.lookup(name)
	if !ok {
		return 0, malformed("%s: missing attribute %s", elem, name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, malformed("%s: attribute %s=%q is not an integer", elem, name, raw)
	}
	return v, nil
}

func (a attrs) positiveInt(elem, name string) (int, error) {
	v, err := a.requiredInt(elem, name)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, malformed("%s: attribute %s=%d must be positive", elem, name, v)
	}
	return v, nil
}

func (a attrs) optionalInt(elem, name string) (*int, error) {
	if _, ok := a.lookup(name); !ok {
		return nil, nil
	}
	v, err := a.requiredInt(elem, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (a attrs) requiredFloat(elem, name string) (float64, error) {
	raw, ok := a.lookup(name)
	if !ok {
		return 0, malformed("%s: missing attribute %s", elem, name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, malformed("%s: attribute %s=%q is not a number", elem, name, raw)
	}
	return v, nil
}

func (a attrs) optionalFloat(elem, name string) (float64, error) {
	if _, ok := a.lookup(name); !ok {
		return 0, nil
	}
	return a.requiredFloat(elem, name)
}
