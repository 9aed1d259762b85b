package tmx

import (
	"regexp"
	"strings"
)

// FindLayer returns the first layer called name, in document order.
// A miss is reported as (nil, false), never as an error.
func FindLayer(m *Map, name string) (*TileLayer, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i], true
		}
	}
	return nil, false
}

// FindObjectGroup returns the first object group called name, in document order.
func FindObjectGroup(m *Map, name string) (*ObjectGroup, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.ObjectGroups {
		if m.ObjectGroups[i].Name == name {
			return &m.ObjectGroups[i], true
		}
	}
	return nil, false
}

// LayerAsGrid reshapes the flat row-major data into Height rows of Width
// cells, so that grid[y][x] == layer.Data[y*layer.Width+x].
func LayerAsGrid(layer *TileLayer) [][]int {
	if layer == nil {
		return nil
	}
	grid := make([][]int, layer.Height)
	for y := 0; y < layer.Height; y++ {
		row := make([]int, layer.Width)
		for x := 0; x < layer.Width; x++ {
			row[x] = layer.At(x, y)
		}
		grid[y] = row
	}
	return grid
}

var letterPattern = regexp.MustCompile(`(?i)letter\s*([[:alnum:]])`)

// ExtractLetter returns the upper-cased character that follows the word
// "Letter" in an object name ("Letter a" -> "A"), or "" if there is none.
func ExtractLetter(name string) string {
	match := letterPattern.FindStringSubmatch(name)
	if match == nil {
		return ""
	}
	return strings.ToUpper(match[1])
}
