package tmx

import (
	"strconv"
	"strings"
)

// Property is one custom property from a <properties> block.
type Property struct {
	Name  string
	Type  string // "string", "int", "float", "bool", ... ; empty means string
	Value string
}

// Properties is an ordered list of custom properties.
type Properties []Property

// Get returns the raw value of the first property called name.
func (p Properties) Get(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}

// GetString returns the property value or "".
func (p Properties) GetString(name string) string {
	v, _ := p.Get(name)
	return v
}

// GetInt returns the property as an int, or 0 if missing or not an integer.
func (p Properties) GetInt(name string) int {
	v, ok := p.Get(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// GetFloat returns the property as a float64, or 0 if missing or not a number.
func (p Properties) GetFloat(name string) float64 {
	v, ok := p.Get(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// GetBool returns the property as a bool, or false if missing or not a bool.
func (p Properties) GetBool(name string) bool {
	v, ok := p.Get(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	return b
}
