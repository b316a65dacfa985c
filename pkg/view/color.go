package view

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dashdoc/dash/pkg/dict"
)

// TagColor is the canonical tag of [Color].
const TagColor = "Color"

const keyColor = "color"

// white is emitted for colors that have no sRGB representation.
const white = "#FFFFFF"

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is a solid color swatch.
//
// A swatch decoded from a "#RRGGBB" string writes that string back as it
// was, in its original case. Other forms are written as uppercase "#RRGGBB".
type Color struct {
	base
	color colorful.Color
	hex   string
}

// NewColor creates a swatch of the given color.
func NewColor(c colorful.Color) *Color {
	return &Color{color: c}
}

// Kind returns [TagColor].
func (c *Color) Kind() string { return TagColor }

// Children returns nil; a swatch has no children.
func (c *Color) Children() []Node { return nil }

// SetEditing sets the editing flag.
func (c *Color) SetEditing(editing bool) { c.editing = editing }

// Color returns the swatch color.
func (c *Color) Color() colorful.Color { return c.color }

// SetColor replaces the swatch color.
func (c *Color) SetColor(col colorful.Color) {
	c.color = col
	c.hex = ""
}

// Hex returns the color as "#RRGGBB". Out-of-gamut components are clamped
// and colors with undefined components are reported as white.
func (c *Color) Hex() string {
	if c.hex != "" {
		return c.hex
	}
	return FormatColor(c.color)
}

// Dict encodes the swatch as {"type": "Color", "color": "#RRGGBB"}.
func (c *Color) Dict() dict.Dict {
	return tagged(TagColor, dict.Dict{keyColor: c.Hex()})
}

// FormatColor returns col as an uppercase "#RRGGBB" string.
func FormatColor(col colorful.Color) string {
	if math.IsNaN(col.R) || math.IsNaN(col.G) || math.IsNaN(col.B) {
		return white
	}
	return strings.ToUpper(col.Clamped().Hex())
}

// ParseColor parses "#RRGGBB", "#RGB" or "0xRRGGBB". key names the field in
// the returned error.
func ParseColor(key, s string) (colorful.Color, error) {
	hex := s
	if rest, ok := strings.CutPrefix(hex, "0x"); ok {
		hex = "#" + rest
	} else if rest, ok := strings.CutPrefix(hex, "0X"); ok {
		hex = "#" + rest
	}
	if !hexColorRe.MatchString(hex) {
		return colorful.Color{}, &dict.InvalidValueError{
			Key:     key,
			Message: fmt.Sprintf("unable to create color from string %q", s),
		}
	}
	col, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, &dict.InvalidValueError{Key: key, Message: err.Error()}
	}
	return col, nil
}

func decodeColor(_ *Registry, d dict.Dict) (Node, error) {
	s, err := d.String(keyColor)
	if err != nil {
		return nil, err
	}
	col, err := ParseColor(keyColor, s)
	if err != nil {
		return nil, err
	}
	c := NewColor(col)
	if len(s) == 7 && s[0] == '#' {
		c.hex = s
	}
	return c, nil
}

func newColor(_ *Registry) (Node, error) {
	return NewColor(colorful.Color{R: 1}), nil
}
