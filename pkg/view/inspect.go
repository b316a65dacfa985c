package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dashdoc/dash/pkg/dict"
)

// Attribute is one editable property shown by an inspector.
type Attribute struct {
	Key   string // Record key the attribute is stored under
	Label string // Human-readable name
	Value string // Current value in its text form
}

// Inspectable is implemented by views that expose editable attributes.
type Inspectable interface {
	Node
	Attributes() []Attribute
	// SetAttribute parses text and assigns it to the attribute stored under
	// key. Errors are the same typed errors decoding would produce.
	SetAttribute(key, text string) error
}

// Attributes lists the inspector attributes of n, or nil when n has none.
func Attributes(n Node) []Attribute {
	if in, ok := n.(Inspectable); ok {
		return in.Attributes()
	}
	return nil
}

// SetAttribute assigns text to the attribute key of n.
func SetAttribute(n Node, key, text string) error {
	in, ok := n.(Inspectable)
	if !ok {
		return &dict.InvalidValueError{Key: key, Message: fmt.Sprintf("%s has no attributes", n.Kind())}
	}
	return in.SetAttribute(key, text)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloat(key, text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &dict.InvalidValueError{Key: key, Message: fmt.Sprintf("%q is not a number", text)}
	}
	return f, nil
}

func unknownAttribute(n Node, key string) error {
	return &dict.InvalidValueError{Key: key, Message: fmt.Sprintf("%s has no attribute %q", n.Kind(), key)}
}

// Attributes returns the divider position.
func (s *Split) Attributes() []Attribute {
	return []Attribute{
		{Key: keySplitPosition, Label: "Split Position", Value: formatFloat(s.position)},
	}
}

// SetAttribute sets the divider position. Values outside [0, 1] are clamped.
func (s *Split) SetAttribute(key, text string) error {
	if key != keySplitPosition {
		return unknownAttribute(s, key)
	}
	f, err := parseFloat(key, text)
	if err != nil {
		return err
	}
	s.SetPosition(f)
	return nil
}

// Attributes returns the page timings in seconds.
func (p *Page) Attributes() []Attribute {
	return []Attribute{
		{Key: keyTimeOnEachPage, Label: "Time On Each Page", Value: formatFloat(p.dwell)},
		{Key: keyAnimationDuration, Label: "Animation Duration", Value: formatFloat(p.animation)},
	}
}

// SetAttribute sets a page timing from a non-negative number of seconds.
func (p *Page) SetAttribute(key, text string) error {
	if key != keyTimeOnEachPage && key != keyAnimationDuration {
		return unknownAttribute(p, key)
	}
	f, err := parseFloat(key, text)
	if err != nil {
		return err
	}
	if _, err := dict.Seconds(key, f); err != nil {
		return err
	}
	if key == keyTimeOnEachPage {
		p.dwell = f
	} else {
		p.animation = f
	}
	return nil
}

// Attributes returns the address and zoom factor.
func (w *WebPage) Attributes() []Attribute {
	return []Attribute{
		{Key: keyURL, Label: "URL", Value: w.url},
		{Key: keyZoom, Label: "Zoom", Value: formatFloat(w.zoom)},
	}
}

// SetAttribute sets the address or the zoom factor.
func (w *WebPage) SetAttribute(key, text string) error {
	switch key {
	case keyURL:
		return w.SetURL(strings.TrimSpace(text))
	case keyZoom:
		f, err := parseFloat(key, text)
		if err != nil {
			return err
		}
		w.SetZoom(f)
	default:
		return unknownAttribute(w, key)
	}
	return nil
}

// Attributes returns the swatch color.
func (c *Color) Attributes() []Attribute {
	return []Attribute{{Key: keyColor, Label: "Color", Value: c.Hex()}}
}

// SetAttribute sets the swatch color from a hex string.
func (c *Color) SetAttribute(key, text string) error {
	if key != keyColor {
		return unknownAttribute(c, key)
	}
	col, err := ParseColor(key, strings.TrimSpace(text))
	if err != nil {
		return err
	}
	c.SetColor(col)
	return nil
}
