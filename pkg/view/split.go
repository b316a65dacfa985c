package view

import (
	"github.com/dashdoc/dash/pkg/dict"
)

// TagSplit is the canonical tag of [Split].
const TagSplit = "SplitView"

// DefaultSplitPosition is used when a record has no "splitPosition".
const DefaultSplitPosition = 0.5

const (
	keyIsVertical    = "isVertical"
	keyLeft          = "left"
	keyRight         = "right"
	keySplitPosition = "splitPosition"
)

// Split shows two children separated by a divider. Position is the fraction
// of the split's extent given to the left (or top) child.
type Split struct {
	base
	vertical bool
	left     Node
	right    Node
	position float64
}

// NewSplit creates a split. position is stored as given. A nil child is
// replaced by an unselected placeholder.
func NewSplit(vertical bool, left, right Node, position float64) *Split {
	return &Split{vertical: vertical, left: orPlaceholder(left), right: orPlaceholder(right), position: position}
}

func orPlaceholder(n Node) Node {
	if n == nil {
		return NewPlaceholder()
	}
	return n
}

// Kind returns [TagSplit].
func (s *Split) Kind() string { return TagSplit }

// Children returns the left and right children.
func (s *Split) Children() []Node { return []Node{s.left, s.right} }

// SetEditing sets the editing flag on the split and both children.
func (s *Split) SetEditing(editing bool) {
	s.editing = editing
	s.left.SetEditing(editing)
	s.right.SetEditing(editing)
}

// Vertical reports whether the divider is vertical.
func (s *Split) Vertical() bool { return s.vertical }

// SetVertical sets the divider orientation.
func (s *Split) SetVertical(vertical bool) { s.vertical = vertical }

// Left returns the left (or top) child.
func (s *Split) Left() Node { return s.left }

// Right returns the right (or bottom) child.
func (s *Split) Right() Node { return s.right }

// SetLeft replaces the left child. The new child adopts the split's editing
// mode; nil installs an unselected placeholder.
func (s *Split) SetLeft(n Node) {
	n = orPlaceholder(n)
	n.SetEditing(s.editing)
	s.left = n
}

// SetRight replaces the right child. The new child adopts the split's editing
// mode; nil installs an unselected placeholder.
func (s *Split) SetRight(n Node) {
	n = orPlaceholder(n)
	n.SetEditing(s.editing)
	s.right = n
}

// Position returns the divider position.
func (s *Split) Position() float64 { return s.position }

// SetPosition moves the divider, clamping p to [0, 1].
func (s *Split) SetPosition(p float64) {
	s.position = min(max(p, 0), 1)
}

// Drag handles a proposed divider offset along an extent of the given width
// and returns the offset the divider should take. Outside editing mode the
// divider stays where it is; in editing mode it follows the proposal.
func (s *Split) Drag(proposed, width float64) float64 {
	if width <= 0 {
		return 0
	}
	if !s.editing {
		return s.position * width
	}
	s.SetPosition(proposed / width)
	return s.position * width
}

// Dict encodes the split and both children.
func (s *Split) Dict() dict.Dict {
	return tagged(TagSplit, dict.Dict{
		keyIsVertical:    s.vertical,
		keyLeft:          s.left.Dict(),
		keyRight:         s.right.Dict(),
		keySplitPosition: s.position,
	})
}

func decodeSplit(r *Registry, d dict.Dict) (Node, error) {
	vertical, err := d.Bool(keyIsVertical)
	if err != nil {
		return nil, err
	}
	position, err := d.FloatOr(keySplitPosition, DefaultSplitPosition)
	if err != nil {
		return nil, err
	}
	left, err := r.decodeChild(d, keyLeft)
	if err != nil {
		return nil, err
	}
	right, err := r.decodeChild(d, keyRight)
	if err != nil {
		return nil, err
	}
	return NewSplit(vertical, left, right, position), nil
}

func newSplit(_ *Registry) (Node, error) {
	return NewSplit(false, NewPlaceholder(), NewPlaceholder(), DefaultSplitPosition), nil
}
