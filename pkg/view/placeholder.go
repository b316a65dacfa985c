package view

import (
	"fmt"

	"github.com/dashdoc/dash/pkg/dict"
)

// TagPlaceholder is the canonical tag of [Placeholder].
const TagPlaceholder = "PlaceholderView"

// PlaceholderState tells whether a placeholder has been filled.
type PlaceholderState int

const (
	Unselected PlaceholderState = iota
	Selected
)

func (s PlaceholderState) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("PlaceholderState(%d)", int(s))
	}
}

// Placeholder is an empty slot in the tree. Once a concrete view is chosen
// for it, the placeholder encodes as that view.
//
// An unselected placeholder keeps the record it was decoded from and writes
// it back unchanged, apart from the tag.
type Placeholder struct {
	base
	state  PlaceholderState
	record dict.Dict
	child  Node
}

// NewPlaceholder creates an unselected placeholder with an empty record.
func NewPlaceholder() *Placeholder {
	return &Placeholder{record: dict.Dict{}}
}

// Kind returns [TagPlaceholder].
func (p *Placeholder) Kind() string { return TagPlaceholder }

// State returns whether a view has been chosen.
func (p *Placeholder) State() PlaceholderState { return p.state }

// Selected returns the chosen view, if any.
func (p *Placeholder) Selected() (Node, bool) {
	if p.state != Selected {
		return nil, false
	}
	return p.child, true
}

// Children returns the chosen view, or nil when none has been chosen.
func (p *Placeholder) Children() []Node {
	if p.state != Selected {
		return nil
	}
	return []Node{p.child}
}

// SetEditing sets the editing flag on the placeholder and its chosen view.
func (p *Placeholder) SetEditing(editing bool) {
	p.editing = editing
	if p.state == Selected {
		p.child.SetEditing(editing)
	}
}

// Select fills the placeholder with the default view of the variant named by
// tag. Placeholders cannot be placed inside placeholders.
func (p *Placeholder) Select(r *Registry, tag string) (Node, error) {
	v, ok := r.Lookup(tag)
	if ok && v.Tag == TagPlaceholder {
		return nil, &dict.InvalidValueError{
			Key:     KeyType,
			Message: fmt.Sprintf("cannot fill a placeholder with %q", tag),
		}
	}
	n, err := r.New(tag)
	if err != nil {
		return nil, err
	}
	p.Set(n)
	return n, nil
}

// Set fills the placeholder with n. n adopts the placeholder's editing mode.
// A nil n clears the placeholder.
func (p *Placeholder) Set(n Node) {
	if n == nil {
		p.Clear()
		return
	}
	n.SetEditing(p.editing)
	p.state = Selected
	p.child = n
}

// Clear discards the chosen view.
func (p *Placeholder) Clear() {
	p.state = Unselected
	p.child = nil
}

// Dict encodes the chosen view when there is one. Otherwise it returns the
// placeholder's own record tagged as a placeholder.
func (p *Placeholder) Dict() dict.Dict {
	switch p.state {
	case Selected:
		return p.child.Dict()
	default:
		return tagged(TagPlaceholder, p.record.Clone())
	}
}

func decodePlaceholder(_ *Registry, d dict.Dict) (Node, error) {
	rec := d.Clone()
	delete(rec, KeyType)
	return &Placeholder{record: rec}, nil
}

func newPlaceholder(_ *Registry) (Node, error) {
	return NewPlaceholder(), nil
}
