package view

import (
	"github.com/dashdoc/dash/pkg/dict"
)

// KeyType is the discriminator key present in every encoded node.
const KeyType = "type"

// Node is a view in a document tree.
type Node interface {
	// Kind returns the variant's canonical tag.
	Kind() string

	// Dict encodes the node and its subtree. The result always carries
	// KeyType set to the canonical tag of the variant that produced it.
	Dict() dict.Dict

	// Children returns the direct children in display order.
	Children() []Node

	// Editing reports whether the node is in editing mode.
	Editing() bool

	// SetEditing sets editing mode on the node and all of its descendants.
	SetEditing(editing bool)
}

// FromDict decodes a node tree using the [Default] registry.
func FromDict(d dict.Dict) (Node, error) {
	return Default.Decode(d)
}

// Encode returns the record for n, or an empty record when n is nil.
func Encode(n Node) dict.Dict {
	if n == nil {
		return dict.Dict{}
	}
	return n.Dict()
}

// base holds the editing flag shared by every variant.
type base struct {
	editing bool
}

func (b *base) Editing() bool { return b.editing }

// tagged returns fields with KeyType set to tag, overwriting any existing value.
func tagged(tag string, fields dict.Dict) dict.Dict {
	fields[KeyType] = tag
	return fields
}
