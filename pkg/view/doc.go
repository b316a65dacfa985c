// Package view implements the Dash view tree: the node variants a document is
// built from and the protocol that converts them to and from records.
//
// # Overview
//
// A document describes a tree of display views. Each node is one of five
// variants, identified in its record by the "type" discriminator:
//
//	SplitView        two children side by side or stacked, with a divider position
//	PageView         ordered children shown one at a time, with dwell and animation durations
//	WebView          an embedded web page with a zoom factor
//	Color            a solid color swatch
//	PlaceholderView  an empty slot that becomes a concrete view when one is chosen
//
// # Decoding
//
// [FromDict] reads the "type" key, finds the matching variant in the
// [Default] registry and asks it to decode the record. Composite variants
// decode their children through the same registry, so a whole tree is
// built in one call. Any failure anywhere in the tree is returned unchanged
// as one of the typed errors of package dict; no partial tree is returned.
//
//	n, err := view.FromDict(dict.Dict{"type": "Color", "color": "#FF0000"})
//
// Tags are matched against each variant's canonical tag and its aliases, so
// "Split" decodes as a SplitView. Encoding always emits the canonical tag.
//
// # Encoding
//
// Every [Node] returns its own record from Dict, with "type" set to its
// canonical tag and children encoded recursively:
//
//	d := n.Dict() // {"type": "Color", "color": "#FF0000"}
//
// Optional fields are always written back with their effective value, so a
// split decoded without "splitPosition" re-encodes with "splitPosition": 0.5.
//
// # Editing Mode
//
// Every node carries an editing flag. Setting it on a composite node sets
// it on all of its children, depth first, before returning:
//
//	root.SetEditing(true)
//
// # Placeholders
//
// A [Placeholder] is either unselected, in which case it re-emits the record
// it was decoded from, or selected, in which case it emits its child's record
// instead. [Placeholder.Select] fills it with the default node of a variant.
//
// # Concurrency
//
// Nodes are not safe for concurrent mutation. A tree has a single owner.
package view
