package document

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/dashdoc/dash/pkg/dict"
	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/observability"
	"github.com/dashdoc/dash/pkg/view"
)

// Document holds the root of a view tree. The zero value is an empty
// document with no root that decodes through [view.Default].
type Document struct {
	registry *view.Registry
	root     view.Node
}

// New creates a document whose root is a single unselected placeholder.
func New() *Document {
	return &Document{root: view.NewPlaceholder()}
}

// NewWithRegistry creates a placeholder document that decodes and fills its
// placeholders through r.
func NewWithRegistry(r *view.Registry) *Document {
	return &Document{registry: r, root: view.NewPlaceholder()}
}

// Parse decodes data into a new document.
func Parse(data []byte) (*Document, error) {
	d := &Document{}
	if err := d.Load(data); err != nil {
		return nil, err
	}
	return d, nil
}

// Registry returns the registry used to decode the document.
func (d *Document) Registry() *view.Registry {
	if d.registry == nil {
		return view.Default
	}
	return d.registry
}

// Root returns the root node, or nil for an empty document.
func (d *Document) Root() view.Node { return d.root }

// SetRoot replaces the root node. A nil root empties the document.
func (d *Document) SetRoot(n view.Node) { d.root = n }

// SetEditing sets editing mode on the whole tree.
func (d *Document) SetEditing(editing bool) {
	if d.root != nil {
		d.root.SetEditing(editing)
	}
}

// Editing reports whether the root is in editing mode.
func (d *Document) Editing() bool {
	return d.root != nil && d.root.Editing()
}

// Find returns the node at a slash-separated path of child indices.
func (d *Document) Find(path string) (view.Node, error) {
	p, err := view.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return view.Find(d.root, p)
}

// Load replaces the document's tree with the one decoded from data.
//
// JSON syntax errors and roots that are not objects are returned as
// [errors.ErrCodeInvalidDocument]. Decode failures are returned unchanged
// as the typed errors of package dict. On any error the current root is
// kept.
func (d *Document) Load(data []byte) error {
	return d.LoadContext(context.Background(), data)
}

// LoadContext is [Document.Load] reporting to the observability hooks
// through ctx.
func (d *Document) LoadContext(ctx context.Context, data []byte) error {
	start := time.Now()
	root, err := d.decode(data)
	nodes := 0
	if err == nil {
		nodes = view.Count(root)
		d.root = root
	}
	observability.Document().OnLoad(ctx, len(data), nodes, time.Since(start), err)
	return err
}

func (d *Document) decode(data []byte) (view.Node, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid JSON")
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document root must be an object, got %s", dict.TypeName(raw))
	}
	return d.Registry().Decode(dict.Dict(m))
}

// Save encodes the tree as compact JSON. An empty document encodes as {}.
func (d *Document) Save() ([]byte, error) {
	return d.SaveContext(context.Background(), false)
}

// SaveIndent encodes the tree as indented JSON followed by a newline.
func (d *Document) SaveIndent() ([]byte, error) {
	return d.SaveContext(context.Background(), true)
}

// SaveContext encodes the tree, reporting to the observability hooks
// through ctx.
func (d *Document) SaveContext(ctx context.Context, indent bool) ([]byte, error) {
	start := time.Now()
	data, err := Marshal(view.Encode(d.root), indent)
	observability.Document().OnSave(ctx, len(data), view.Count(d.root), time.Since(start), err)
	return data, err
}

// Dict returns the record of the root node.
func (d *Document) Dict() dict.Dict {
	return view.Encode(d.root)
}

// Marshal encodes a record as JSON without HTML escaping, so URLs keep
// their ampersands. Indented output ends with a newline; compact output
// does not.
func Marshal(d dict.Dict, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	if indent {
		return buf.Bytes(), nil
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
