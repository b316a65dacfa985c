package outline

import (
	"bytes"
	"testing"

	"github.com/dashdoc/dash/pkg/document"
	"github.com/dashdoc/dash/pkg/view"
)

const sample = `{"type":"SplitView","isVertical":true,
	"left":{"type":"PageView","pages":[{"type":"Color","color":"#FF0000"},{"type":"Placeholder"}],"timeOnEachPage":3,"animationDuration":0.5},
	"right":{"type":"WebView","url":"http://example.com","zoom":1.2}}`

func load(t *testing.T, s string) view.Node {
	t.Helper()
	doc, err := document.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc.Root()
}

func TestEntries(t *testing.T) {
	entries := Entries(load(t, sample))
	want := []struct {
		path, typ, summary string
		depth              int
	}{
		{"/", "SplitView", "vertical at 0.5", 0},
		{"/0", "PageView", "2 pages, 3s on each, 500ms animation", 1},
		{"/0/0", "Color", "#FF0000", 2},
		{"/0/1", "PlaceholderView", "empty", 2},
		{"/1", "WebView", "http://example.com at 1.2×", 1},
	}
	if len(entries) != len(want) {
		t.Fatalf("len(Entries()) = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		e := entries[i]
		if e.Path != w.path || e.Type != w.typ || e.Summary != w.summary || e.Depth != w.depth {
			t.Errorf("Entries()[%d] = {%s %s %q %d}, want {%s %s %q %d}",
				i, e.Path, e.Type, e.Summary, e.Depth, w.path, w.typ, w.summary, w.depth)
		}
	}
}

func TestEntriesNil(t *testing.T) {
	if got := Entries(nil); len(got) != 0 {
		t.Errorf("Entries(nil) = %v, want empty", got)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, load(t, sample), Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SplitView vertical at 0.5\n" +
		"├── PageView 2 pages, 3s on each, 500ms animation\n" +
		"│   ├── Color ██ #FF0000\n" +
		"│   └── PlaceholderView empty\n" +
		"└── WebView http://example.com at 1.2×\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderAttributesAndEditing(t *testing.T) {
	root := load(t, `{"type":"Color","color":"#00FF00"}`)
	root.SetEditing(true)

	var buf bytes.Buffer
	if err := Render(&buf, root, Options{Paths: true, Attributes: true}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "/        Color ██ #00FF00 [editing]\n" +
		"           Color: #00FF00\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), want)
	}
}
