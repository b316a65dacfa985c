package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dashdoc/dash/pkg/dict"
	dasherrors "github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/observability"
	"github.com/dashdoc/dash/pkg/view"
)

const splitJSON = `{"type":"Split","isVertical":true,"left":{"type":"Color","color":"#000000"},"right":{"type":"Color","color":"#FFFFFF"}}`

func TestNew(t *testing.T) {
	doc := New()
	if doc.Root() == nil || doc.Root().Kind() != view.TagPlaceholder {
		t.Fatalf("Root() = %v, want placeholder", doc.Root())
	}
	out, err := doc.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if string(out) != `{"type":"PlaceholderView"}` {
		t.Errorf("Save() = %s", out)
	}
}

func TestEmptyDocumentSave(t *testing.T) {
	var doc Document
	out, err := doc.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if string(out) != "{}" {
		t.Errorf("Save() = %s, want {}", out)
	}
	if doc.Editing() {
		t.Error("empty document Editing() = true")
	}
	doc.SetEditing(true)
}

func TestLoadSave(t *testing.T) {
	doc, err := Parse([]byte(splitJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := doc.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := `{"isVertical":true,"left":{"color":"#000000","type":"Color"},"right":{"color":"#FFFFFF","type":"Color"},"splitPosition":0.5,"type":"SplitView"}`
	if string(out) != want {
		t.Errorf("Save() = %s, want %s", out, want)
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Save()): %v", err)
	}
	out2, _ := again.Save()
	if string(out2) != string(out) {
		t.Errorf("second Save() = %s, want %s", out2, out)
	}
}

func TestSaveKeepsAmpersands(t *testing.T) {
	doc, err := Parse([]byte(`{"type":"WebView","url":"http://example.com/?a=1&b=2"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, _ := doc.Save()
	want := `{"type":"WebView","url":"http://example.com/?a=1&b=2","zoom":1}`
	if string(out) != want {
		t.Errorf("Save() = %s, want %s", out, want)
	}
}

func TestSaveIndent(t *testing.T) {
	doc, _ := Parse([]byte(`{"type":"Color","color":"#FF0000"}`))
	out, err := doc.SaveIndent()
	if err != nil {
		t.Fatalf("SaveIndent: %v", err)
	}
	want := "{\n  \"color\": \"#FF0000\",\n  \"type\": \"Color\"\n}\n"
	if string(out) != want {
		t.Errorf("SaveIndent() = %q, want %q", out, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"syntax", `{"type":`, func(err error) bool { return dasherrors.Is(err, dasherrors.ErrCodeInvalidDocument) }},
		{"array root", `[]`, func(err error) bool { return dasherrors.Is(err, dasherrors.ErrCodeInvalidDocument) }},
		{"trailing data", `{} {}`, func(err error) bool { return dasherrors.Is(err, dasherrors.ErrCodeInvalidDocument) }},
		{"missing type", `{}`, func(err error) bool {
			var mk *dict.MissingKeyError
			return errors.As(err, &mk) && mk.Key == "type"
		}},
		{"wrong type", `{"type":"SplitView","isVertical":"no","left":{},"right":{}}`, func(err error) bool {
			var wt *dict.WrongTypeError
			return errors.As(err, &wt) && wt.Key == "isVertical"
		}},
		{"invalid value", `{"type":"WebView","url":"not a url","zoom":2}`, func(err error) bool {
			var iv *dict.InvalidValueError
			return errors.As(err, &iv) && iv.Key == "url"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse([]byte(`{"type":"Color","color":"#00FF00"}`))
			before := doc.Root()

			err := doc.Load([]byte(tt.input))
			if err == nil || !tt.check(err) {
				t.Fatalf("Load(%s) error = %v", tt.input, err)
			}
			if doc.Root() != before {
				t.Error("failed Load replaced the root")
			}
		})
	}
}

func TestLoadReturnsDecodeErrorUnchanged(t *testing.T) {
	var doc Document
	err := doc.Load([]byte(`{"type":"Color"}`))
	if _, ok := err.(*dict.MissingKeyError); !ok {
		t.Errorf("Load error type = %T, want *dict.MissingKeyError", err)
	}
}

func TestSetEditingAndFind(t *testing.T) {
	doc, err := Parse([]byte(`{"type":"SplitView","isVertical":false,
		"left":{"type":"PageView","pages":[{"type":"Color","color":"#123456"}],"timeOnEachPage":1,"animationDuration":1},
		"right":{"type":"Color","color":"#FFFFFF"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc.SetEditing(true)

	n, err := doc.Find("0/0")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !n.Editing() {
		t.Error("nested page Editing() = false, want true")
	}
	if hex := n.(*view.Color).Hex(); hex != "#123456" {
		t.Errorf("Find(0/0) = %s, want #123456", hex)
	}
	if _, err := doc.Find("x"); !dasherrors.Is(err, dasherrors.ErrCodeInvalidPath) {
		t.Errorf("Find(x) error = %v, want INVALID_PATH", err)
	}
}

func TestCustomRegistry(t *testing.T) {
	r := view.NewRegistry(view.Options{URL: "https://dash.example", TimeOnEachPage: time.Second, AnimationDuration: time.Second})
	doc := NewWithRegistry(r)
	p := doc.Root().(*view.Placeholder)
	if _, err := p.Select(doc.Registry(), view.TagWebPage); err != nil {
		t.Fatalf("Select: %v", err)
	}
	out, _ := doc.Save()
	if want := `{"type":"WebView","url":"https://dash.example","zoom":1}`; string(out) != want {
		t.Errorf("Save() = %s, want %s", out, want)
	}
}

type recordingHooks struct {
	observability.NoopDocumentHooks
	loads []error
	saves int
}

func (h *recordingHooks) OnLoad(_ context.Context, _, _ int, _ time.Duration, err error) {
	h.loads = append(h.loads, err)
}

func (h *recordingHooks) OnSave(context.Context, int, int, time.Duration, error) { h.saves++ }

func TestHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetDocumentHooks(h)
	defer observability.Reset()

	doc := New()
	_ = doc.Load([]byte(splitJSON))
	_ = doc.Load([]byte(`{"type":"Nope"}`))
	_, _ = doc.Save()

	if len(h.loads) != 2 || h.loads[0] != nil || h.loads[1] == nil {
		t.Errorf("loads = %v, want [nil, error]", h.loads)
	}
	if h.saves != 1 {
		t.Errorf("saves = %d, want 1", h.saves)
	}
}

func TestBundleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "welcome.dash")

	doc, _ := Parse([]byte(splitJSON))
	if err := WriteFile(bundle, doc, true); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(bundle, ContentsFile)); err != nil {
		t.Fatalf("contents.json missing: %v", err)
	}

	extra := filepath.Join(bundle, "thumbnail.png")
	if err := os.WriteFile(extra, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(bundle, doc, false); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}
	if _, err := os.Stat(extra); err != nil {
		t.Errorf("unrelated bundle file removed: %v", err)
	}

	loaded, err := ReadFile(bundle)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got, _ := loaded.Save()
	want, _ := doc.Save()
	if string(got) != string(want) {
		t.Errorf("ReadFile() = %s, want %s", got, want)
	}
}

func TestFlatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	doc, _ := Parse([]byte(`{"type":"Color","color":"#ABCDEF"}`))
	if err := WriteFile(path, doc, false); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"color":"#ABCDEF","type":"Color"}` {
		t.Errorf("file = %s", data)
	}
	if IsBundle(path) {
		t.Error("IsBundle(flat file) = true")
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadFile(filepath.Join(dir, "missing.dash")); !dasherrors.Is(err, dasherrors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"type":"Color"}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(bad)
	var mk *dict.MissingKeyError
	if !errors.As(err, &mk) || mk.Key != "color" {
		t.Errorf("ReadFile(bad) error = %v, want MissingKeyError for color", err)
	}
}
