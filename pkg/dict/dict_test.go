package dict

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMissingKey(t *testing.T) {
	d := Dict{}
	lookups := map[string]func() error{
		"String":   func() error { _, err := d.String("k"); return err },
		"Float":    func() error { _, err := d.Float("k"); return err },
		"Bool":     func() error { _, err := d.Bool("k"); return err },
		"Dict":     func() error { _, err := d.Dict("k"); return err },
		"Dicts":    func() error { _, err := d.Dicts("k"); return err },
		"Duration": func() error { _, err := d.Duration("k"); return err },
		"URL":      func() error { _, err := d.URL("k"); return err },
	}
	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			err := lookup()
			var mk *MissingKeyError
			if !errors.As(err, &mk) {
				t.Fatalf("error = %v, want MissingKeyError", err)
			}
			if mk.Key != "k" {
				t.Errorf("Key = %q, want %q", mk.Key, "k")
			}
		})
	}
}

func TestWrongType(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		lookup   func(Dict) error
		expected string
		actual   string
	}{
		{"bool from string", "yes", func(d Dict) error { _, err := d.Bool("k"); return err }, TypeBool, TypeString},
		{"string from number", 3.0, func(d Dict) error { _, err := d.String("k"); return err }, TypeString, TypeNumber},
		{"number from bool", true, func(d Dict) error { _, err := d.Float("k"); return err }, TypeNumber, TypeBool},
		{"object from array", []any{}, func(d Dict) error { _, err := d.Dict("k"); return err }, TypeObject, TypeArray},
		{"array from object", map[string]any{}, func(d Dict) error { _, err := d.Dicts("k"); return err }, TypeArray, TypeObject},
		{"string from null", nil, func(d Dict) error { _, err := d.String("k"); return err }, TypeString, TypeNull},
		{"url from number", 1.0, func(d Dict) error { _, err := d.URL("k"); return err }, TypeString, TypeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup(Dict{"k": tt.value})
			var wt *WrongTypeError
			if !errors.As(err, &wt) {
				t.Fatalf("error = %v, want WrongTypeError", err)
			}
			if wt.Key != "k" || wt.Expected != tt.expected || wt.Actual != tt.actual {
				t.Errorf("got {%s %s %s}, want {k %s %s}", wt.Key, wt.Expected, wt.Actual, tt.expected, tt.actual)
			}
		})
	}
}

func TestFloatAcceptsGoNumbers(t *testing.T) {
	values := []any{2, int64(2), float32(2), uint8(2), 2.0, json.Number("2")}
	for _, v := range values {
		got, err := Dict{"n": v}.Float("n")
		if err != nil {
			t.Errorf("Float(%T) error: %v", v, err)
			continue
		}
		if got != 2 {
			t.Errorf("Float(%T) = %v, want 2", v, got)
		}
	}
}

func TestFloatOr(t *testing.T) {
	got, err := Dict{}.FloatOr("zoom", 1)
	if err != nil || got != 1 {
		t.Errorf("FloatOr(absent) = %v, %v; want 1, nil", got, err)
	}

	got, err = Dict{"zoom": 2.5}.FloatOr("zoom", 1)
	if err != nil || got != 2.5 {
		t.Errorf("FloatOr(present) = %v, %v; want 2.5, nil", got, err)
	}

	_, err = Dict{"zoom": "big"}.FloatOr("zoom", 1)
	var wt *WrongTypeError
	if !errors.As(err, &wt) {
		t.Errorf("FloatOr(wrong type) error = %v, want WrongTypeError", err)
	}
}

func TestDicts(t *testing.T) {
	t.Run("json list", func(t *testing.T) {
		var d Dict
		if err := json.Unmarshal([]byte(`{"pages":[{"type":"Color"},{"type":"WebView"}]}`), &d); err != nil {
			t.Fatal(err)
		}
		pages, err := d.Dicts("pages")
		if err != nil {
			t.Fatalf("Dicts() error: %v", err)
		}
		if len(pages) != 2 || pages[1]["type"] != "WebView" {
			t.Errorf("Dicts() = %v", pages)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		pages, err := Dict{"pages": []any{}}.Dicts("pages")
		if err != nil {
			t.Fatalf("Dicts() error: %v", err)
		}
		if len(pages) != 0 {
			t.Errorf("len = %d, want 0", len(pages))
		}
	})

	t.Run("typed slices", func(t *testing.T) {
		if got, err := (Dict{"p": []Dict{{}}}).Dicts("p"); err != nil || len(got) != 1 {
			t.Errorf("[]Dict: %v, %v", got, err)
		}
		if got, err := (Dict{"p": []map[string]any{{}, {}}}).Dicts("p"); err != nil || len(got) != 2 {
			t.Errorf("[]map: %v, %v", got, err)
		}
	})

	t.Run("non-object element", func(t *testing.T) {
		_, err := Dict{"pages": []any{map[string]any{}, "oops"}}.Dicts("pages")
		var wt *WrongTypeError
		if !errors.As(err, &wt) {
			t.Fatalf("error = %v, want WrongTypeError", err)
		}
		if wt.Key != "pages" {
			t.Errorf("Key = %q, want pages", wt.Key)
		}
		if wt.Actual != "array with string at index 1" {
			t.Errorf("Actual = %q", wt.Actual)
		}
	})
}

func TestDuration(t *testing.T) {
	tests := []struct {
		value   any
		want    time.Duration
		wantErr bool
	}{
		{3.0, 3 * time.Second, false},
		{0.5, 500 * time.Millisecond, false},
		{0.3, 300 * time.Millisecond, false},
		{0, 0, false},
		{-1.0, 0, true},
	}

	for _, tt := range tests {
		got, err := Dict{"d": tt.value}.Duration("d")
		if (err != nil) != tt.wantErr {
			t.Errorf("Duration(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Duration(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	_, err := Dict{"d": -1.0}.Duration("d")
	var iv *InvalidValueError
	if !errors.As(err, &iv) || iv.Key != "d" {
		t.Errorf("negative duration error = %v, want InvalidValueError for d", err)
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://example.com/dashboard", false},
		{"http://google.com", false},
		{"file:///tmp/index.html", false},
		{"mailto:ops@example.com", false},
		{"google.com", false},
		{"example.com/path?q=1", false},
		{"HTTP://Example.com/a?x=1&y=2", false},

		{"not a url", true},
		{"", true},
		{"http://exa mple.com", true},
		{"http://example.com\t", true},
		{"://missing-scheme", true},
		{"http://[::1", true},
		{"%zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Dict{"url": tt.input}.URL("url")
			if (err != nil) != tt.wantErr {
				t.Fatalf("URL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var iv *InvalidValueError
				if !errors.As(err, &iv) || iv.Key != "url" {
					t.Errorf("URL(%q) error = %v, want InvalidValueError for url", tt.input, err)
				}
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, TypeNull},
		{"s", TypeString},
		{true, TypeBool},
		{1.5, TypeNumber},
		{7, TypeNumber},
		{map[string]any{}, TypeObject},
		{Dict{}, TypeObject},
		{[]any{}, TypeArray},
		{struct{}{}, "struct {}"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.value); got != tt.want {
			t.Errorf("TypeName(%#v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&MissingKeyError{Key: "left"}, `missing key "left"`},
		{&WrongTypeError{Key: "isVertical", Expected: "bool", Actual: "string"}, `key "isVertical": expected bool, got string`},
		{&InvalidValueError{Key: "type", Message: "unknown view type"}, `key "type": unknown view type`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	d := Dict{"a": 1.0}
	c := d.Clone()
	c["b"] = 2.0
	if d.Has("b") {
		t.Error("Clone() shares the top-level map")
	}
}
