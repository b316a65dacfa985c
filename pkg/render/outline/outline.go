package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dashdoc/dash/pkg/view"
)

// Entry is one line of an outline.
type Entry struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Depth   int    `json:"depth"`
	Summary string `json:"summary,omitempty"`
	Editing bool   `json:"editing,omitempty"`

	node view.Node
	last []bool // whether each ancestor (and the node itself) is its parent's last child
}

// Entries lists the tree rooted at root depth-first.
func Entries(root view.Node) []Entry {
	var out []Entry
	var walk func(n view.Node, path view.Path, last []bool)
	walk = func(n view.Node, path view.Path, last []bool) {
		out = append(out, Entry{
			Path:    path.String(),
			Type:    n.Kind(),
			Depth:   len(path),
			Summary: Summary(n),
			Editing: n.Editing(),
			node:    n,
			last:    last,
		})
		children := n.Children()
		for i, c := range children {
			next := append(append([]bool(nil), last...), i == len(children)-1)
			walk(c, path.Child(i), next)
		}
	}
	if root != nil {
		walk(root, view.Path{}, nil)
	}
	return out
}

// Summary returns a one-line description of n's own fields.
func Summary(n view.Node) string {
	switch v := n.(type) {
	case *view.Split:
		orientation := "horizontal"
		if v.Vertical() {
			orientation = "vertical"
		}
		return fmt.Sprintf("%s at %g", orientation, v.Position())
	case *view.Page:
		return fmt.Sprintf("%s, %s on each, %s animation", plural(v.Len(), "page"), v.TimeOnEachPage(), v.AnimationDuration())
	case *view.WebPage:
		return fmt.Sprintf("%s at %g×", v.URL(), v.Zoom())
	case *view.Color:
		return v.Hex()
	case *view.Placeholder:
		if _, ok := v.Selected(); ok {
			return "filled"
		}
		return "empty"
	}
	return ""
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Options configures outline rendering.
type Options struct {
	// Paths prefixes each line with the node's path.
	Paths bool
	// Attributes lists inspector attributes under each node.
	Attributes bool
}

// Render writes an outline of the tree to w. Styles are resolved against
// w, so color is only emitted when w is a color terminal.
func Render(w io.Writer, root view.Node, opts Options) error {
	r := lipgloss.NewRenderer(w)
	st := newStyles(r)

	var b strings.Builder
	for _, e := range Entries(root) {
		prefix := treePrefix(e.last)
		if opts.Paths {
			b.WriteString(st.path.Render(fmt.Sprintf("%-8s", e.Path)))
			b.WriteByte(' ')
		}
		b.WriteString(st.branch.Render(prefix))
		b.WriteString(st.kind.Render(e.Type))
		if c, ok := e.node.(*view.Color); ok {
			b.WriteByte(' ')
			b.WriteString(r.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██"))
		}
		if e.Summary != "" {
			b.WriteByte(' ')
			b.WriteString(st.summary.Render(e.Summary))
		}
		if e.Editing {
			b.WriteByte(' ')
			b.WriteString(st.editing.Render("[editing]"))
		}
		b.WriteByte('\n')

		if opts.Attributes {
			indent := attrIndent(e.last)
			if opts.Paths {
				indent = strings.Repeat(" ", 9) + indent
			}
			for _, a := range view.Attributes(e.node) {
				b.WriteString(indent)
				b.WriteString(st.label.Render(a.Label + ":"))
				b.WriteByte(' ')
				b.WriteString(st.value.Render(a.Value))
				b.WriteByte('\n')
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func treePrefix(last []bool) string {
	if len(last) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range last[:len(last)-1] {
		if l {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	if last[len(last)-1] {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	return b.String()
}

// attrIndent aligns attribute lines under the node's kind.
func attrIndent(last []bool) string {
	var b strings.Builder
	for _, l := range last {
		if l {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	b.WriteString("  ")
	return b.String()
}
