package view

import (
	"strconv"
	"strings"

	"github.com/dashdoc/dash/pkg/errors"
)

// Path addresses a node by the child index taken at each level, starting
// from the root. The empty path is the root itself.
type Path []int

// String formats the path as "/0/1". The root is "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// Child returns a new path extending p with index i.
func (p Path) Child(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

// ParsePath parses a path in the form produced by [Path.String]. The leading
// slash is optional and "" also denotes the root.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "invalid path %q: bad index %q", s, part)
		}
		p[i] = n
	}
	return p, nil
}

// WalkFunc is called for every node visited by [Walk]. Returning false skips
// the node's descendants.
type WalkFunc func(n Node, path Path, depth int) bool

// Walk visits root and its descendants depth-first in display order.
func Walk(root Node, fn WalkFunc) {
	if root == nil {
		return
	}
	walk(root, Path{}, fn)
}

func walk(n Node, path Path, fn WalkFunc) {
	if !fn(n, path, len(path)) {
		return
	}
	for i, c := range n.Children() {
		walk(c, path.Child(i), fn)
	}
}

// Find returns the node at path below root.
func Find(root Node, path Path) (Node, error) {
	n := root
	for depth, i := range path {
		if n == nil {
			break
		}
		children := n.Children()
		if i < 0 || i >= len(children) {
			return nil, errors.New(errors.ErrCodeNotFound, "no node at %s: %s has %d children", path, Path(path[:depth]), len(children))
		}
		n = children[i]
	}
	if n == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "no node at %s", path)
	}
	return n, nil
}

// Count returns the number of nodes in the tree rooted at root. A selected
// placeholder and its view count as two nodes.
func Count(root Node) int {
	count := 0
	Walk(root, func(Node, Path, int) bool {
		count++
		return true
	})
	return count
}
