package jsontree

import (
	"strconv"
	"strings"
)

// RenderOptions controls tree rendering.
type RenderOptions struct {
	// CollapseDepth collapses containers at this depth and deeper.
	// The root is depth 0. Zero or less expands everything.
	CollapseDepth int

	// Indent is the per-level indentation. Defaults to two spaces.
	Indent string
}

// Render returns the indented tree view of the node.
//
// Object members render as "key": value and array elements as index: value.
// Collapsed containers render as {…} n keys or […] n items.
func (n *Node) Render(opts RenderOptions) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	var b strings.Builder
	r := renderer{opts: opts, b: &b}
	r.node(n, "", 0)
	return strings.TrimSuffix(b.String(), "\n")
}

type renderer struct {
	opts RenderOptions
	b    *strings.Builder
}

func (r *renderer) node(n *Node, label string, depth int) {
	r.b.WriteString(strings.Repeat(r.opts.Indent, depth))
	r.b.WriteString(label)

	if !n.IsContainer() {
		r.b.WriteString(scalar(n))
		r.b.WriteByte('\n')
		return
	}

	open, closing := "{", "}"
	if n.Kind == KindArray {
		open, closing = "[", "]"
	}

	if n.Len() == 0 {
		r.b.WriteString(open + closing + "\n")
		return
	}

	if r.opts.CollapseDepth > 0 && depth >= r.opts.CollapseDepth {
		r.b.WriteString(open + "…" + closing + " " + Summary(n) + "\n")
		return
	}

	r.b.WriteString(open + "\n")
	for i, child := range n.Children {
		childLabel := strconv.Itoa(i) + ": "
		if n.Kind == KindObject {
			childLabel = quote(child.Key) + ": "
		}
		r.node(child, childLabel, depth+1)
	}
	r.b.WriteString(strings.Repeat(r.opts.Indent, depth))
	r.b.WriteString(closing + "\n")
}

// Summary describes a container's size, e.g. "3 keys" or "1 item".
// Returns "" for scalars.
func Summary(n *Node) string {
	switch n.Kind {
	case KindObject:
		return plural(n.Len(), "key")
	case KindArray:
		return plural(n.Len(), "item")
	default:
		return ""
	}
}

func plural(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(count) + " " + noun + "s"
}

func scalar(n *Node) string {
	if n.Kind == KindString {
		return quote(n.Value)
	}
	return n.Value
}
