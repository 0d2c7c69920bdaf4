package parser

import (
	"iter"
	"slices"

	"github.com/Unificon/confluence-content-parser/node"
)

// Document is the immutable result of one parse call. A Document with no
// content has a nil root; every accessor tolerates that.
type Document struct {
	root  node.Node
	diags []string
}

// Root returns the single root node, or nil for empty input.
func (d *Document) Root() node.Node { return d.root }

// Diagnostics returns the diagnostic records collected during the parse,
// in order of first encounter.
func (d *Document) Diagnostics() []string {
	return slices.Clone(d.diags)
}

// Metadata returns the document's metadata mapping. The "diagnostics" entry
// is always present.
func (d *Document) Metadata() map[string]any {
	return map[string]any{"diagnostics": d.Diagnostics()}
}

// Text renders the whole document as plain text.
func (d *Document) Text() string {
	if d.root == nil {
		return ""
	}
	return d.root.Text()
}

// Walk yields every node in the tree in depth-first pre-order.
func (d *Document) Walk() iter.Seq[node.Node] {
	return node.Walk(d.root)
}

// FindAll collects nodes of the requested kinds, one bucket per kind,
// each bucket in document order.
func (d *Document) FindAll(kinds ...node.Kind) [][]node.Node {
	return node.FindAll(d.root, kinds...)
}
