package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/Unificon/confluence-content-parser/node"
	"github.com/Unificon/confluence-content-parser/parser"
)

// TreeEncoder writes one node per line, indented by depth, with a short
// inline summary for leaves. Meant for eyeballing a parse result.
type TreeEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if root := e.doc.Root(); root != nil {
		writeTree(&sb, root, 0)
	}
	for _, d := range e.doc.Diagnostics() {
		fmt.Fprintf(&sb, "! %s\n", d)
	}
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, n node.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind().String())
	if summary := nodeSummary(n); summary != "" {
		fmt.Fprintf(sb, " %q", summary)
	}
	sb.WriteByte('\n')
	for _, c := range n.Children() {
		writeTree(sb, c, depth+1)
	}
}

// nodeSummary is a single truncated line for nodes that carry their own
// text, so the dump stays one line per node.
func nodeSummary(n node.Node) string {
	if len(n.Children()) > 0 {
		return ""
	}
	s := strings.Join(strings.Fields(n.Text()), " ")
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
