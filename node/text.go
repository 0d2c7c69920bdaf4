package node

import "strings"

// joinText renders children with the canonical joining policy: inline
// siblings are concatenated directly, a block sibling is separated from the
// text accumulated so far by exactly one blank line. Block children that
// render to nothing (a horizontal rule, an empty paragraph) contribute no
// separator either.
func joinText(nodes []Node) string {
	return joinTextSep(nodes, "\n\n")
}

// joinTextSep is joinText with a configurable block separator; list items use
// a single newline so that a nested list starts directly under its item.
func joinTextSep(nodes []Node, sep string) string {
	var b strings.Builder
	for _, n := range nodes {
		t := n.Text()
		if n.BlockLevel() {
			if t == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString(sep)
			}
		}
		b.WriteString(t)
	}
	return b.String()
}

// flattenLine collapses all whitespace runs, including block separators, to
// single spaces, producing a single trimmed line. Used by variants that
// render their body inline (panels, table cells).
func flattenLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
