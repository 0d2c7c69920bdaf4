// Package storage decomposes raw Confluence storage-format markup into a
// generic element forest. It is the tokenizing boundary of the library: the
// packages above it never look at raw markup, only at Elements.
//
// Storage format is XML-shaped but rarely well-formed XML: namespace prefixes
// such as ac: and ri: are used without declarations, elements are left
// unclosed, and HTML entities appear freely. Decoding therefore runs the
// encoding/xml decoder in non-strict mode first and falls back to the
// golang.org/x/net/html tokenizer when the input is too broken even for that.
package storage

import "strings"

// Attr is a single attribute with its namespace prefix split off,
// e.g. ac:name="code" becomes {Space: "ac", Local: "name", Value: "code"}.
type Attr struct {
	Space string
	Local string
	Value string
}

// Element is one node of the decoded forest: either a tag with attributes and
// ordered children, or a raw text run (Local == "", Text set).
type Element struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// IsText reports whether the element is a raw text run.
func (e *Element) IsText() bool { return e.Local == "" }

// QName returns the qualified tag name as written in the source,
// e.g. "ac:structured-macro" or "p".
func (e *Element) QName() string {
	if e.Space == "" {
		return e.Local
	}
	return e.Space + ":" + e.Local
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(space, local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == space && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute, or def when absent.
func (e *Element) AttrOr(space, local, def string) string {
	if v, ok := e.Attr(space, local); ok {
		return v
	}
	return def
}

// ChildElements returns the non-text children in source order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if !c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first child element with the given qualified name,
// or nil.
func (e *Element) FirstChild(space, local string) *Element {
	for _, c := range e.Children {
		if c.Space == space && c.Local == local {
			return c
		}
	}
	return nil
}

// InnerText concatenates every text run in the subtree, in source order.
func (e *Element) InnerText() string {
	var b strings.Builder
	e.innerText(&b)
	return b.String()
}

func (e *Element) innerText(b *strings.Builder) {
	if e.IsText() {
		b.WriteString(e.Text)
		return
	}
	for _, c := range e.Children {
		c.innerText(b)
	}
}

func (e *Element) addChild(c *Element) {
	if c != nil {
		e.Children = append(e.Children, c)
	}
}

// addText appends a text run, coalescing with a preceding run.
func (e *Element) addText(s string) {
	if s == "" {
		return
	}
	if n := len(e.Children); n > 0 && e.Children[n-1].IsText() {
		e.Children[n-1].Text += s
		return
	}
	e.Children = append(e.Children, &Element{Text: s})
}
