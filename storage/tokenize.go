package storage

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Tokenize decomposes markup into a forest of top-level elements. It first
// runs the non-strict XML decoder; when that fails it retries with the HTML
// tokenizer, which accepts nearly anything. An error is returned only when
// both decoders give up, in which case no forest is produced.
func Tokenize(markup string) ([]*Element, error) {
	forest, xmlErr := decodeXML(markup)
	if xmlErr == nil {
		return forest, nil
	}
	forest, htmlErr := decodeHTML(markup)
	if htmlErr == nil {
		return forest, nil
	}
	return nil, fmt.Errorf("tokenize markup: %w", errors.Join(xmlErr, htmlErr))
}

// treeBuilder assembles a forest from a stream of start/end/text events.
// End events close the nearest matching open element; stray closers are
// ignored and elements still open at end of input are closed implicitly.
type treeBuilder struct {
	roots []*Element
	open  []*Element
}

func (b *treeBuilder) attach(el *Element) {
	if n := len(b.open); n > 0 {
		b.open[n-1].addChild(el)
		return
	}
	b.roots = append(b.roots, el)
}

func (b *treeBuilder) push(el *Element) {
	b.attach(el)
	b.open = append(b.open, el)
}

func (b *treeBuilder) close(space, local string) {
	for i := len(b.open) - 1; i >= 0; i-- {
		if b.open[i].Space == space && b.open[i].Local == local {
			b.open = b.open[:i]
			return
		}
	}
}

func (b *treeBuilder) text(s string) {
	if s == "" {
		return
	}
	if n := len(b.open); n > 0 {
		b.open[n-1].addText(s)
		return
	}
	if n := len(b.roots); n > 0 && b.roots[n-1].IsText() {
		b.roots[n-1].Text += s
		return
	}
	b.roots = append(b.roots, &Element{Text: s})
}

func decodeXML(markup string) ([]*Element, error) {
	d := xml.NewDecoder(strings.NewReader(markup))
	d.Strict = false
	d.Entity = xml.HTMLEntity

	var b treeBuilder
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Space: t.Name.Space, Local: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
			}
			b.push(el)
			// RawToken does not auto-close, so a bare <br> would swallow
			// its siblings. Void tags never have content; close them now.
			// The synthesized end tag of a <br/> then closes nothing.
			if t.Name.Space == "" && voidTags[t.Name.Local] {
				b.close(t.Name.Space, t.Name.Local)
			}
		case xml.EndElement:
			b.close(t.Name.Space, t.Name.Local)
		case xml.CharData:
			b.text(string(t))
		}
	}
	return b.roots, nil
}

// Tags the HTML tokenizer reports as start tags even though they never have
// content in storage format.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "col": true,
	"input": true, "wbr": true, "source": true,
}

func decodeHTML(markup string) ([]*Element, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b treeBuilder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return b.roots, nil
		case html.TextToken:
			b.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			space, local := splitQName(tok.Data)
			el := &Element{Space: space, Local: local}
			for _, a := range tok.Attr {
				as, al := splitQName(a.Key)
				el.Attrs = append(el.Attrs, Attr{Space: as, Local: al, Value: a.Val})
			}
			if tok.Type == html.SelfClosingTagToken || voidTags[local] {
				b.attach(el)
			} else {
				b.push(el)
			}
		case html.EndTagToken:
			tok := z.Token()
			space, local := splitQName(tok.Data)
			b.close(space, local)
		case html.CommentToken:
			// The HTML tokenizer reports CDATA sections as comments; the
			// content of plain-text bodies must not be lost to that.
			data := z.Token().Data
			if inner, ok := strings.CutPrefix(data, "[CDATA["); ok {
				b.text(strings.TrimSuffix(inner, "]]"))
			}
		}
	}
}

func splitQName(name string) (space, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
