package storage

import "testing"

func TestTokenizeSimpleTree(t *testing.T) {
	roots, err := Tokenize("<p>Hello <strong>world</strong>!</p>")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	p := roots[0]
	if p.QName() != "p" {
		t.Fatalf("root = %q, want p", p.QName())
	}
	if len(p.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(p.Children))
	}
	if p.Children[0].Text != "Hello " {
		t.Errorf("first child text = %q", p.Children[0].Text)
	}
	if p.Children[1].QName() != "strong" || p.Children[1].InnerText() != "world" {
		t.Errorf("second child = %q %q", p.Children[1].QName(), p.Children[1].InnerText())
	}
	if p.Children[2].Text != "!" {
		t.Errorf("third child text = %q", p.Children[2].Text)
	}
}

func TestTokenizeKeepsNamespacePrefixes(t *testing.T) {
	markup := `<ac:structured-macro ac:name="info"><ac:parameter ac:name="title">T</ac:parameter></ac:structured-macro>`
	roots, err := Tokenize(markup)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	macro := roots[0]
	if macro.Space != "ac" || macro.Local != "structured-macro" {
		t.Fatalf("root = %q", macro.QName())
	}
	if got := macro.AttrOr("ac", "name", ""); got != "info" {
		t.Errorf("ac:name = %q, want info", got)
	}
	param := macro.FirstChild("ac", "parameter")
	if param == nil {
		t.Fatal("no ac:parameter child")
	}
	if param.InnerText() != "T" {
		t.Errorf("parameter text = %q, want T", param.InnerText())
	}
}

func TestTokenizeCDATA(t *testing.T) {
	roots, err := Tokenize(`<ac:plain-text-body><![CDATA[if (a < b) { return; }]]></ac:plain-text-body>`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := roots[0].InnerText(); got != "if (a < b) { return; }" {
		t.Errorf("InnerText = %q", got)
	}
}

func TestTokenizeBalancesUnclosedTags(t *testing.T) {
	roots, err := Tokenize("<p><strong>bold</p>")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	p := roots[0]
	if p.QName() != "p" || len(p.ChildElements()) != 1 {
		t.Fatalf("unexpected shape: %q with %d child elements", p.QName(), len(p.ChildElements()))
	}
	if got := p.ChildElements()[0].InnerText(); got != "bold" {
		t.Errorf("strong text = %q", got)
	}
}

func TestTokenizeVoidTags(t *testing.T) {
	roots, err := Tokenize("<p>a<br/>b</p>")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	p := roots[0]
	if len(p.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(p.Children))
	}
	if p.Children[2].Text != "b" {
		t.Errorf("text after br = %q, want b", p.Children[2].Text)
	}
}

func TestTokenizeHTMLFallback(t *testing.T) {
	// Unquoted attributes are not XML; the HTML pass picks them up.
	roots, err := Tokenize(`<p class=lead>hi</p>`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	p := roots[0]
	if got := p.AttrOr("", "class", ""); got != "lead" {
		t.Errorf("class = %q, want lead", got)
	}
	if p.InnerText() != "hi" {
		t.Errorf("text = %q, want hi", p.InnerText())
	}
}

func TestTokenizeMultipleRoots(t *testing.T) {
	roots, err := Tokenize("<h1>A</h1><p>B</p>")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].QName() != "h1" || roots[1].QName() != "p" {
		t.Errorf("roots = %q, %q", roots[0].QName(), roots[1].QName())
	}
}

func TestTokenizeCoalescesTextRuns(t *testing.T) {
	roots, err := Tokenize("<p>a&amp;b</p>")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	p := roots[0]
	if len(p.Children) != 1 {
		t.Fatalf("got %d children, want 1 coalesced text run", len(p.Children))
	}
	if p.Children[0].Text != "a&b" {
		t.Errorf("text = %q, want a&b", p.Children[0].Text)
	}
}
