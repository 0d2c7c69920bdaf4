package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Unificon/confluence-content-parser/parser"
)

func parseLenient(t *testing.T, markup string) *parser.Document {
	t.Helper()
	doc, err := parser.New(parser.WithStrict(false)).Parse(markup)
	if err != nil {
		t.Fatalf("Parse(%q): %v", markup, err)
	}
	return doc
}

func TestJSONEncoder(t *testing.T) {
	doc := parseLenient(t, "<h1>Title</h1><p>body</p>")

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded struct {
		Root struct {
			Kind     string `json:"kind"`
			Children []struct {
				Kind  string         `json:"kind"`
				Attrs map[string]any `json:"attrs"`
			} `json:"children"`
		} `json:"root"`
		Diagnostics []string `json:"diagnostics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Root.Kind != "Fragment" {
		t.Errorf("root kind = %q, want Fragment", decoded.Root.Kind)
	}
	if len(decoded.Root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(decoded.Root.Children))
	}
	if decoded.Root.Children[0].Kind != "Heading" {
		t.Errorf("first child kind = %q, want Heading", decoded.Root.Children[0].Kind)
	}
	if level, ok := decoded.Root.Children[0].Attrs["level"].(float64); !ok || level != 1 {
		t.Errorf("heading level attr = %v, want 1", decoded.Root.Children[0].Attrs["level"])
	}
	if len(decoded.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none", decoded.Diagnostics)
	}
}

func TestJSONEncoderDiagnostics(t *testing.T) {
	doc := parseLenient(t, "<mystery/>")

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "unknown_element:mystery") {
		t.Errorf("output lacks the diagnostic:\n%s", buf.String())
	}
}

func TestTextEncoder(t *testing.T) {
	doc := parseLenient(t, "<p>Hello world!</p>")

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.String(), "Hello world!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTextEncoderEmptyDocument(t *testing.T) {
	doc := parseLenient(t, "")

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestTreeEncoder(t *testing.T) {
	doc := parseLenient(t, "<h1>Title</h1><p>body <mystery/></p>")

	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "Fragment\n" +
		"  Heading\n" +
		"    Text \"Title\"\n" +
		"  TextBreak\n" +
		"    Text \"body\"\n" +
		"    Container\n" +
		"! unknown_element:mystery\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}
