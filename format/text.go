package format

import (
	"io"

	"github.com/Unificon/confluence-content-parser/parser"
)

type TextEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	text := e.doc.Text()
	if text != "" {
		text += "\n"
	}
	return []byte(text), nil
}
