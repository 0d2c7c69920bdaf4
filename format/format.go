// Package format renders parsed documents for output: indented JSON for
// machine consumers, plain text, and an indented tree dump for inspection.
package format

import (
	"encoding"

	"github.com/Unificon/confluence-content-parser/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *parser.Document) error
}
