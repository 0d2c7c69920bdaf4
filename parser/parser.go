package parser

import (
	"github.com/Unificon/confluence-content-parser/node"
	"github.com/Unificon/confluence-content-parser/storage"
)

// Parser converts storage-format markup into Documents. A Parser holds only
// its configured policy and is safe for concurrent use; all per-call state
// lives in the builder and Collector created inside Parse.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict selects the error policy. Under the strict policy (the
// default) a parse that records any diagnostic fails with a
// DiagnosticsError; under the lenient policy the degraded Document is
// returned alongside its diagnostics.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// New returns a Parser with the strict policy unless overridden.
func New(opts ...Option) *Parser {
	p := &Parser{strict: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a Document from markup. Input that cannot be tokenized at
// all fails with a MalformedInputError regardless of policy.
func (p *Parser) Parse(markup string) (*Document, error) {
	forest, err := storage.Tokenize(markup)
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	diags := &Collector{}
	b := &builder{diags: diags}
	nodes := b.nodes(forest)

	var root node.Node
	switch len(nodes) {
	case 0:
	case 1:
		root = nodes[0]
	default:
		root = &node.Fragment{Nodes: nodes}
	}

	doc := &Document{root: root, diags: diags.Records()}
	if p.strict && len(doc.diags) > 0 {
		return nil, &DiagnosticsError{Diagnostics: doc.diags}
	}
	return doc, nil
}
