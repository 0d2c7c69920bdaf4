// Package parser turns Confluence storage-format markup into an immutable
// Document of content nodes. Recoverable irregularities never abort a parse;
// they degrade locally and surface as ordered diagnostic records on the
// Document (or, under the strict policy, as a DiagnosticsError).
package parser

import "slices"

// Collector accumulates diagnostic records in order of first encounter
// during the depth-first build. A fresh Collector is created for every parse
// call and handed to the resulting Document, never shared across calls.
type Collector struct {
	records []string
}

func (c *Collector) add(record string) {
	c.records = append(c.records, record)
}

// UnknownElement records a tag with no dispatch-table entry.
func (c *Collector) UnknownElement(tag string) {
	c.add("unknown_element:" + tag)
}

// UnknownMacro records a structured-macro name with no registry entry.
func (c *Collector) UnknownMacro(name string) {
	c.add("unknown_macro:" + name)
}

// InvalidField records a missing or malformed attribute or parameter.
func (c *Collector) InvalidField(detail string) {
	c.add("invalid_field:" + detail)
}

// Records returns the accumulated diagnostics in order.
func (c *Collector) Records() []string {
	return slices.Clone(c.records)
}
