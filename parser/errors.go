package parser

import (
	"fmt"
	"strings"
)

// MalformedInputError reports markup that neither tokenizing strategy could
// turn into an element forest. It wraps the underlying decode failures.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// DiagnosticsError is returned by a strict parser when the build completed
// but recorded diagnostics. The Document behind it was discarded; reparse
// with the lenient policy to obtain the degraded tree.
type DiagnosticsError struct {
	Diagnostics []string
}

func (e *DiagnosticsError) Error() string {
	return fmt.Sprintf("parse completed with %d diagnostics: %s",
		len(e.Diagnostics), strings.Join(e.Diagnostics, "; "))
}
