/*
Package termfield draws a field.TextField as a single line on a terminal
and feeds it with key strokes.

A Field renders its text with one color per group, so a user can see how
the mask splits the input while typing. Cursor positions are converted to
terminal columns with UAX #11 widths, which keeps the cursor in place for
East Asian wide characters.

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package termfield

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'groupmask'
func tracer() tracing.Trace {
	return tracing.Select("groupmask")
}
