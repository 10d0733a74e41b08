/*
Package field implements an in-memory single line text field.

TextField plays the role of a host widget for package mask: it holds text and
a cursor, accepts user edits through a chain of input filters, and notifies
subscribers synchronously after every change of its content. It is used for
testing masks, and as the model behind package termfield.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package field

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'groupmask'
func tracer() tracing.Trace {
	return tracing.Select("groupmask")
}
