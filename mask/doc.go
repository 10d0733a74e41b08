/*
Package mask binds a grouping mask to an interactive text widget.

A Controller subscribes to a widget's "content changed" notifications. After
every user edit it re-formats the widget's text, caps it to the maximum
length of the mask, moves the cursor across inserted or removed separators
and writes text and cursor back to the widget:

	ctrl, err := mask.NewController(widget, groupmask.MustRuleSet(3, 4, 4),
		mask.WithSeparator('-'))

Everything happens synchronously inside the notification handler. A Controller
belongs to exactly one widget and must not be used concurrently.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package mask

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
