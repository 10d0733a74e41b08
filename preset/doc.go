/*
Package preset manages named mask definitions.

Presets are read from TOML or YAML files of the form

	[preset.mobile]
	groups = [3, 4, 4]
	separator = "-"

	[preset.card]
	groups = [4, 4, 4, 4]
	segmentation = "runes"

An omitted separator is a space. Definitions are validated before they are
resolved into rule sets.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package preset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'groupmask'
func tracer() tracing.Trace {
	return tracing.Select("groupmask")
}
