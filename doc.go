/*
Package groupmask formats user input into separator-delimited groups while it
is being typed.

Masks

A mask is described by a RuleSet, i.e. an ordered list of group lengths, and a
separator character. With rules 3-4-4 and separator '-', input "12345678901"
is displayed as

	123-4567-8901

The interesting part is not the formatting itself, but doing it on every
keystroke: separators are inserted and removed around the user's cursor, and
the cursor has to stay with the character the user was editing. Format is
therefore idempotent and independent of where separators currently sit in the
input, and Remap moves a cursor across separator churn.

	rules := groupmask.MustRuleSet(3, 4, 4)
	display := groupmask.Format("1234", rules, '-')          // "123-4"
	cursor := groupmask.Remap("1234", display, 4, '-')      // 5

Positions

All lengths and positions are counted in characters, never in bytes. What a
character is, is decided by a Segmentation: Unicode code points (Runes, the
default) or user-perceived characters (Graphemes), where e.g. a flag emoji
or a letter with combining accents counts as one.

Package mask binds a RuleSet to an interactive text widget.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package groupmask

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaskError is an error type for the groupmask module
type MaskError string

func (e MaskError) Error() string {
	return string(e)
}

// ErrInvalidRule is flagged whenever a set of grouping rules is empty or
// contains a group of non-positive length.
const ErrInvalidRule = MaskError("invalid grouping rule")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MaskError("illegal arguments")
