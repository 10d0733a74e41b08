package groupmask

import (
	"strings"
)

// Format maps text to its display form under rules, counting characters as
// code points. See Segmentation.Format.
func Format(text string, rules *RuleSet, sep rune) string {
	return Runes.Format(text, rules, sep)
}

// Strip removes every occurrence of sep from text.
func Strip(text string, sep rune) string {
	return Runes.Strip(text, sep)
}

// Truncate cuts text down to at most n code points.
func Truncate(text string, n int) string {
	return Runes.Truncate(text, n)
}

// Format maps text to its display form under rules.
//
// The result depends only on the sequence of non-separator characters of
// text, so separators may sit anywhere in the input, and
//
//	Format(Format(x)) == Format(x)
//
// A separator is written after a character whenever the running output length
// hits a boundary of rules and more content characters follow; there is never
// a trailing separator. Format does not cap the length of the result. Content
// exceeding rules.RawMaxLength() is appended without further separators;
// callers truncate to rules.FormattedMaxLength().
func (seg Segmentation) Format(text string, rules *RuleSet, sep rune) string {
	chars := seg.tokens(text, sep)
	s := string(sep)
	remaining := 0
	for _, c := range chars {
		if c != s {
			remaining++
		}
	}
	var b strings.Builder
	b.Grow(len(text) + rules.SeparatorCount())
	n := 0 // output length in characters
	for _, c := range chars {
		if c == s {
			continue
		}
		b.WriteString(c)
		n++
		remaining--
		// "more input remains" has to count content only: trailing
		// separators in the input must not produce a trailing separator
		if remaining > 0 && rules.IsBoundary(n) {
			b.WriteString(s)
			n++
		}
	}
	return b.String()
}

// Display formats text and truncates the result to the maximum formatted
// length of rules. This is the text a masked widget shows.
func (seg Segmentation) Display(text string, rules *RuleSet, sep rune) string {
	return seg.Truncate(seg.Format(text, rules, sep), rules.FormattedMaxLength())
}
