package groupmask

import (
	"slices"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// Segmentation decides what counts as one character when grouping text and
// when counting cursor positions.
type Segmentation int

const (
	// Runes counts Unicode code points. This is what most text widgets use
	// for their selection indices.
	Runes Segmentation = iota
	// Graphemes counts user-perceived characters (extended grapheme clusters,
	// UAX #29). Combining marks and emoji sequences stay within their group.
	Graphemes
)

func (seg Segmentation) String() string {
	switch seg {
	case Runes:
		return "runes"
	case Graphemes:
		return "graphemes"
	}
	return "unknown"
}

// ParseSegmentation is the inverse of Segmentation.String. An empty string
// selects Runes.
func ParseSegmentation(s string) (Segmentation, error) {
	switch strings.ToLower(s) {
	case "", "runes", "rune":
		return Runes, nil
	case "graphemes", "grapheme":
		return Graphemes, nil
	}
	return Runes, ErrIllegalArguments
}

var graphemeSetup sync.Once

// Chars breaks text into characters.
func (seg Segmentation) Chars(text string) []string {
	if text == "" {
		return nil
	}
	if seg == Graphemes {
		graphemeSetup.Do(grapheme.SetupGraphemeClasses)
		gstr := grapheme.StringFromString(text)
		chars := make([]string, gstr.Len())
		for i := range chars {
			chars[i] = gstr.Nth(i)
		}
		return chars
	}
	chars := make([]string, 0, len(text))
	for _, r := range text {
		chars = append(chars, string(r))
	}
	return chars
}

// tokens breaks text into characters like Chars, but a grapheme cluster
// starting with sep is split into sep and the rest. A combining mark typed
// right behind a separator joins it into one cluster; it has to be kept as
// content, and the separator has to stay recognizable. Such a mark counts as a
// character of its own while grouping.
func (seg Segmentation) tokens(text string, sep rune) []string {
	chars := seg.Chars(text)
	if seg != Graphemes {
		return chars
	}
	s := string(sep)
	var split []string
	for i, c := range chars {
		if len(c) > len(s) && strings.HasPrefix(c, s) {
			if split == nil {
				split = slices.Clone(chars[:i])
			}
			split = append(split, s, c[len(s):])
		} else if split != nil {
			split = append(split, c)
		}
	}
	if split == nil {
		return chars
	}
	return split
}

// Length returns the number of characters in text.
func (seg Segmentation) Length(text string) int {
	if seg == Runes {
		return len([]rune(text))
	}
	return len(seg.Chars(text))
}

// Slice returns the characters [from, to) of text. Out of range indices are
// clipped.
func (seg Segmentation) Slice(text string, from, to int) string {
	chars := seg.Chars(text)
	from = clamp(from, 0, len(chars))
	to = clamp(to, from, len(chars))
	return strings.Join(chars[from:to], "")
}

// Truncate cuts text down to at most n characters. It never splits a
// character.
func (seg Segmentation) Truncate(text string, n int) string {
	chars := seg.Chars(text)
	if len(chars) <= n {
		return text
	}
	return strings.Join(chars[:max(n, 0)], "")
}

// Strip removes every occurrence of the separator from text. This is a pure
// character filter, not a content-aware split.
func (seg Segmentation) Strip(text string, sep rune) string {
	s := string(sep)
	var b strings.Builder
	for _, c := range seg.tokens(text, sep) {
		if c != s {
			b.WriteString(c)
		}
	}
	return b.String()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
