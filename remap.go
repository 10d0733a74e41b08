package groupmask

// Remap moves a cursor from before to after, counting characters as code
// points. See Segmentation.Remap.
func Remap(before, after string, cursor int, sep rune) int {
	return Runes.Remap(before, after, cursor, sep)
}

// Remap returns the cursor position in after which corresponds to position
// cursor in before, where after is the re-formatted version of before.
//
// Both strings are walked in lock-step up to the cursor, but not beyond the
// end of the shorter one. Every separator which appears in after where before
// has content shifts the cursor right by one, every separator which vanished
// shifts it left. Positions at or behind the cursor do not count, thus a
// separator inserted exactly at the cursor leaves it in front of the separator:
//
//	Remap("123", "123-4", 3, '-')  == 3
//	Remap("1234", "123-4", 4, '-') == 5
//
// Differences in content characters do not contribute: Format never reorders
// or drops content, so the strings agree outside of separator churn, and a
// freshly typed character has already moved the widget's cursor.
//
// The result is clamped to [0, length of after]; a cursor out of range is not
// an error.
func (seg Segmentation) Remap(before, after string, cursor int, sep rune) int {
	b, a := seg.tokens(before, sep), seg.tokens(after, sep)
	s := string(sep)
	offset := 0
	for i := 0; i < min(len(b), len(a)) && i < cursor; i++ {
		bsep, asep := b[i] == s, a[i] == s
		switch {
		case bsep && !asep:
			offset--
		case !bsep && asep:
			offset++
		}
	}
	return clamp(cursor+offset, 0, seg.Length(after))
}
