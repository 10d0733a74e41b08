package field

import (
	"github.com/npillmayer/groupmask"
)

// Filter is consulted whenever the span [from, to) of dest is about to be
// replaced by insert. It returns the text which is actually inserted.
// Positions are characters of the field's segmentation.
type Filter func(seg groupmask.Segmentation, insert string, dest string, from, to int) string

// MaxLengthFilter is the name under which SetMaxLength installs its filter.
const MaxLengthFilter = "maxlength"

// MaxLength returns a filter which truncates insertions so that the text never
// grows beyond n characters. Text which is already too long may still
// shrink.
func MaxLength(n int) Filter {
	return func(seg groupmask.Segmentation, insert string, dest string, from, to int) string {
		keep := n - (seg.Length(dest) - (to - from))
		if keep <= 0 {
			return ""
		}
		return seg.Truncate(insert, keep)
	}
}

type namedFilter struct {
	name   string
	filter Filter
}
