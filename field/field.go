package field

import (
	"slices"

	"github.com/npillmayer/groupmask"
)

// TextField is a single line of editable text with a cursor.
//
// Content changes, whether by user edits or by SetText, run through the
// field's input filters and are reported to all subscribers before the
// changing call returns. A TextField is not safe for concurrent use.
type TextField struct {
	seg     groupmask.Segmentation
	text    string
	cursor  int
	filters []namedFilter
	subs    []subscriber
	nextID  int
}

type subscriber struct {
	id int
	fn func()
}

// New creates an empty text field counting characters in seg.
func New(seg groupmask.Segmentation) *TextField {
	return &TextField{seg: seg}
}

// Text returns the field's content.
func (tf *TextField) Text() string {
	return tf.text
}

// Len returns the length of the field's content in characters.
func (tf *TextField) Len() int {
	return tf.seg.Length(tf.text)
}

// Selection returns the cursor position.
func (tf *TextField) Selection() int {
	return tf.cursor
}

// Segmentation returns the unit the field counts characters in.
func (tf *TextField) Segmentation() groupmask.Segmentation {
	return tf.seg
}

// SetText replaces the whole content, subject to the input filters.
// The cursor keeps its position as far as the new text allows.
func (tf *TextField) SetText(text string) {
	tf.replace(0, tf.Len(), text, tf.cursor)
}

// SetSelection moves the cursor. Positions outside the text are clamped.
func (tf *TextField) SetSelection(pos int) {
	tf.cursor = min(max(pos, 0), tf.Len())
}

// Subscribe registers fn to be called after every change of content.
func (tf *TextField) Subscribe(fn func()) (unsubscribe func()) {
	tf.nextID++
	id := tf.nextID
	tf.subs = append(tf.subs, subscriber{id: id, fn: fn})
	return func() {
		tf.subs = slices.DeleteFunc(tf.subs, func(s subscriber) bool {
			return s.id == id
		})
	}
}

// SetFilter installs filter f under name. A filter already installed under
// that name is replaced in place, keeping its position in the chain. A nil
// filter removes the entry.
func (tf *TextField) SetFilter(name string, f Filter) {
	i := slices.IndexFunc(tf.filters, func(nf namedFilter) bool {
		return nf.name == name
	})
	switch {
	case f == nil && i >= 0:
		tf.filters = slices.Delete(tf.filters, i, i+1)
	case f == nil:
	case i >= 0:
		tf.filters[i].filter = f
	default:
		tf.filters = append(tf.filters, namedFilter{name: name, filter: f})
	}
}

// Filters returns the names of the installed filters in chain order.
func (tf *TextField) Filters() []string {
	names := make([]string, len(tf.filters))
	for i, nf := range tf.filters {
		names[i] = nf.name
	}
	return names
}

// SetMaxLength caps the length of the content at n characters.
func (tf *TextField) SetMaxLength(n int) {
	tracer().Debugf("field: max length %d", n)
	tf.SetFilter(MaxLengthFilter, MaxLength(n))
}

// --- User edits ------------------------------------------------------------

// Type inserts s at the cursor and moves the cursor behind the insertion.
func (tf *TextField) Type(s string) {
	tf.replace(tf.cursor, tf.cursor, s, -1)
}

// Replace replaces the whole content by s, as pasting over a selection of
// everything would, and puts the cursor at the end of the insertion.
func (tf *TextField) Replace(s string) {
	tf.replace(0, tf.Len(), s, -1)
}

// Backspace deletes the character before the cursor.
func (tf *TextField) Backspace() bool {
	if tf.cursor == 0 {
		return false
	}
	tf.replace(tf.cursor-1, tf.cursor, "", -1)
	return true
}

// Delete deletes the character at the cursor.
func (tf *TextField) Delete() bool {
	if tf.cursor >= tf.Len() {
		return false
	}
	tf.replace(tf.cursor, tf.cursor+1, "", tf.cursor)
	return true
}

// MoveTo moves the cursor to pos.
func (tf *TextField) MoveTo(pos int) { tf.SetSelection(pos) }

// Left moves the cursor one character to the left.
func (tf *TextField) Left() { tf.SetSelection(tf.cursor - 1) }

// Right moves the cursor one character to the right.
func (tf *TextField) Right() { tf.SetSelection(tf.cursor + 1) }

// Home moves the cursor to the start of the text.
func (tf *TextField) Home() { tf.SetSelection(0) }

// End moves the cursor to the end of the text.
func (tf *TextField) End() { tf.SetSelection(tf.Len()) }

// replace substitutes [from, to) by insert after running the filter chain.
// With cursor < 0, the cursor goes behind the insertion.
func (tf *TextField) replace(from, to int, insert string, cursor int) {
	for _, nf := range tf.filters {
		insert = nf.filter(tf.seg, insert, tf.text, from, to)
	}
	n := tf.Len()
	text := tf.seg.Slice(tf.text, 0, from) + insert + tf.seg.Slice(tf.text, to, n)
	if cursor < 0 {
		cursor = from + tf.seg.Length(insert)
	}
	changed := text != tf.text
	tf.text = text
	tf.SetSelection(cursor)
	if changed {
		tf.notify()
	}
}

func (tf *TextField) notify() {
	for _, s := range slices.Clone(tf.subs) {
		s.fn()
	}
}
