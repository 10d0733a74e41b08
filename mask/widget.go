package mask

// Widget is the capability a Controller needs from a host text widget.
//
// Positions are character indices in the widget's text, counted in the
// Segmentation the Controller is configured with.
//
// SetText and SetSelection should not call back into the notification
// handler before they return. A Controller tolerates widgets which do, by
// ignoring notifications while it is writing.
type Widget interface {
	Text() string
	SetText(text string)
	Selection() int
	SetSelection(pos int)
	// Subscribe registers a handler to be called after each edit.
	// Calling the returned function removes the handler again.
	Subscribe(onChanged func()) (unsubscribe func())
}

// LengthLimiter is implemented by widgets which can cap the length of their
// input. A Controller installs the cap once and replaces its value whenever
// the mask's maximum length changes.
type LengthLimiter interface {
	SetMaxLength(n int)
}
