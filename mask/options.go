package mask

import (
	"github.com/npillmayer/groupmask"
)

// DefaultSeparator is used if no separator is configured.
const DefaultSeparator = ' '

// Option configures a Controller during creation.
type Option func(*Controller)

// WithSeparator sets the separator character.
func WithSeparator(sep rune) Option {
	return func(c *Controller) {
		c.sep = sep
	}
}

// WithSegmentation sets the unit in which the widget counts characters and
// cursor positions. The default is groupmask.Runes.
func WithSegmentation(seg groupmask.Segmentation) Option {
	return func(c *Controller) {
		c.seg = seg
	}
}

// WithBroadcast makes the Controller publish a Change for every reformat.
// Observers subscribe with Controller.Changes.
func WithBroadcast() Option {
	return func(c *Controller) {
		c.broadcast = true
	}
}
