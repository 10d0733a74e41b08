package mask

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/groupmask"
)

type state uint8

const (
	idle state = iota
	reformatting
)

// Controller keeps a widget's text in the display form of a mask.
type Controller struct {
	widget    Widget
	rules     *groupmask.RuleSet
	sep       rune
	seg       groupmask.Segmentation
	last      string // display form this controller wrote last
	state     state
	unsub     func()
	broadcast bool
	cast      *caster.Caster
}

// Change describes one reformat of the widget's content.
type Change struct {
	Before    string // widget text as edited by the user
	After     string // display form written back
	Cursor    int    // cursor position in Before
	NewCursor int    // cursor position in After
}

// NewController attaches a mask to a widget. The widget's current content is
// formatted right away.
func NewController(w Widget, rules *groupmask.RuleSet, opts ...Option) (*Controller, error) {
	if w == nil || rules == nil {
		return nil, fmt.Errorf("mask: widget and rules required: %w", groupmask.ErrIllegalArguments)
	}
	c := &Controller{
		widget: w,
		rules:  rules,
		sep:    DefaultSeparator,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.broadcast {
		c.cast = caster.New(context.Background())
	}
	c.limitLength()
	c.unsub = w.Subscribe(c.changed)
	c.changed()
	T().Infof("mask: attached rules %s, separator %q", rules, c.sep)
	return c, nil
}

// Rules returns the current rule set.
func (c *Controller) Rules() *groupmask.RuleSet {
	return c.rules
}

// Separator returns the current separator character.
func (c *Controller) Separator() rune {
	return c.sep
}

// Segmentation returns the unit characters are counted in.
func (c *Controller) Segmentation() groupmask.Segmentation {
	return c.seg
}

// Text returns the display form the controller produced last.
func (c *Controller) Text() string {
	return c.last
}

// Raw returns the widget's content with all separators removed.
func (c *Controller) Raw() string {
	return c.seg.Strip(c.currentText(), c.sep)
}

// SetRules replaces the rule set. The widget's content is stripped of
// separators, re-grouped under the new rules and the cursor is placed at
// the end.
func (c *Controller) SetRules(rules *groupmask.RuleSet) error {
	if rules == nil {
		return fmt.Errorf("mask: rules required: %w", groupmask.ErrIllegalArguments)
	}
	raw := c.Raw()
	c.rules = rules
	c.limitLength()
	T().Infof("mask: rules changed to %s", rules)
	c.rewrite(raw)
	return nil
}

// SetSeparator replaces the separator character. The widget's content is
// stripped of the previous separator before it is re-grouped.
func (c *Controller) SetSeparator(sep rune) {
	raw := c.Raw()
	c.sep = sep
	T().Infof("mask: separator changed to %q", sep)
	c.rewrite(raw)
}

// Close detaches the controller from its widget and ends all change
// subscriptions.
func (c *Controller) Close() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
	if c.cast != nil {
		c.cast.Close()
	}
}

// Changes subscribes to the reformats of this controller. It requires option
// WithBroadcast, otherwise ok is false. Delivery is asynchronous and lossy:
// the notification handler never waits for a slow observer, and changes
// which do not fit into a subscriber's buffer of size capacity are dropped.
// The channel is closed when ctx is done or the controller is closed.
func (c *Controller) Changes(ctx context.Context, capacity uint) (changes <-chan Change, ok bool) {
	if c.cast == nil {
		return nil, false
	}
	sub, ok := c.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan Change, capacity)
	go func() {
		defer close(out)
		for msg := range sub {
			chg, isChange := msg.(Change)
			if !isChange {
				continue
			}
			select {
			case out <- chg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// changed is the widget's notification handler.
func (c *Controller) changed() {
	if c.state != idle {
		return // our own write echoing back synchronously
	}
	defer func() {
		if r := recover(); r != nil {
			T().Errorf("mask: recovered in change handler: %v", r)
			c.state = idle
		}
	}()
	text := c.widget.Text()
	if text == c.last {
		return
	}
	c.state = reformatting
	defer func() { c.state = idle }()
	// the widget's cursor indexes the widget's text, so that is where
	// it is remapped from
	cursor := c.widget.Selection()
	formatted := c.seg.Display(text, c.rules, c.sep)
	newCursor := c.seg.Remap(text, formatted, cursor, c.sep)
	T().Debugf("mask: %q @%d -> %q @%d", text, cursor, formatted, newCursor)
	c.write(formatted, newCursor)
	c.publish(Change{Before: text, After: formatted, Cursor: cursor, NewCursor: newCursor})
}

// rewrite formats raw content under the current configuration and puts the
// cursor at the end.
func (c *Controller) rewrite(raw string) {
	defer func() {
		if r := recover(); r != nil {
			T().Errorf("mask: recovered while reconfiguring: %v", r)
			c.state = idle
		}
	}()
	before := c.widget.Text()
	formatted := c.seg.Display(raw, c.rules, c.sep)
	c.state = reformatting
	defer func() { c.state = idle }()
	end := c.seg.Length(formatted)
	if before == "" && formatted == "" {
		c.last = ""
		return
	}
	c.write(formatted, end)
	c.publish(Change{Before: before, After: formatted, Cursor: c.seg.Length(before), NewCursor: end})
}

// write updates the widget. last is recorded only once the widget has taken
// the text, so that it always matches what the widget shows.
func (c *Controller) write(text string, cursor int) {
	c.widget.SetText(text)
	c.widget.SetSelection(cursor)
	c.last = text
}

func (c *Controller) publish(chg Change) {
	if c.cast != nil {
		c.cast.TryPub(chg)
	}
}

// limitLength installs or updates the widget's length cap.
func (c *Controller) limitLength() {
	if ll, ok := c.widget.(LengthLimiter); ok {
		ll.SetMaxLength(c.rules.FormattedMaxLength())
	}
}

// currentText reads the widget's text. A widget failing to deliver its
// text counts as empty.
func (c *Controller) currentText() (text string) {
	defer func() {
		if r := recover(); r != nil {
			T().Errorf("mask: widget did not deliver text: %v", r)
			text = ""
		}
	}()
	return c.widget.Text()
}
