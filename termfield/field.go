package termfield

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/groupmask/field"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ErrInterrupted is returned by Run if the user pressed Ctrl-C.
var ErrInterrupted = errors.New("termfield: interrupted")

// Separated is implemented by anything that knows the separator a field's
// text is grouped with, usually a mask.Controller.
type Separated interface {
	Separator() rune
}

// Field is a single line editor on a terminal, operating on a TextField.
type Field struct {
	Prompt  string
	Mask    Separated      // optional; without it the text is drawn in a single color
	Context *uax11.Context // for character widths; nil means uax11.ContextFromEnvironment
	model   *field.TextField
	palette []*color.Color // group colors, used round robin
	sepcol  *color.Color
}

var graphemeSetup sync.Once

// New creates a Field for model.
//
// colors is the palette for groups. If colors is empty, a default palette of
// two alternating colors is used.
func New(model *field.TextField, mask Separated, colors ...*color.Color) *Field {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	f := &Field{
		Prompt:  "> ",
		Mask:    mask,
		model:   model,
		palette: colors,
		sepcol:  color.New(color.Faint),
	}
	if len(f.palette) == 0 {
		f.palette = makeDefaultPalette()
	}
	return f
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgGreen),
	}
}

// Model returns the text field f draws.
func (f *Field) Model() *field.TextField {
	return f.model
}

// Render draws the prompt and the text to w, clears the rest of the line and
// places the terminal cursor at the field's cursor position.
func (f *Field) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteByte('\r')
	b.WriteString(f.Prompt)
	f.styled(&b)
	b.WriteString("\x1b[K")
	text := f.model.Text()
	seg := f.model.Segmentation()
	tail := seg.Slice(text, f.model.Selection(), seg.Length(text))
	if back := f.Width(tail); back > 0 {
		fmt.Fprintf(&b, "\x1b[%dD", back)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// styled writes the text with one color per group.
func (f *Field) styled(w io.Writer) {
	text := f.model.Text()
	if f.Mask == nil {
		f.palette[0].Fprint(w, text)
		return
	}
	sep := string(f.Mask.Separator())
	group := 0
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			f.palette[group%len(f.palette)].Fprint(w, run.String())
			run.Reset()
		}
	}
	for _, c := range f.model.Segmentation().Chars(text) {
		if c == sep {
			flush()
			f.sepcol.Fprint(w, c)
			group++
			continue
		}
		run.WriteString(c)
	}
	flush()
}

// Width returns the number of terminal columns s occupies.
func (f *Field) Width(s string) int {
	if s == "" {
		return 0
	}
	ctx := f.Context
	if ctx == nil {
		ctx = uax11.ContextFromEnvironment()
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// Handle applies a key stroke to the model. done is true if the key ends
// editing: Enter, or Ctrl-D on an empty line. Ctrl-C ends editing with
// ErrInterrupted.
func (f *Field) Handle(key Key, r rune) (done bool, err error) {
	tracer().Debugf("termfield: key %s %q", key, r)
	switch key {
	case KeyRune:
		f.model.Type(string(r))
	case KeyBackspace:
		f.model.Backspace()
	case KeyDelete:
		f.model.Delete()
	case KeyLeft:
		f.model.Left()
	case KeyRight:
		f.model.Right()
	case KeyHome:
		f.model.Home()
	case KeyEnd:
		f.model.End()
	case KeyKill:
		f.model.Replace("")
	case KeyEnter:
		return true, nil
	case KeyInterrupt:
		return true, ErrInterrupted
	case KeyEOF:
		if f.model.Len() == 0 {
			return true, io.EOF
		}
		f.model.Delete()
	}
	return false, nil
}

// Run edits the field until the user presses Enter and returns the final
// text. If in is a terminal, it is switched to raw mode for the duration of
// the call. End of input counts as Enter, unless the line is still empty,
// in which case Run returns io.EOF.
func (f *Field) Run(in io.Reader, out io.Writer) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		state, err := term.MakeRaw(int(file.Fd()))
		if err != nil {
			return "", err
		}
		defer func() {
			if err := term.Restore(int(file.Fd()), state); err != nil {
				tracer().Errorf("termfield: cannot restore terminal state: %v", err)
			}
		}()
	}
	if f.Context == nil {
		f.Context = uax11.ContextFromEnvironment()
	}
	keys := bufio.NewReader(in)
	for {
		if err := f.Render(out); err != nil {
			return f.model.Text(), err
		}
		key, r, err := ReadKey(keys)
		if err != nil {
			return f.model.Text(), err
		}
		if key == KeyEOF && r == 0 && f.model.Len() > 0 {
			key = KeyEnter // end of input
		}
		done, err := f.Handle(key, r)
		if done {
			if _, werr := io.WriteString(out, "\r\n"); werr != nil {
				tracer().Errorf("termfield: %v", werr)
				if err == nil {
					err = werr
				}
			}
			return f.model.Text(), err
		}
	}
}
