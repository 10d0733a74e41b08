package termfield

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Key is a decoded key stroke.
type Key int

// Keys understood by a Field. Everything not listed here decodes to KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyKill      // Ctrl-U, clear the line
	KeyEnter     // CR or LF
	KeyInterrupt // Ctrl-C
	KeyEOF       // Ctrl-D or end of input
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyKill:
		return "kill"
	case KeyEnter:
		return "enter"
	case KeyInterrupt:
		return "interrupt"
	case KeyEOF:
		return "eof"
	}
	return "unknown"
}

// ReadKey decodes the next key stroke from r. In raw terminal mode cursor keys
// arrive as ANSI escape sequences (ESC [ C and friends), which are folded into
// a single Key. End of input is reported as KeyEOF with a nil error.
func ReadKey(r *bufio.Reader) (Key, rune, error) {
	ch, _, err := r.ReadRune()
	if err != nil {
		return eof(err)
	}
	switch ch {
	case '\r', '\n':
		return KeyEnter, ch, nil
	case 0x03:
		return KeyInterrupt, ch, nil
	case 0x04:
		return KeyEOF, ch, nil
	case 0x7f, 0x08:
		return KeyBackspace, ch, nil
	case 0x01:
		return KeyHome, ch, nil
	case 0x05:
		return KeyEnd, ch, nil
	case 0x02:
		return KeyLeft, ch, nil
	case 0x06:
		return KeyRight, ch, nil
	case 0x15:
		return KeyKill, ch, nil
	case 0x1b:
		return readEscape(r)
	}
	if ch < 0x20 {
		return KeyUnknown, ch, nil
	}
	return KeyRune, ch, nil
}

// readEscape decodes the key following an ESC. A lone ESC, i.e. one without
// further input already buffered, is returned as KeyUnknown without waiting
// for the next key.
func readEscape(r *bufio.Reader) (Key, rune, error) {
	if r.Buffered() == 0 {
		return KeyUnknown, 0x1b, nil
	}
	intro, _, err := r.ReadRune()
	if err != nil {
		return eof(err)
	}
	switch intro {
	case '[':
		return readCSI(r)
	case 'O': // SS3, sent by some terminals for cursor keys
		final, _, err := r.ReadRune()
		if err != nil {
			return eof(err)
		}
		return cursorKey(final), final, nil
	}
	r.UnreadRune() // ESC followed by an ordinary key
	return KeyUnknown, 0x1b, nil
}

// readCSI consumes a control sequence up to and including its final byte:
// parameter bytes 0x30–0x3F, intermediate bytes 0x20–0x2F, final byte
// 0x40–0x7E. Modifier parameters (as in ESC [ 1 ; 5 C) are ignored.
func readCSI(r *bufio.Reader) (Key, rune, error) {
	var params []rune
	for {
		b, _, err := r.ReadRune()
		if err != nil {
			return eof(err)
		}
		switch {
		case b >= 0x30 && b <= 0x3f:
			params = append(params, b)
		case b >= 0x20 && b <= 0x2f:
		case b >= 0x40 && b <= 0x7e:
			if b == '~' {
				return tildeKey(string(params)), b, nil
			}
			return cursorKey(b), b, nil
		default: // malformed, leave b for the next key
			r.UnreadRune()
			return KeyUnknown, b, nil
		}
	}
}

func cursorKey(final rune) Key {
	switch final {
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyUnknown
}

// tildeKey maps VT style sequences ESC [ n ~ by their first parameter.
func tildeKey(params string) Key {
	n, _, _ := strings.Cut(params, ";")
	switch n {
	case "1", "7":
		return KeyHome
	case "4", "8":
		return KeyEnd
	case "3":
		return KeyDelete
	}
	return KeyUnknown
}

func eof(err error) (Key, rune, error) {
	if errors.Is(err, io.EOF) {
		return KeyEOF, 0, nil
	}
	return KeyUnknown, 0, err
}
