package keys

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"linepick/internal/util/logx"
)

// Kind is the closed alphabet of logical keys the picker understands.
type Kind int

const (
	None Kind = iota
	Rune
	Enter
	Backspace
	CtrlC
	CtrlT
	Up
	Down
	PageUp
	PageDown
)

type Key struct {
	Kind Kind
	Rune rune
}

// String names the key the way bubbles key bindings spell them.
func (k Key) String() string {
	switch k.Kind {
	case Rune:
		return string(k.Rune)
	case Enter:
		return "enter"
	case Backspace:
		return "backspace"
	case CtrlC:
		return "ctrl+c"
	case CtrlT:
		return "ctrl+t"
	case Up:
		return "up"
	case Down:
		return "down"
	case PageUp:
		return "pgup"
	case PageDown:
		return "pgdown"
	default:
		return ""
	}
}

const esc = 0x1b

// control maps single raw bytes straight to a logical key.
var control = map[byte]Kind{
	0x0e: Down,     // ctrl+n
	0x10: Up,       // ctrl+p
	0x04: PageDown, // ctrl+d
	0x15: PageUp,   // ctrl+u
	'\r': Enter,
	'\n': Enter,
	0x7f: Backspace,
	0x08: Backspace,
	0x03: CtrlC,
	0x14: CtrlT,
}

// escape maps the two bytes following ESC.
var escape = map[[2]byte]Kind{
	{'[', 'A'}: Up,
	{'[', 'B'}: Down,
}

type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	if br, ok := r.(*bufio.Reader); ok {
		return &Decoder{r: br}
	}
	return &Decoder{r: bufio.NewReaderSize(r, 16)}
}

// Next blocks until one logical key has been consumed. Unknown escape
// sequences and stray control bytes decode to a None key. End of input
// returns io.EOF at a key boundary and io.ErrUnexpectedEOF inside a
// multi-byte key.
func (d *Decoder) Next() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if k, ok := control[b]; ok {
		return Key{Kind: k}, nil
	}
	switch {
	case b == esc:
		var seq [2]byte
		if _, err := io.ReadFull(d.r, seq[:]); err != nil {
			return Key{}, continuationErr(err)
		}
		if k, ok := escape[seq]; ok {
			return Key{Kind: k}, nil
		}
		logx.Debugf("keys: unknown escape sequence %q", seq[:])
		return Key{}, nil
	case b >= utf8.RuneSelf:
		return d.decodeRune(b)
	case b < 0x20:
		logx.Debugf("keys: ignoring control byte 0x%02x", b)
		return Key{}, nil
	}
	return Key{Kind: Rune, Rune: rune(b)}, nil
}

func (d *Decoder) decodeRune(lead byte) (Key, error) {
	n := runeLen(lead)
	if n < 2 {
		return Key{}, nil
	}
	p := make([]byte, n)
	p[0] = lead
	if _, err := io.ReadFull(d.r, p[1:]); err != nil {
		return Key{}, continuationErr(err)
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError || size != n {
		logx.Debugf("keys: invalid utf-8 sequence % x", p)
		return Key{}, nil
	}
	return Key{Kind: Rune, Rune: r}, nil
}

func runeLen(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	}
	return 0
}

func continuationErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return io.ErrUnexpectedEOF
	}
	return fmt.Errorf("read key continuation: %w", err)
}
