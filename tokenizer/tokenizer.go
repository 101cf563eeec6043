// Package tokenizer parses escaped string slices and unsigned integers from a
// cursor.Cursor.
//
// Malformed input is never an error here. Each parse reports where it stopped
// through its return value and leaves the cursor exactly there, so a caller
// can inspect the position and retry with other rules.
package tokenizer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/iw2rmb/codepoint/cursor"
	"github.com/iw2rmb/codepoint/diag"
)

// Terminators returned by ParseSlice besides the end code points themselves.
const (
	// CursorEnd: the cursor ran out before an end code point was found.
	CursorEnd rune = -1
	// EscapeAtEnd: the last code point was the escape. It was not appended
	// and the cursor was moved back onto it.
	EscapeAtEnd rune = -2
)

// Accepted escape range, inclusive.
const (
	minEscape = ' '
	maxEscape = '~'
)

// ErrInvalidEscapeChar is returned by SetEscape for code points outside
// ' '..'~' other than 0.
var ErrInvalidEscapeChar = errors.New("invalid escape code point")

// Messages labels the steps of a parse trace.
type Messages struct {
	NoDigit  string
	EndChar  string
	AtEnd    string
	Escape   string
	Literal  string
	PushBack string
}

func DefaultMessages() Messages {
	return Messages{
		NoDigit:  "<no digit> ",
		EndChar:  "<end_char> ",
		AtEnd:    "<at end> ",
		Escape:   "<escape> ",
		Literal:  "<literal> ",
		PushBack: "<PUSH BACK> ",
	}
}

type Option func(*Tokenizer)

// WithLogger sets the logger parse traces are written to, at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tokenizer) { t.log = l }
}

func WithMessages(m Messages) Option {
	return func(t *Tokenizer) { t.msgs = m }
}

// Tokenizer drives a cursor. All position state lives in the cursor; the
// tokenizer only holds the escape code point. It is not safe for concurrent
// use.
type Tokenizer struct {
	c      *cursor.Cursor
	escape rune

	log  *slog.Logger
	msgs Messages
}

func New(c *cursor.Cursor, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		c:    c,
		log:  diag.Discard(),
		msgs: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tokenizer) Cursor() *cursor.Cursor { return t.c }

// SetEscape sets the literal escape code point; 0 unsets it. The code point
// following an escape is taken literally by ParseSlice, and as a digit (or
// not at all) by ParseUnsignedInteger.
func (t *Tokenizer) SetEscape(cp rune) error {
	if cp != 0 && (cp < minEscape || cp > maxEscape) {
		return errors.Wrapf(ErrInvalidEscapeChar, "(%d) %s", cp, diag.Quote(cp))
	}
	t.escape = cp
	return nil
}

func (t *Tokenizer) Escape() rune { return t.escape }

func (t *Tokenizer) HasEscape() bool { return t.escape != 0 }

func (t *Tokenizer) String() string {
	var e string
	if t.HasEscape() {
		e = string(t.escape)
	}
	return fmt.Sprintf("Tokenizer( %s, e%s )", t.c, e)
}

// next reads one code point; callers check HasNext first.
func (t *Tokenizer) next() rune {
	r, err := t.c.Next()
	if err != nil {
		panic(fmt.Sprintf("tokenizer: read past checked bound: %v", err))
	}
	return r
}

// pushBack undoes the last n steps taken by this parse.
func (t *Tokenizer) pushBack(n int) {
	if _, err := t.c.Rewind(n); err != nil {
		panic(fmt.Sprintf("tokenizer: push back %d: %v", n, err))
	}
}

// tracer collects a step trace; the zero value discards everything.
type tracer struct {
	sb *strings.Builder
}

func (t *Tokenizer) newTracer() tracer {
	if !t.c.Tracing() {
		return tracer{}
	}
	return tracer{sb: &strings.Builder{}}
}

func (tr tracer) add(s ...string) {
	if tr.sb == nil {
		return
	}
	for _, v := range s {
		tr.sb.WriteString(v)
	}
}

func (tr tracer) char(cp rune) {
	if tr.sb == nil {
		return
	}
	tr.sb.WriteString(diag.Char(cp))
}

func (t *Tokenizer) flush(tr tracer, op string) {
	if tr.sb == nil {
		return
	}
	t.log.Debug(op, "cursor", t.c.String(), "trace", diag.Lazy(tr.sb.String))
}
