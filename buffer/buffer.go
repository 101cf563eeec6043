package buffer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type Options struct {
	// Locale is handed to the Scanner when the text is indexed.
	// Default: language.Und.
	Locale language.Tag

	// Scanner produces the boundaries. Default: CodePoints.
	Scanner Scanner

	// Normalize applies Form to string sources before encoding.
	// Raw unit sources are never normalized.
	Normalize bool
	Form      norm.Form
}

// Buffer holds a Text together with its Index. The pair is replaced as a
// whole by SetText, so readers never observe a text with a stale index.
//
// A Buffer is not safe for concurrent mutation; the Text and Index it hands
// out are immutable and may be shared.
type Buffer struct {
	text    *Text
	idx     *Index
	version uint64

	opt Options
}

// New builds a Buffer from src (a string or a []uint16).
func New(src any, opt Options) (*Buffer, error) {
	if opt.Scanner == nil {
		opt.Scanner = CodePoints
	}
	b := &Buffer{opt: opt}
	if err := b.apply(src); err != nil {
		return nil, err
	}
	return b, nil
}

// SetText replaces the text and rebuilds the index. On error the previous
// text and index are kept.
func (b *Buffer) SetText(src any) error {
	if err := b.apply(src); err != nil {
		return err
	}
	b.version++
	return nil
}

func (b *Buffer) apply(src any) error {
	t, err := NewText(src, b.opt)
	if err != nil {
		return err
	}
	idx, err := Build(t, b.opt.Scanner)
	if err != nil {
		return err
	}
	b.text, b.idx = t, idx
	return nil
}

func (b *Buffer) Text() *Text { return b.text }

func (b *Buffer) Index() *Index { return b.idx }

// Version increases by one on every successful SetText.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) CountCodePoints() int { return b.idx.Count() }

func (b *Buffer) CountUTF16Units() int { return b.text.Len() }

func (b *Buffer) CountUTF8Units() int { return b.text.UTF8Len() }

func (b *Buffer) String() string { return b.text.String() }

// Bytes returns the text encoded as UTF-8.
func (b *Buffer) Bytes() []byte { return []byte(b.text.String()) }
