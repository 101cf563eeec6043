package buffer

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Text is an immutable sequence of UTF-16 code units.
type Text struct {
	units  []uint16
	locale language.Tag
}

// NewText builds a Text from src, which must be a string or a []uint16.
func NewText(src any, opt Options) (*Text, error) {
	switch v := src.(type) {
	case string:
		return FromString(v, opt), nil
	case []uint16:
		return FromUnits(v, opt), nil
	default:
		return nil, errors.Wrapf(ErrUnrecognizedInputKind, "source of type %T", src)
	}
}

// FromString encodes s (UTF-8) as UTF-16. Invalid UTF-8 bytes become U+FFFD.
func FromString(s string, opt Options) *Text {
	if opt.Normalize {
		s = opt.Form.String(s)
	}
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return &Text{units: units, locale: opt.Locale}
}

// FromUnits copies u verbatim; unpaired surrogates are kept.
func FromUnits(u []uint16, opt Options) *Text {
	units := make([]uint16, len(u))
	copy(units, u)
	return &Text{units: units, locale: opt.Locale}
}

// Len returns the number of UTF-16 units.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return len(t.units)
}

func (t *Text) Locale() language.Tag {
	if t == nil {
		return language.Und
	}
	return t.locale
}

// Unit returns the code unit at off.
func (t *Text) Unit(off int) uint16 { return t.units[off] }

// Units returns a copy of the code units.
func (t *Text) Units() []uint16 {
	if t == nil {
		return nil
	}
	out := make([]uint16, len(t.units))
	copy(out, t.units)
	return out
}

// CodePointAt decodes the code point starting at unit offset off and
// returns it with its width in units. A well-formed surrogate pair is one
// code point of width 2; an unpaired surrogate is returned as is, width 1.
func (t *Text) CodePointAt(off int) (rune, int) {
	u := t.units[off]
	if isHighSurrogate(u) && off+1 < len(t.units) && isLowSurrogate(t.units[off+1]) {
		return utf16.DecodeRune(rune(u), rune(t.units[off+1])), 2
	}
	return rune(u), 1
}

// String decodes the text to UTF-8; unpaired surrogates become U+FFFD.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(utf16.Decode(t.units))
}

// UTF8Len returns the length in bytes of String().
func (t *Text) UTF8Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, r := range utf16.Decode(t.units) {
		n += utf8.RuneLen(r)
	}
	return n
}

func (t *Text) slice(start, end int) []uint16 { return t.units[start:end] }

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }

func isLowSurrogate(u uint16) bool { return u >= 0xDC00 && u < 0xE000 }
