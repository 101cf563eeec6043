package diag

import (
	"strings"
	"unicode/utf8"
)

// Default quote marks used by Quote and Char.
const (
	QuoteStart = '`'
	QuoteEnd   = '\''
)

// CodePointString converts a single code point to a string. Invalid code
// points become U+FFFD.
func CodePointString(cp rune) string {
	if !utf8.ValidRune(cp) {
		return string(utf8.RuneError)
	}
	return string(cp)
}

// QuoteWith wraps cp in the given quote marks.
func QuoteWith(start, end, cp rune) string {
	var sb strings.Builder
	sb.Grow(3 * utf8.UTFMax)
	sb.WriteRune(start)
	sb.WriteString(CodePointString(cp))
	sb.WriteRune(end)
	return sb.String()
}

// Quote wraps cp in the default quote marks, e.g. `x'.
func Quote(cp rune) string {
	return QuoteWith(QuoteStart, QuoteEnd, cp)
}

// AppendQuoted appends the default-quoted form of cp to sb.
func AppendQuoted(sb *strings.Builder, cp rune) *strings.Builder {
	sb.WriteRune(QuoteStart)
	sb.WriteString(CodePointString(cp))
	sb.WriteRune(QuoteEnd)
	return sb
}

// Char returns the quoted form of cp followed by a space, the unit used in
// step traces.
func Char(cp rune) string {
	return Quote(cp) + " "
}
