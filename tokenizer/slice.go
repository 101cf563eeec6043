package tokenizer

import "strings"

// ParseSlice reads code points from the cursor up to an unescaped end1 or
// end2, which is consumed but not included. It returns the text read and the
// terminator: the end code point found, CursorEnd, or EscapeAtEnd.
func (t *Tokenizer) ParseSlice(end1, end2 rune) (string, rune) {
	var sb strings.Builder
	term := t.ParseSliceTo(&sb, end1, end2)
	return sb.String(), term
}

// ParseSliceUntil is ParseSlice with a single end code point.
func (t *Tokenizer) ParseSliceUntil(end rune) (string, rune) {
	return t.ParseSlice(end, end)
}

// ParseSliceTo is ParseSlice appending to sb.
//
// An escape makes the following code point literal, even if it is an end
// code point or the escape itself. An escape with nothing after it is not
// appended; the cursor is moved back one step, onto the escape, and
// EscapeAtEnd is returned.
func (t *Tokenizer) ParseSliceTo(sb *strings.Builder, end1, end2 rune) rune {
	tr := t.newTracer()
	defer t.flush(tr, "parse slice")

	for t.c.HasNext() {
		next := t.next()
		tr.char(next)
		if t.HasEscape() && next == t.escape {
			tr.add(t.msgs.Escape)
			if !t.c.HasNext() {
				tr.add(t.msgs.AtEnd, t.msgs.PushBack)
				t.pushBack(1)
				return EscapeAtEnd
			}
			next = t.next()
			tr.char(next)
			tr.add(t.msgs.Literal)
		} else if next == end1 || next == end2 {
			tr.add(t.msgs.EndChar)
			return next
		}
		sb.WriteRune(next)
	}
	tr.add(t.msgs.AtEnd)
	return CursorEnd
}
