package tokenizer

import "unicode"

// ParseUint is ParseUnsignedInteger in base 10.
func (t *Tokenizer) ParseUint(defaultValue uint64) uint64 {
	return t.ParseUnsignedInteger(defaultValue, 10)
}

// ParseUnsignedInteger reads digits of the given base (2 to 36) from the
// cursor and accumulates them as result*base + digit. No sign is accepted.
//
// Parsing stops before the first non-digit. An escape is consumed only if a
// digit follows it; otherwise the escape and the code point after it are
// both pushed back. If no digit is read, defaultValue is returned and the
// cursor is where it started. An unsupported base returns defaultValue
// without reading anything.
//
// There is no overflow detection: arithmetic is modulo 2^64.
func (t *Tokenizer) ParseUnsignedInteger(defaultValue uint64, base int) uint64 {
	if base < 2 || base > 36 {
		return defaultValue
	}
	tr := t.newTracer()
	defer t.flush(tr, "parse unsigned integer")

	var result uint64
	digits := 0
	for {
		if !t.c.HasNext() {
			tr.add(t.msgs.AtEnd)
			break
		}
		next := t.next()
		tr.char(next)
		back := 1
		if t.HasEscape() && next == t.escape {
			tr.add(t.msgs.Escape)
			if !t.c.HasNext() {
				tr.add(t.msgs.AtEnd, t.msgs.PushBack)
				t.pushBack(1)
				break
			}
			next = t.next()
			tr.char(next)
			back = 2
		}
		v, ok := digitValue(next, base)
		if !ok {
			tr.add(t.msgs.NoDigit)
			for range back {
				tr.add(t.msgs.PushBack)
			}
			t.pushBack(back)
			break
		}
		result = result*uint64(base) + uint64(v)
		digits++
	}
	if digits == 0 {
		return defaultValue
	}
	return result
}

// ParseInt is ParseUnsignedInteger for callers holding signed values, such
// as a -1 default. The result is the two's-complement reading of the
// unsigned value.
func (t *Tokenizer) ParseInt(defaultValue int64, base int) int64 {
	return int64(t.ParseUnsignedInteger(uint64(defaultValue), base))
}

// digitValue classifies r in base. ASCII letters count from 10; any Unicode
// decimal digit counts with its decimal value.
func digitValue(r rune, base int) (int, bool) {
	var v int
	switch {
	case '0' <= r && r <= '9':
		v = int(r - '0')
	case 'a' <= r && r <= 'z':
		v = int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		v = int(r-'A') + 10
	case r > unicode.MaxASCII && unicode.IsDigit(r):
		v = decimalValue(r)
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// decimalValue returns the value of a non-ASCII decimal digit. Unicode
// allocates each decimal digit set as ten contiguous code points starting
// at zero, and adjacent sets are whole multiples of ten.
func decimalValue(r rune) int {
	first := r
	for unicode.IsDigit(first - 1) {
		first--
	}
	return int(r-first) % 10
}
