package buffer

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

type OffsetClampMode uint8

const (
	// OffsetError rejects offsets outside the text or inside a code point.
	OffsetError OffsetClampMode = iota
	// OffsetClamp pins offsets into range and snaps them back to the start of
	// the code point containing them.
	OffsetClamp
)

// UnitOffsetFromCodePoint returns the unit offset where code point k begins.
// k == Count() maps to Len().
func (x *Index) UnitOffsetFromCodePoint(k int, mode OffsetClampMode) (int, bool) {
	k, ok := clampOffset(k, x.Count(), mode)
	if !ok {
		return 0, false
	}
	return x.startOf(k), true
}

// CodePointFromUnitOffset returns the index of the code point starting at
// unit offset off. off == Len() maps to Count().
func (x *Index) CodePointFromUnitOffset(off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, x.Len(), mode)
	if !ok {
		return 0, false
	}
	n := x.Count()
	if n == 0 {
		return 0, true
	}
	k, found := slices.BinarySearch(x.bounds, off)
	if found {
		return k, true
	}
	if mode != OffsetClamp {
		return 0, false
	}
	return k - 1, true
}

// ByteOffsetFromCodePoint returns the UTF-8 byte offset in Text().String()
// where code point k begins. k == Count() maps to the UTF-8 length.
func (x *Index) ByteOffsetFromCodePoint(k int, mode OffsetClampMode) (int, bool) {
	k, ok := clampOffset(k, x.Count(), mode)
	if !ok {
		return 0, false
	}
	off := 0
	for j := 0; j < k; j++ {
		off += x.utf8Width(j)
	}
	return off, true
}

// CodePointFromByteOffset returns the index of the code point starting at
// UTF-8 byte offset off in Text().String().
func (x *Index) CodePointFromByteOffset(off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, x.Text().UTF8Len(), mode)
	if !ok {
		return 0, false
	}
	cur := 0
	n := x.Count()
	for k := 0; k < n; k++ {
		if off == cur {
			return k, true
		}
		next := cur + x.utf8Width(k)
		if off < next {
			if mode != OffsetClamp {
				return 0, false
			}
			return k, true
		}
		cur = next
	}
	return n, true
}

func (x *Index) startOf(k int) int {
	if x.Count() == 0 {
		return 0
	}
	return x.bounds[k]
}

// utf8Width is the byte length of code point k once decoded; unpaired
// surrogates count as U+FFFD.
func (x *Index) utf8Width(k int) int {
	w := 0
	for _, r := range utf16.Decode(x.text.slice(x.bounds[k], x.bounds[k+1])) {
		w += utf8.RuneLen(r)
	}
	return w
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}
