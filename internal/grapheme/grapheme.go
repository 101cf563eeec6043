// Package grapheme enumerates extended grapheme cluster boundaries over
// UTF-16 code units, using uniseg for the segmentation rules.
package grapheme

import (
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Done is returned by Iterator.Next once every boundary has been produced.
const Done = -1

// Iterator walks cluster boundaries as UTF-16 unit offsets. It is forward
// only; First restarts it.
type Iterator struct {
	text string
	g    *uniseg.Graphemes
	off  int
	done bool
}

// New returns an iterator over units. Unpaired surrogates are treated as one
// unit each.
func New(units []uint16) *Iterator {
	it := &Iterator{text: string(utf16.Decode(units))}
	it.First()
	return it
}

// First restarts the iteration and returns the first boundary, always 0.
func (it *Iterator) First() int {
	it.g = uniseg.NewGraphemes(it.text)
	it.off = 0
	it.done = false
	return 0
}

// Next returns the unit offset just past the next cluster, or Done.
func (it *Iterator) Next() int {
	if it.done {
		return Done
	}
	if !it.g.Next() {
		it.done = true
		return Done
	}
	for _, r := range it.g.Runes() {
		it.off += unitLen(r)
	}
	return it.off
}

// Boundaries returns every cluster boundary of units, including 0 and
// len(units). An empty input yields nil.
func Boundaries(units []uint16) []int {
	if len(units) == 0 {
		return nil
	}
	it := New(units)
	out := []int{it.First()}
	for b := it.Next(); b != Done; b = it.Next() {
		out = append(out, b)
	}
	return out
}

func unitLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	// utf16.Decode never yields runes utf16 cannot encode; keep the offset
	// moving if that ever changes.
	return 1
}
