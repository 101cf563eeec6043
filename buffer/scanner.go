package buffer

import (
	"golang.org/x/text/language"

	"github.com/iw2rmb/codepoint/internal/grapheme"
)

// Done terminates a BoundaryIterator.
const Done = -1

// BoundaryIterator yields boundary unit offsets in increasing order.
//
// First restarts the iteration and returns the start offset (0). Each Next
// returns the following boundary; the last one before Done is the unit
// length of the text.
type BoundaryIterator interface {
	First() int
	Next() int
}

// Scanner is the boundary-scanning capability consumed by Build. It is the
// only place segmentation rules enter this package.
type Scanner interface {
	Boundaries(units []uint16, locale language.Tag) BoundaryIterator
}

// ScannerFunc adapts a function to Scanner.
type ScannerFunc func(units []uint16, locale language.Tag) BoundaryIterator

func (f ScannerFunc) Boundaries(units []uint16, locale language.Tag) BoundaryIterator {
	return f(units, locale)
}

var (
	// CodePoints places a boundary before every code point. A well-formed
	// surrogate pair is one code point; an unpaired surrogate is its own.
	CodePoints Scanner = ScannerFunc(func(units []uint16, _ language.Tag) BoundaryIterator {
		return &codePointIter{units: units}
	})

	// Clusters places a boundary before every extended grapheme cluster.
	// An Index built with it counts clusters, and cursor reads return the
	// leading code point of each cluster.
	Clusters Scanner = ScannerFunc(func(units []uint16, _ language.Tag) BoundaryIterator {
		return grapheme.New(units)
	})
)

type codePointIter struct {
	units []uint16
	off   int
}

func (it *codePointIter) First() int {
	it.off = 0
	return 0
}

func (it *codePointIter) Next() int {
	n := len(it.units)
	if it.off >= n {
		return Done
	}
	w := 1
	if isHighSurrogate(it.units[it.off]) && it.off+1 < n && isLowSurrogate(it.units[it.off+1]) {
		w = 2
	}
	it.off += w
	return it.off
}
