package buffer

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"
)

// Index maps code-point indices to unit offsets of one Text.
//
// bounds[k] is the unit offset where code point k begins and
// bounds[Count()] is the unit length of the text. An empty text has no
// boundaries. An Index is never mutated after Build and may be shared by any
// number of readers.
type Index struct {
	text   *Text
	bounds []int
}

// Build indexes t using s, calling s exactly once. A nil s means CodePoints.
func Build(t *Text, s Scanner) (*Index, error) {
	if s == nil {
		s = CodePoints
	}
	idx := &Index{text: t}
	n := t.Len()
	if n == 0 {
		return idx, nil
	}

	it := s.Boundaries(t.units, t.Locale())
	first := it.First()
	if first != 0 {
		return nil, errors.Wrapf(ErrInvalidBoundary, "first boundary is %d, want 0", first)
	}
	bounds := make([]int, 1, n+1)
	for b := it.Next(); b != Done; b = it.Next() {
		prev := bounds[len(bounds)-1]
		if b <= prev || b > n {
			return nil, errors.Wrapf(ErrInvalidBoundary, "boundary %d after %d (text length %d)", b, prev, n)
		}
		bounds = append(bounds, b)
	}
	// the closing boundary
	if bounds[len(bounds)-1] != n {
		bounds = append(bounds, n)
	}
	idx.bounds = bounds
	return idx, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(t *Text, s Scanner) *Index {
	idx, err := Build(t, s)
	if err != nil {
		panic(err)
	}
	return idx
}

// Count returns the number of code points.
func (x *Index) Count() int {
	if x == nil || len(x.bounds) == 0 {
		return 0
	}
	return len(x.bounds) - 1
}

// Len returns the unit length of the indexed text.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return x.text.Len()
}

func (x *Index) Text() *Text {
	if x == nil {
		return nil
	}
	return x.text
}

// Boundaries returns a copy of the boundary offsets, nil for an empty text.
func (x *Index) Boundaries() []int {
	if x == nil {
		return nil
	}
	return slices.Clone(x.bounds)
}

// Boundary returns the unit offset of code point k, or the unit length when
// k == Count(). It panics if k is outside [0, Count()].
func (x *Index) Boundary(k int) int { return x.bounds[k] }

// LastStart returns the unit offset of the last code point, or -1 for an
// empty text.
func (x *Index) LastStart() int {
	if x.Count() == 0 {
		return -1
	}
	return x.bounds[len(x.bounds)-2]
}

// Range returns the unit range [start, end) of code point k.
func (x *Index) Range(k int) (start, end int, err error) {
	if err := x.check(k); err != nil {
		return 0, 0, err
	}
	return x.bounds[k], x.bounds[k+1], nil
}

// CodePoint decodes code point k.
func (x *Index) CodePoint(k int) (rune, error) {
	if err := x.check(k); err != nil {
		return 0, err
	}
	r, _ := x.text.CodePointAt(x.bounds[k])
	return r, nil
}

// CodePoints decodes every code point in order.
func (x *Index) CodePoints() []rune {
	n := x.Count()
	out := make([]rune, n)
	for k := n - 1; k >= 0; k-- {
		out[k], _ = x.text.CodePointAt(x.bounds[k])
	}
	return out
}

// Units returns a copy of the units of code point k.
func (x *Index) Units(k int) ([]uint16, error) {
	start, end, err := x.Range(k)
	if err != nil {
		return nil, err
	}
	return slices.Clone(x.text.slice(start, end)), nil
}

// Slice returns the units of code points start up to, but excluding, end.
//
// If end < start the code points are emitted in reverse order, each one
// keeping its own unit order; end may then be -1 to include code point 0.
// start must be a valid code-point index and end must lie in [-1, Count()].
func (x *Index) Slice(start, end int) ([]uint16, error) {
	if err := x.checkSpan(start, end); err != nil {
		return nil, err
	}
	if start == end {
		return []uint16{}, nil
	}
	if start < end {
		return slices.Clone(x.text.slice(x.bounds[start], x.bounds[end])), nil
	}
	out := make([]uint16, 0, x.bounds[start+1]-x.bounds[end+1])
	for k := start; k != end; k-- {
		out = append(out, x.text.slice(x.bounds[k], x.bounds[k+1])...)
	}
	return out, nil
}

// AppendTo appends code points start up to, but excluding, end to sb as
// UTF-8, with the same direction rules as Slice.
func (x *Index) AppendTo(sb *strings.Builder, start, end int) error {
	if err := x.checkSpan(start, end); err != nil {
		return err
	}
	d := 1
	if end < start {
		d = -1
	}
	for k := start; k != end; k += d {
		for _, r := range utf16.Decode(x.text.slice(x.bounds[k], x.bounds[k+1])) {
			sb.WriteRune(r)
		}
	}
	return nil
}

// CodePointIndex returns the index of the code point starting at unit
// offset off. ok is false if off is not a code-point boundary.
func (x *Index) CodePointIndex(off int) (k int, ok bool) {
	if x.Count() == 0 {
		return 0, false
	}
	k, ok = slices.BinarySearch(x.bounds[:len(x.bounds)-1], off)
	if !ok {
		return 0, false
	}
	return k, true
}

// DebugString describes the index for diagnostics.
func (x *Index) DebugString() string {
	return fmt.Sprintf("buffer.Index: count=%d boundaries=%v", x.Count(), x.Boundaries())
}

func (x *Index) check(k int) error {
	if k < 0 || k >= x.Count() {
		return errors.Wrapf(ErrOutOfBounds, "code point %d, count %d", k, x.Count())
	}
	return nil
}

func (x *Index) checkSpan(start, end int) error {
	n := x.Count()
	if start < 0 || start >= n || end < -1 || end > n {
		return errors.Wrapf(ErrOutOfBounds, "span [%d, %d), count %d", start, end, n)
	}
	return nil
}
