package buffer

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type indexFixture struct {
	name       string
	units      []uint16
	boundaries []int
}

func indexFixtures() []indexFixture {
	return []indexFixture{
		{name: "empty", units: nil, boundaries: nil},
		{name: "ascii-single", units: utf16.Encode([]rune("a")), boundaries: []int{0, 1}},
		{name: "ascii", units: utf16.Encode([]rune("abc")), boundaries: []int{0, 1, 2, 3}},
		{name: "bmp", units: utf16.Encode([]rune("é€")), boundaries: []int{0, 1, 2}},
		{name: "surrogate-pair", units: utf16.Encode([]rune("a😀b")), boundaries: []int{0, 1, 3, 4}},
		{name: "pairs-only", units: utf16.Encode([]rune("😀😁")), boundaries: []int{0, 2, 4}},
		{name: "combining", units: utf16.Encode([]rune("e\u0301")), boundaries: []int{0, 1, 2}},
		{name: "unpaired-high-at-end", units: []uint16{'a', 0xD800}, boundaries: []int{0, 1, 2}},
		{name: "unpaired-low", units: []uint16{0xDC00, 'a'}, boundaries: []int{0, 1, 2}},
		{name: "reversed-pair", units: []uint16{0xDE00, 0xD83D}, boundaries: []int{0, 1, 2}},
	}
}

func TestBuild_CodePointFixtures(t *testing.T) {
	for _, fx := range indexFixtures() {
		t.Run(fx.name, func(t *testing.T) {
			idx, err := Build(FromUnits(fx.units, Options{}), CodePoints)
			require.NoError(t, err)
			assert.Equal(t, fx.boundaries, idx.Boundaries())
			if len(fx.boundaries) == 0 {
				assert.Equal(t, 0, idx.Count())
				return
			}
			assert.Equal(t, len(fx.boundaries)-1, idx.Count())
		})
	}
}

func TestBuild_BoundariesStrictlyIncreasingAndClosed(t *testing.T) {
	for _, fx := range indexFixtures() {
		idx := MustBuild(FromUnits(fx.units, Options{}), nil)
		b := idx.Boundaries()
		if len(fx.units) == 0 {
			assert.Nil(t, b, fx.name)
			continue
		}
		require.Equal(t, 0, b[0], fx.name)
		for i := 1; i < len(b); i++ {
			require.Less(t, b[i-1], b[i], "%s: boundaries %v", fx.name, b)
		}
		require.Equal(t, len(fx.units), b[len(b)-1], fx.name)
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	for _, fx := range indexFixtures() {
		tx := FromUnits(fx.units, Options{})
		idx := MustBuild(tx, CodePoints)

		var out []uint16
		for k := 0; k < idx.Count(); k++ {
			start, end, err := idx.Range(k)
			require.NoError(t, err)
			r, w := tx.CodePointAt(start)
			require.Equal(t, end-start, w, "%s: width of code point %d", fx.name, k)
			if w == 2 {
				out = utf16.AppendRune(out, r)
			} else {
				out = append(out, uint16(r))
			}
		}
		assert.Equal(t, len(fx.units), len(out), fx.name)
		if len(fx.units) > 0 {
			assert.Equal(t, fx.units, out, fx.name)
		}
	}
}

type countingScanner struct {
	calls int
	inner Scanner
}

func (s *countingScanner) Boundaries(units []uint16, locale language.Tag) BoundaryIterator {
	s.calls++
	return s.inner.Boundaries(units, locale)
}

func TestBuild_CallsScannerOnce(t *testing.T) {
	s := &countingScanner{inner: CodePoints}
	_, err := Build(FromString("hello", Options{}), s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.calls)

	s.calls = 0
	_, err = Build(FromString("", Options{}), s)
	require.NoError(t, err)
	assert.Equal(t, 0, s.calls, "empty text is not scanned")
}

type fixedIter struct {
	vals []int
	pos  int
}

func (it *fixedIter) First() int {
	it.pos = 1
	return it.vals[0]
}

func (it *fixedIter) Next() int {
	if it.pos >= len(it.vals) {
		return Done
	}
	v := it.vals[it.pos]
	it.pos++
	return v
}

func fixedScanner(vals ...int) Scanner {
	return ScannerFunc(func([]uint16, language.Tag) BoundaryIterator {
		return &fixedIter{vals: vals}
	})
}

func TestBuild_ScannerLocaleIsPassedThrough(t *testing.T) {
	var got language.Tag
	s := ScannerFunc(func(units []uint16, locale language.Tag) BoundaryIterator {
		got = locale
		return CodePoints.Boundaries(units, locale)
	})
	_, err := Build(FromString("ab", Options{Locale: language.German}), s)
	require.NoError(t, err)
	assert.Equal(t, language.German, got)
}

func TestBuild_AppendsClosingBoundary(t *testing.T) {
	idx, err := Build(FromString("abcd", Options{}), fixedScanner(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, idx.Boundaries())
	assert.Equal(t, 2, idx.Count())
}

func TestBuild_RejectsInvalidScannerOutput(t *testing.T) {
	cases := map[string]Scanner{
		"nonzero-first":  fixedScanner(1, 4),
		"not-increasing": fixedScanner(0, 2, 2, 4),
		"decreasing":     fixedScanner(0, 3, 1, 4),
		"past-end":       fixedScanner(0, 5),
	}
	for name, s := range cases {
		_, err := Build(FromString("abcd", Options{}), s)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidBoundary), "%s: %v", name, err)
	}
}

func TestBuild_Clusters(t *testing.T) {
	tx := FromString("ae\u0301😀", Options{})
	idx, err := Build(tx, Clusters)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5}, idx.Boundaries())

	r, err := idx.CodePoint(1)
	require.NoError(t, err)
	assert.Equal(t, 'e', r, "cluster reads return the leading code point")

	cp := MustBuild(tx, CodePoints)
	assert.Equal(t, 4, cp.Count())
}

func TestIndex_Accessors(t *testing.T) {
	idx := MustBuild(FromString("a😀b", Options{}), nil)

	assert.Equal(t, 3, idx.Count())
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, 3, idx.LastStart())
	assert.Equal(t, 4, idx.Boundary(3))
	assert.Equal(t, []rune{'a', '😀', 'b'}, idx.CodePoints())

	start, end, err := idx.Range(1)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	u, err := idx.Units(1)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xD83D, 0xDE00}, u)

	_, err = idx.CodePoint(3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, _, err = idx.Range(-1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	k, ok := idx.CodePointIndex(3)
	assert.True(t, ok)
	assert.Equal(t, 2, k)
	_, ok = idx.CodePointIndex(2)
	assert.False(t, ok, "offset inside a surrogate pair")
	_, ok = idx.CodePointIndex(4)
	assert.False(t, ok, "closing boundary starts no code point")

	assert.Contains(t, idx.DebugString(), "count=3")
}

func TestIndex_EmptyAccessors(t *testing.T) {
	idx := MustBuild(FromString("", Options{}), nil)
	assert.Equal(t, 0, idx.Count())
	assert.Equal(t, -1, idx.LastStart())
	assert.Empty(t, idx.CodePoints())
	_, ok := idx.CodePointIndex(0)
	assert.False(t, ok)
	_, err := idx.Slice(0, 0)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestIndex_SliceBothDirections(t *testing.T) {
	idx := MustBuild(FromString("a😀bc", Options{}), nil)

	cases := []struct {
		start, end int
		want       string
	}{
		{start: 0, end: 4, want: "a😀bc"},
		{start: 1, end: 3, want: "😀b"},
		{start: 2, end: 2, want: ""},
		{start: 3, end: -1, want: "cb😀a"},
		{start: 2, end: 0, want: "b😀"},
	}
	for _, tc := range cases {
		got, err := idx.Slice(tc.start, tc.end)
		require.NoError(t, err, "Slice(%d,%d)", tc.start, tc.end)
		assert.Equal(t, tc.want, string(utf16.Decode(got)), "Slice(%d,%d)", tc.start, tc.end)

		var sb strings.Builder
		sb.WriteString(">")
		require.NoError(t, idx.AppendTo(&sb, tc.start, tc.end))
		assert.Equal(t, ">"+tc.want, sb.String(), "AppendTo(%d,%d)", tc.start, tc.end)
	}

	for _, bad := range [][2]int{{-1, 2}, {4, 2}, {0, 5}, {2, -2}} {
		_, err := idx.Slice(bad[0], bad[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds), "Slice(%d,%d)", bad[0], bad[1])
		var sb strings.Builder
		assert.True(t, errors.Is(idx.AppendTo(&sb, bad[0], bad[1]), ErrOutOfBounds))
	}
}
