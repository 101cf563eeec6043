package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	cases := []struct {
		name string
		in   string
		tab  int
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "abc", want: 3},
		{name: "wide", in: "世界", want: 4},
		{name: "combining", in: "e\u0301", want: 1},
		{name: "tab-stop", in: "a\tb", tab: 4, want: 5},
		{name: "tab-default", in: "\t", tab: 0, want: DefaultTabWidth},
		{name: "tab-aligned", in: "abcd\t", tab: 4, want: 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Width(tc.in, tc.tab), tc.name)
	}
}

func TestCellWidth_TabFromColumn(t *testing.T) {
	assert.Equal(t, 2, CellWidth("\t", 6, 8))
	assert.Equal(t, 1, CellWidth("\t", 7, 8))
	assert.Equal(t, 8, CellWidth("\t", 8, 8))
}
