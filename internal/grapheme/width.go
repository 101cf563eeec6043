package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a tab width below 1.
const DefaultTabWidth = 4

// CellWidth returns the terminal cell width of one cluster drawn at column
// col. A tab advances to the next tab stop.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(col, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the cell width of s drawn from column 0, cluster by cluster.
func Width(s string, tabWidth int) int {
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		col += CellWidth(g.Str(), col, tabWidth)
	}
	return col
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}
