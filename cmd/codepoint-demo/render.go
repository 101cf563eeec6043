package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepoint/internal/grapheme"
	"github.com/iw2rmb/codepoint/tokenizer"
)

type row struct {
	value *int64
	field string
	term  rune
}

type style struct {
	Ordinal    lipgloss.Style
	Value      lipgloss.Style
	Field      lipgloss.Style
	Terminator lipgloss.Style
	Dangling   lipgloss.Style
}

func defaultStyle() style {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return style{
		Ordinal:    faint,
		Value:      lipgloss.NewStyle().Bold(true),
		Field:      lipgloss.NewStyle(),
		Terminator: faint,
		Dangling:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}
}

// render writes one line per row with the field column padded to the widest
// field in terminal cells.
func render(w io.Writer, rows []row, st style, tabWidth int) {
	fields := make([]string, len(rows))
	widest := 0
	for i, r := range rows {
		fields[i] = strconv.Quote(r.field)
		widest = max(widest, grapheme.Width(fields[i], tabWidth))
	}

	for i, r := range rows {
		var sb strings.Builder
		sb.WriteString(st.Ordinal.Render(strconv.Itoa(i)))
		sb.WriteByte('\t')
		if r.value != nil {
			sb.WriteString(st.Value.Render(strconv.FormatInt(*r.value, 10)))
			sb.WriteByte('\t')
		}
		pad := widest - grapheme.Width(fields[i], tabWidth)
		sb.WriteString(st.Field.Render(fields[i]))
		sb.WriteString(strings.Repeat(" ", pad+1))
		term := st.Terminator
		if r.term == tokenizer.EscapeAtEnd {
			term = st.Dangling
		}
		sb.WriteString(term.Render(terminatorName(r.term)))
		fmt.Fprintln(w, sb.String())
	}
}
