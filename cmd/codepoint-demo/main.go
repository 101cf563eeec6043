// Command codepoint-demo indexes its argument and splits it into fields with
// the tokenizer, printing each field and the terminator that ended it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/iw2rmb/codepoint"
	"github.com/iw2rmb/codepoint/buffer"
	"github.com/iw2rmb/codepoint/cursor"
	"github.com/iw2rmb/codepoint/diag"
	"github.com/iw2rmb/codepoint/tokenizer"
)

type cli struct {
	Text     string `arg:"" help:"Text to split."`
	Escape   string `help:"Literal escape character, printable ASCII; empty disables it." default:"\\"`
	Sep      string `help:"Field separator." default:","`
	Reverse  bool   `help:"Walk the text from the end."`
	Clusters bool   `help:"Index grapheme clusters instead of code points."`
	Numbers  bool   `help:"Read each field as an unsigned decimal integer."`
	TabWidth int    `help:"Tab stop width used to align fields." default:"4"`
	Debug    bool   `help:"Log parse traces to stderr."`
	Version  bool   `help:"Print the version and exit."`
}

func main() {
	var params cli
	kong.Parse(&params, kong.Description("Code point cursor and tokenizer demo."))

	if params.Version {
		fmt.Println(codepoint.VersionTag())
		return
	}
	if err := run(params, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "codepoint-demo:", err)
		os.Exit(1)
	}
}

func run(params cli, stdout, stderr io.Writer) error {
	opt := buffer.Options{}
	if params.Clusters {
		opt.Scanner = buffer.Clusters
	}
	b, err := buffer.New(params.Text, opt)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if params.Debug {
		level = slog.LevelDebug
	}
	log := diag.NewLogger(stderr, level)
	log.Debug("Indexed text", "codePoints", b.CountCodePoints(), "units", b.CountUTF16Units(),
		"index", diag.Lazy(b.Index().DebugString))

	c := cursor.New(b.Index(), params.Reverse)
	c.SetDebug(params.Debug, diag.DefaultFlags())
	tk := tokenizer.New(c, tokenizer.WithLogger(log))
	if err := tk.SetEscape(firstRune(params.Escape)); err != nil {
		return err
	}

	rows := split(tk, firstRune(params.Sep), params.Numbers)
	render(stdout, rows, defaultStyle(), params.TabWidth)
	return nil
}

// split reads fields until the cursor is exhausted or an escape is left
// dangling at the end.
func split(tk *tokenizer.Tokenizer, sep rune, numbers bool) []row {
	var rows []row
	for tk.Cursor().HasNext() {
		var r row
		if numbers {
			v := tk.ParseInt(-1, 10)
			r.value = &v
		}
		r.field, r.term = tk.ParseSliceUntil(sep)
		rows = append(rows, r)
		if r.term == tokenizer.EscapeAtEnd {
			break
		}
	}
	return rows
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func terminatorName(term rune) string {
	switch term {
	case tokenizer.CursorEnd:
		return "CURSOR_END"
	case tokenizer.EscapeAtEnd:
		return "ESCAPE_AT_END"
	default:
		return diag.Quote(term)
	}
}
