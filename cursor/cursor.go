// Package cursor walks the code points of a buffer.Index in either direction,
// by any number of steps, with push-back.
//
// Unit positions follow one convention in both directions: the start
// sentinel is exclusive (nothing visited yet) and the end sentinel is
// inclusive (the last code point to visit). Forward, start is -1 and end is
// the offset of the last code point; reverse, start is the unit length and
// end is 0. An empty index collapses every sentinel to -1.
//
// A Cursor is not safe for concurrent use. Independent cursors may share one
// Index.
package cursor

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/iw2rmb/codepoint/buffer"
	"github.com/iw2rmb/codepoint/diag"
)

// ErrOutOfBounds is returned when a peek or advance would leave the index.
// The cursor is unchanged when it is returned.
var ErrOutOfBounds = errors.New("cursor out of bounds")

// State is a snapshot of a cursor's position fields.
type State struct {
	Direction int
	Start     int // exclusive
	End       int // inclusive
	Unit      int
	CodePoint int
}

type Cursor struct {
	idx *buffer.Index
	n   int // code points

	d     int // direction, +1 or -1
	start int
	end   int
	i     int // unit offset
	cpi   int // code point index

	cpStart int // code point index matching start

	debug bool
	flags diag.Flags
}

// New returns a cursor over idx, positioned by Reset(reverse). A nil idx
// behaves as an empty one.
func New(idx *buffer.Index, reverse bool) *Cursor {
	c := &Cursor{idx: idx, n: idx.Count()}
	return c.Reset(reverse)
}

// Reset moves the cursor back to the start sentinel for the given
// direction. It may be called at any time.
func (c *Cursor) Reset(reverse bool) *Cursor {
	switch {
	case c.n == 0:
		c.d = 1
		if reverse {
			c.d = -1
		}
		c.start, c.end, c.cpi = -1, -1, -1
	case reverse:
		c.d = -1
		c.start = c.idx.Len()
		c.end = 0
		c.cpi = c.n
	default:
		c.d = 1
		c.start = -1
		c.end = c.idx.LastStart()
		c.cpi = -1
	}
	c.i = c.start
	c.cpStart = c.cpi
	return c
}

// SetDebug enables verbose String output and tokenizer step traces, subject
// to flags.
func (c *Cursor) SetDebug(debug bool, flags diag.Flags) {
	c.debug = debug
	c.flags = flags
}

// Tracing reports whether step traces should be built for this cursor.
func (c *Cursor) Tracing() bool { return c.flags.Tracing(c.debug) }

func (c *Cursor) Index() *buffer.Index { return c.idx }

// Len returns the number of code points the cursor traverses.
func (c *Cursor) Len() int { return c.n }

// Direction returns +1 for forward and -1 for reverse.
func (c *Cursor) Direction() int { return c.d }

// CPIndexInclusive returns the code-point index of the next unvisited code
// point: inclusive at the start (0 forward, Len()-1 reverse) and exclusive
// at the end (Len() forward, -1 reverse).
func (c *Cursor) CPIndexInclusive() int { return c.cpi + c.d }

// CPIndexExclusive returns the code-point index of the last visited code
// point: exclusive at the start (-1 forward, Len() reverse) and inclusive at
// the end (Len()-1 forward, 0 reverse).
func (c *Cursor) CPIndexExclusive() int { return c.cpi }

// UnitIndexExclusive returns the unit offset of the last visited code point,
// or the start sentinel if none has been visited.
func (c *Cursor) UnitIndexExclusive() int { return c.i }

func (c *Cursor) State() State {
	return State{Direction: c.d, Start: c.start, End: c.end, Unit: c.i, CodePoint: c.cpi}
}

// HasNext reports whether at least one more code point can be visited.
func (c *Cursor) HasNext() bool { return c.i != c.end }

// HasNextN reports whether moving n steps in the cursor's direction lands on
// a code point. n may be negative (steps back) or zero (is the current
// position a code point).
func (c *Cursor) HasNextN(n int) bool {
	target := c.cpi + n*c.d
	return 0 <= target && target < c.n
}

// PeekIdx returns the unit offset of the next code point.
func (c *Cursor) PeekIdx() (int, error) {
	if !c.HasNext() {
		return 0, c.outOfBounds("PeekIdx")
	}
	return c.idx.Boundary(c.cpi + c.d), nil
}

// PeekIdxN returns the unit offset of the n'th next code point; n == 0
// returns the current offset.
func (c *Cursor) PeekIdxN(n int) (int, error) {
	if !c.HasNextN(n) {
		return 0, c.outOfBounds(fmt.Sprintf("PeekIdxN(%d)", n))
	}
	if n == 0 {
		return c.i, nil
	}
	return c.idx.Boundary(c.cpi + n*c.d), nil
}

// Advance moves to the next code point and returns its unit offset. On
// error nothing changes.
func (c *Cursor) Advance() (int, error) {
	i, err := c.PeekIdx()
	if err != nil {
		return 0, err
	}
	c.i = i
	c.cpi += c.d
	return i, nil
}

// AdvanceN moves n steps (negative moves back) and returns the new unit
// offset. On error nothing changes.
func (c *Cursor) AdvanceN(n int) (int, error) {
	i, err := c.PeekIdxN(n)
	if err != nil {
		return 0, err
	}
	c.i = i
	c.cpi += n * c.d
	return i, nil
}

// Rewind moves n steps back, n >= 0, and returns the new unit offset.
// Unlike AdvanceN(-n) it may land on the start sentinel, undoing the very
// first step. On error nothing changes.
func (c *Cursor) Rewind(n int) (int, error) {
	target := c.cpi - n*c.d
	if n < 0 || (target-c.cpStart)*c.d < 0 {
		return 0, c.outOfBounds(fmt.Sprintf("Rewind(%d)", n))
	}
	i := c.start
	if target != c.cpStart {
		i = c.idx.Boundary(target)
	}
	c.i = i
	c.cpi = target
	return i, nil
}

// Peek returns the next code point without moving.
func (c *Cursor) Peek() (rune, error) {
	i, err := c.PeekIdx()
	if err != nil {
		return 0, err
	}
	return c.at(i), nil
}

// PeekN returns the n'th next code point without moving.
func (c *Cursor) PeekN(n int) (rune, error) {
	i, err := c.PeekIdxN(n)
	if err != nil {
		return 0, err
	}
	return c.at(i), nil
}

// Next advances one step and returns the code point reached.
func (c *Cursor) Next() (rune, error) {
	i, err := c.Advance()
	if err != nil {
		return 0, err
	}
	return c.at(i), nil
}

// NextN advances n steps and returns the code point reached.
func (c *Cursor) NextN(n int) (rune, error) {
	i, err := c.AdvanceN(n)
	if err != nil {
		return 0, err
	}
	return c.at(i), nil
}

// Prev steps back once and returns the code point reached.
func (c *Cursor) Prev() (rune, error) { return c.NextN(-1) }

// Curr returns the code point at the current position. The caller must
// know that HasNextN(0) holds; it panics at a sentinel.
func (c *Cursor) Curr() rune { return c.at(c.i) }

func (c *Cursor) at(i int) rune {
	r, _ := c.idx.Text().CodePointAt(i)
	return r
}

func (c *Cursor) outOfBounds(op string) error {
	return errors.Wrapf(ErrOutOfBounds, "%s at %s", op, c)
}

func (c *Cursor) debugString() string {
	return fmt.Sprintf("Cursor(%q), startEx %d, endIn %d, direction %d, iEx %d, cpLen %d, cpiEx %d",
		c.idx.Text().String(), c.start, c.end, c.d, c.i, c.n, c.cpi)
}

// String renders (start,current,end), or a verbose description when
// debugging is enabled.
func (c *Cursor) String() string {
	if c.flags.Tracing(c.debug) {
		return c.debugString()
	}
	return fmt.Sprintf("(%d,%d,%d)", c.start, c.i, c.end)
}
