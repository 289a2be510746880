// Package keypad provides the keypad layouts and the decomposition of moves
// into directional button presses.
package keypad

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// ErrInvalidSymbol is returned for symbols which are not part of a pad.
var ErrInvalidSymbol = errors.New("invalid symbol")

const gapCell = ' '

// Directional pad symbols.
const (
	Activate byte = 'A'
	Up       byte = '^'
	Down     byte = 'v'
	Left     byte = '<'
	Right    byte = '>'
)

// Coordinate is a (row, col) position on a pad.
type Coordinate struct {
	Row, Col int
}

// Sub returns the row and column delta from o to c.
func (c Coordinate) Sub(o Coordinate) (dRow, dCol int) { return c.Row - o.Row, c.Col - o.Col }

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Pad is an immutable keypad layout with exactly one gap.
type Pad struct {
	name    string
	symbols mapset.Set[byte] // alphabet
	coords  map[byte]Coordinate
	gap     Coordinate
}

// The two pads of the chain.
var (
	Numeric     = mustPad("numeric", "789", "456", "123", " 0A")
	Directional = mustPad("directional", " ^A", "<v>")
)

func mustPad(name string, rows ...string) *Pad {
	p, err := NewPad(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPad creates a pad from equally wide rows. A blank marks the gap.
func NewPad(name string, rows ...string) (*Pad, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pad %s: no rows", name)
	}

	p := &Pad{name: name, symbols: mapset.New[byte](), coords: map[byte]Coordinate{}}
	numGap := 0
	width := len(rows[0])

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("pad %s: row %d has width %d - expected %d", name, row, len(line), width)
		}
		for col := 0; col < len(line); col++ {
			sym := line[col]
			if sym == gapCell {
				numGap++
				p.gap = Coordinate{Row: row, Col: col}
				continue
			}
			if p.symbols.Has(sym) {
				return nil, fmt.Errorf("pad %s: duplicate symbol %q", name, sym)
			}
			p.symbols.Put(sym)
			p.coords[sym] = Coordinate{Row: row, Col: col}
		}
	}
	if numGap != 1 {
		return nil, fmt.Errorf("pad %s: %d gaps - expected exactly one", name, numGap)
	}
	return p, nil
}

// Name returns the pad name.
func (p *Pad) Name() string { return p.name }

// Gap returns the coordinate without a button.
func (p *Pad) Gap() Coordinate { return p.gap }

// Contains reports whether sym is a button of p.
func (p *Pad) Contains(sym byte) bool { return p.symbols.Has(sym) }

// Symbols returns the sorted symbols of p.
func (p *Pad) Symbols() []byte {
	syms := make([]byte, 0, p.symbols.Size())
	p.symbols.Each(func(sym byte) { syms = append(syms, sym) })
	slices.Sort(syms)
	return syms
}

// CoordinateOf returns the position of sym.
func (p *Pad) CoordinateOf(sym byte) (Coordinate, error) {
	c, ok := p.coords[sym]
	if !ok {
		return Coordinate{}, fmt.Errorf("%w %q on %s pad - expected one of %q", ErrInvalidSymbol, sym, p.Name(), p.Symbols())
	}
	return c, nil
}

// between reports whether v lies in the closed interval spanned by a and b.
func between(v, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}

// crosses reports whether the path from -> to in the given order visits the gap.
func (p *Pad) crosses(from, to Coordinate, order Order) bool {
	g := p.gap
	if order == HorizontalFirst {
		// (from.Row, *) then (*, to.Col)
		return (g.Row == from.Row && between(g.Col, from.Col, to.Col)) ||
			(g.Col == to.Col && between(g.Row, from.Row, to.Row))
	}
	// (*, from.Col) then (to.Row, *)
	return (g.Col == from.Col && between(g.Row, from.Row, to.Row)) ||
		(g.Row == to.Row && between(g.Col, from.Col, to.Col))
}

// Orders returns the press orders worth evaluating for a move from -> to.
// Straight moves yield VerticalFirst only, as both orders press the same
// buttons. An order whose path would point at the gap is never returned.
func (p *Pad) Orders(from, to Coordinate) []Order {
	dRow, dCol := to.Sub(from)
	if dRow == 0 || dCol == 0 {
		return []Order{VerticalFirst}
	}
	switch {
	case p.crosses(from, to, HorizontalFirst):
		return []Order{VerticalFirst}
	case p.crosses(from, to, VerticalFirst):
		return []Order{HorizontalFirst}
	default:
		return []Order{VerticalFirst, HorizontalFirst}
	}
}
