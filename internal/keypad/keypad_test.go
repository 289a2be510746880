package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateOf(t *testing.T) {
	tests := []struct {
		pad  *Pad
		sym  byte
		want Coordinate
	}{
		{Numeric, '7', Coordinate{0, 0}},
		{Numeric, '5', Coordinate{1, 1}},
		{Numeric, '0', Coordinate{3, 1}},
		{Numeric, 'A', Coordinate{3, 2}},
		{Directional, '^', Coordinate{0, 1}},
		{Directional, 'A', Coordinate{0, 2}},
		{Directional, '<', Coordinate{1, 0}},
		{Directional, '>', Coordinate{1, 2}},
	}

	for _, test := range tests {
		c, err := test.pad.CoordinateOf(test.sym)
		require.NoError(t, err)
		assert.Equal(t, test.want, c, "%s %q", test.pad.Name(), test.sym)
	}
}

func TestCoordinateOfInvalid(t *testing.T) {
	for _, sym := range []byte{'B', ' ', '^'} {
		_, err := Numeric.CoordinateOf(sym)
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	}
	_, err := Directional.CoordinateOf('7')
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Contains(t, err.Error(), `directional pad - expected one of "<>A^v"`)
}

func TestGap(t *testing.T) {
	assert.Equal(t, Coordinate{3, 0}, Numeric.Gap())
	assert.Equal(t, Coordinate{0, 0}, Directional.Gap())
	assert.False(t, Numeric.Contains(' '))
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, []byte("0123456789A"), Numeric.Symbols())
	assert.Equal(t, []byte("<>A^v"), Directional.Symbols())

	// alphabet and coordinates agree
	for _, pad := range []*Pad{Numeric, Directional} {
		for _, sym := range pad.Symbols() {
			assert.True(t, pad.Contains(sym))
			_, err := pad.CoordinateOf(sym)
			assert.NoError(t, err)
		}
	}
}

func TestNewPadErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"12", " 3A"}},
		{"duplicate", []string{"11", " A"}},
		{"no gap", []string{"12", "3A"}},
		{"two gaps", []string{" 1", "A "}},
	}

	for _, test := range tests {
		_, err := NewPad(test.name, test.rows...)
		assert.Error(t, err, test.name)
	}
}

func TestOrders(t *testing.T) {
	tests := []struct {
		pad      *Pad
		from, to byte
		want     []Order
	}{
		// straight lines
		{Numeric, 'A', '0', []Order{VerticalFirst}},
		{Numeric, '7', '1', []Order{VerticalFirst}},
		{Directional, 'A', 'A', []Order{VerticalFirst}},
		// horizontal first would hit the numeric gap
		{Numeric, 'A', '1', []Order{VerticalFirst}},
		{Numeric, '0', '7', []Order{VerticalFirst}},
		// vertical first would hit the numeric gap
		{Numeric, '1', 'A', []Order{HorizontalFirst}},
		{Numeric, '4', '0', []Order{HorizontalFirst}},
		// free choice
		{Numeric, '5', '9', []Order{VerticalFirst, HorizontalFirst}},
		{Numeric, 'A', '5', []Order{VerticalFirst, HorizontalFirst}},
		// directional gap
		{Directional, 'A', '<', []Order{VerticalFirst}},
		{Directional, '^', '<', []Order{VerticalFirst}},
		{Directional, '<', 'A', []Order{HorizontalFirst}},
		{Directional, '<', '^', []Order{HorizontalFirst}},
		{Directional, 'A', 'v', []Order{VerticalFirst, HorizontalFirst}},
	}

	for _, test := range tests {
		from, err := test.pad.CoordinateOf(test.from)
		require.NoError(t, err)
		to, err := test.pad.CoordinateOf(test.to)
		require.NoError(t, err)
		assert.Equal(t, test.want, test.pad.Orders(from, to), "%s %q -> %q", test.pad.Name(), test.from, test.to)
	}
}

func TestOrdersGeneralizesToOtherGaps(t *testing.T) {
	// gap in the top right corner
	pad, err := NewPad("mirror", "12 ", "345")
	require.NoError(t, err)

	from, _ := pad.CoordinateOf('2')
	to, _ := pad.CoordinateOf('5')
	assert.Equal(t, []Order{VerticalFirst}, pad.Orders(from, to))
	assert.Equal(t, []Order{HorizontalFirst}, pad.Orders(to, from))
}

func TestPresses(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{}, "A"},
		{Move{DRow: -1, DCol: 2, Order: HorizontalFirst}, ">>^A"},
		{Move{DRow: -1, DCol: 2, Order: VerticalFirst}, "^>>A"},
		{Move{DRow: 3, DCol: -1, Order: VerticalFirst}, "vvv<A"},
		{Move{DRow: 0, DCol: -2, Order: HorizontalFirst}, "<<A"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, string(test.move.Presses()))
		assert.Equal(t, len(test.want)-1, test.move.Distance())
	}
}

func TestNewMove(t *testing.T) {
	from, _ := Numeric.CoordinateOf('A')
	to, _ := Numeric.CoordinateOf('7')
	assert.Equal(t, Move{DRow: -3, DCol: -2, Order: VerticalFirst}, NewMove(from, to, VerticalFirst))
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "(-1,2) horizontal-first", Move{DRow: -1, DCol: 2, Order: HorizontalFirst}.String())
	assert.Equal(t, "(0,0) vertical-first", Move{}.String())
}
