package keypad

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order defines which axis is pressed first.
type Order uint8

// Orders.
const (
	VerticalFirst Order = iota
	HorizontalFirst
)

func (o Order) String() string {
	if o == HorizontalFirst {
		return "horizontal-first"
	}
	return "vertical-first"
}

// Move is a delta on a pad together with the order of its presses.
type Move struct {
	DRow, DCol int
	Order      Order
}

// NewMove returns the move from -> to in the given order.
func NewMove(from, to Coordinate, order Order) Move {
	dRow, dCol := to.Sub(from)
	return Move{DRow: dRow, DCol: dCol, Order: order}
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func (m Move) String() string { return fmt.Sprintf("(%d,%d) %s", m.DRow, m.DCol, m.Order) }

// Distance returns the manhattan distance of m.
func (m Move) Distance() int { return abs(m.DRow) + abs(m.DCol) }

// Presses returns the directional buttons executing m, terminated by Activate.
func (m Move) Presses() []byte {
	presses := make([]byte, 0, m.Distance()+1)

	vertical := func() {
		sym := Down
		if m.DRow < 0 {
			sym = Up
		}
		for i := 0; i < abs(m.DRow); i++ {
			presses = append(presses, sym)
		}
	}
	horizontal := func() {
		sym := Right
		if m.DCol < 0 {
			sym = Left
		}
		for i := 0; i < abs(m.DCol); i++ {
			presses = append(presses, sym)
		}
	}

	if m.Order == HorizontalFirst {
		horizontal()
		vertical()
	} else {
		vertical()
		horizontal()
	}
	return append(presses, Activate)
}
