package solver

import (
	"math"
	"math/bits"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
)

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// moveCost returns the number of human presses needed for the robot depth
// levels below to perform move on a directional pad and press activate.
func (s *Solver) moveCost(move keypad.Move, depth int) (uint64, error) {
	if depth == 0 {
		return uint64(move.Distance()) + 1, nil
	}

	key := packed.Pack(move.DRow, move.DCol, depth, move.Order == keypad.HorizontalFirst)
	if cost, ok := s.memo.Load(key); ok {
		return cost, nil
	}

	var total uint64
	from := s.dirHome
	for _, sym := range move.Presses() {
		to, err := keypad.Directional.CoordinateOf(sym)
		if err != nil {
			return 0, err
		}
		_, cost, err := s.cheapest(keypad.Directional, from, to, depth-1)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, cost); err != nil {
			return 0, err
		}
		from = to
	}

	s.memo.StoreIfAbsent(key, total)
	return total, nil
}

// cheapest returns the move from -> to on pad with minimal cost over all
// orders which keep clear of the pad's gap.
func (s *Solver) cheapest(pad *keypad.Pad, from, to keypad.Coordinate, depth int) (keypad.Move, uint64, error) {
	var bestMove keypad.Move
	best := uint64(math.MaxUint64)
	for i, order := range pad.Orders(from, to) {
		move := keypad.NewMove(from, to, order)
		cost, err := s.moveCost(move, depth)
		if err != nil {
			return keypad.Move{}, 0, err
		}
		if i == 0 || cost < best {
			bestMove, best = move, cost
		}
	}
	return bestMove, best, nil
}
