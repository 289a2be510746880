package solver

import (
	"fmt"
	"strconv"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"go.uber.org/zap"
)

// Code is a validated numeric pad target sequence.
type Code struct {
	seq   string
	value uint64
}

// ParseCode validates s against the numeric pad and extracts its numeric value.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return Code{}, fmt.Errorf("%w: empty code", ErrInvalidCode)
	}
	for i := 0; i < len(s); i++ {
		if !keypad.Numeric.Contains(s[i]) {
			return Code{}, fmt.Errorf("code %q: %w %q at position %d - expected one of %q", s, keypad.ErrInvalidSymbol, s[i], i, keypad.Numeric.Symbols())
		}
	}
	if s[len(s)-1] != keypad.Activate {
		return Code{}, fmt.Errorf("%w: code %q does not end with %q", ErrInvalidCode, s, keypad.Activate)
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	var value uint64
	if n > 0 {
		var err error
		if value, err = strconv.ParseUint(s[:n], 10, 64); err != nil {
			return Code{}, fmt.Errorf("code %q: numeric value: %w", s, ErrOverflow)
		}
	}
	return Code{seq: s, value: value}, nil
}

func (c Code) String() string { return c.seq }

// Value returns the leading digit run of the code as number.
func (c Code) Value() uint64 { return c.value }

func (s *Solver) codeCost(code Code, depth int) (uint64, error) {
	var total uint64
	from := s.numHome
	for i := 0; i < len(code.seq); i++ {
		to, err := keypad.Numeric.CoordinateOf(code.seq[i])
		if err != nil {
			return 0, err
		}
		move, cost, err := s.cheapest(keypad.Numeric, from, to, depth)
		if err != nil {
			return 0, fmt.Errorf("code %q at depth %d: %w", code, depth, err)
		}
		s.logger.Debug("numeric move", zap.Stringer("code", code), zap.Stringer("move", move), zap.Int("depth", depth), zap.Uint64("cost", cost))
		if total, err = add(total, cost); err != nil {
			return 0, fmt.Errorf("code %q at depth %d: %w", code, depth, err)
		}
		from = to
	}
	return total, nil
}

// CodeCost returns the minimum number of human presses to type code through
// depth directional robots.
func (s *Solver) CodeCost(code string, depth int) (uint64, error) {
	if err := checkDepth(depth); err != nil {
		return 0, err
	}
	c, err := ParseCode(code)
	if err != nil {
		return 0, err
	}
	return s.codeCost(c, depth)
}

// Complexity returns the numeric value of code multiplied by its cost.
func (s *Solver) Complexity(code string, depth int) (uint64, error) {
	if err := checkDepth(depth); err != nil {
		return 0, err
	}
	c, err := ParseCode(code)
	if err != nil {
		return 0, err
	}
	return s.complexity(c, depth)
}

func (s *Solver) complexity(c Code, depth int) (uint64, error) {
	cost, err := s.codeCost(c, depth)
	if err != nil {
		return 0, err
	}
	v, err := mul(c.value, cost)
	if err != nil {
		return 0, fmt.Errorf("code %q at depth %d: %w", c, depth, err)
	}
	return v, nil
}
