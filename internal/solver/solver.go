// Package solver implements the keypad chain cost algorithm.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/partmap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPartitions is the default number of memo partitions.
const DefaultPartitions = 64

var (
	// ErrInvalidCode is returned for empty codes or codes not ending in activate.
	ErrInvalidCode = errors.New("invalid code")
	// ErrOverflow is returned if a cost exceeds the uint64 range.
	ErrOverflow = errors.New("cost overflows uint64")
	// ErrInvalidDepth is returned for depths outside [0, packed.MaxDepth].
	ErrInvalidDepth = errors.New("invalid chain depth")
)

// Solver computes press counts. It owns its memo table; a Solver is safe for
// concurrent use.
type Solver struct {
	numWorker int
	numPart   int
	logger    *zap.Logger
	memo      *partmap.Map[packed.Key, uint64]

	numHome, dirHome keypad.Coordinate
}

// Option configures a Solver.
type Option func(s *Solver)

// WithWorkers sets the number of codes computed concurrently.
func WithWorkers(n int) Option { return func(s *Solver) { s.numWorker = n } }

// WithPartitions sets the number of memo partitions.
func WithPartitions(n int) Option { return func(s *Solver) { s.numPart = n } }

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option { return func(s *Solver) { s.logger = logger } }

// New returns a new solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		numWorker: runtime.NumCPU(),
		numPart:   DefaultPartitions,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.numWorker < 1 {
		s.numWorker = 1
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.memo = partmap.New[packed.Key, uint64](s.numPart)

	// activate exists on both pads
	s.numHome, _ = keypad.Numeric.CoordinateOf(keypad.Activate)
	s.dirHome, _ = keypad.Directional.CoordinateOf(keypad.Activate)

	s.logger.Debug("solver created",
		zap.String("pad", keypad.Numeric.Name()),
		zap.String("chain", keypad.Directional.Name()),
		zap.Int("workers", s.numWorker),
		zap.Int("partitions", s.memo.NumPart()))
	return s
}

func checkDepth(depth int) error {
	if depth < 0 || depth > packed.MaxDepth {
		return fmt.Errorf("%w %d: must be in [0, %d]", ErrInvalidDepth, depth, packed.MaxDepth)
	}
	return nil
}

// Solve returns the sum of the complexities of all codes at depth.
// All codes are validated before any cost is computed.
func (s *Solver) Solve(ctx context.Context, codes []string, depth int) (uint64, error) {
	if err := checkDepth(depth); err != nil {
		return 0, err
	}

	parsed := make([]Code, len(codes))
	for i, code := range codes {
		c, err := ParseCode(code)
		if err != nil {
			return 0, err
		}
		parsed[i] = c
	}

	results := make([]uint64, len(parsed))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numWorker)
	for i, c := range parsed {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := s.complexity(c, depth)
			if err != nil {
				return err
			}
			s.logger.Debug("code solved", zap.Stringer("code", c), zap.Uint64("value", c.value), zap.Uint64("complexity", v), zap.Int("depth", depth))
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, v := range results {
		var err error
		if total, err = add(total, v); err != nil {
			return 0, fmt.Errorf("sum at depth %d: %w", depth, err)
		}
	}

	s.logger.Info("solved", zap.Int("codes", len(codes)), zap.Int("depth", depth), zap.Uint64("total", total), zap.Int("memo", s.MemoSize()))
	return total, nil
}

// MemoSize returns the number of memoized moves.
func (s *Solver) MemoSize() int { return s.memo.Size() }

// Reset drops all memoized moves.
func (s *Solver) Reset() { s.memo.Reset() }

// Solve solves codes at depth with a new solver.
func Solve(ctx context.Context, codes []string, depth int, opts ...Option) (uint64, error) {
	return New(opts...).Solve(ctx, codes, depth)
}
