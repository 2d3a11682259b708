// Package solver implements exhaustive depth-first backtracking over the
// empty cells of a board, using the rules package as its legality oracle.
package solver

import (
	"context"
	"errors"
	"time"

	"tabula.dev/sudoku/internal/domain"
	"tabula.dev/sudoku/internal/ports"
	"tabula.dev/sudoku/internal/rules"
)

// ErrNoSolution is returned when the search exhausts every candidate
// assignment without completing the board.
var ErrNoSolution = errors.New("board has no solution")

// BacktrackingSolver is a straightforward recursive solver. It scans cells
// in row-major order, tries candidates 1..9 ascending, and backtracks on
// dead ends, so the search is deterministic and exhaustive.
type BacktrackingSolver struct{}

func NewBacktracking() *BacktrackingSolver { return &BacktrackingSolver{} }

func findEmpty(b *domain.Board) (int, int, bool) {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Values[r][c].IsEmpty() {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve returns a completed copy of b, leaving the input untouched.
// Cancellation of ctx aborts the search; an exhausted search returns
// ErrNoSolution.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(work)
		if !ok {
			return true
		}
		for v := domain.Cell(1); v <= domain.Size; v++ {
			nodes++
			if rules.CanPlace(work, r, c, v) {
				work.Values[r][c] = v
				if dfs() {
					return true
				}
				work.Values[r][c] = domain.Empty
			}
		}
		return false
	}
	st := func() ports.Stats { return ports.Stats{Nodes: nodes, Duration: time.Since(start)} }
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, st(), err
		}
		return nil, st(), ErrNoSolution
	}
	return work, st(), nil
}
