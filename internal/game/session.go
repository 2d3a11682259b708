// Package game implements the terminal game loop: move entry against a
// board of fixed givens, completion detection, and the final
// correct-or-show-solution verdict.
package game

import (
	"errors"
	"fmt"

	"tabula.dev/sudoku/internal/domain"
)

var (
	ErrOutOfRange = errors.New("row, column, and value must be between 1 and 9")
	ErrFixedCell  = errors.New("cell is a fixed given and cannot be changed")
)

// Move is a player action in 1-based coordinates, as typed at the prompt.
type Move struct {
	Row, Col int
	Value    domain.Cell
}

// Session tracks a single game in progress.
type Session struct {
	board  *domain.Board
	givens *domain.Board // untouched copy for solving on an incorrect finish
}

// NewSession starts a game on b. Filled cells of b become fixed givens.
func NewSession(b *domain.Board) *Session {
	work := b.Clone()
	work.MarkGivens()
	return &Session{board: work, givens: work.Clone()}
}

// Board returns the live board. Callers must not mutate it directly.
func (s *Session) Board() *domain.Board { return s.board }

// Givens returns the original puzzle as it was before any moves.
func (s *Session) Givens() *domain.Board { return s.givens }

// Apply places m on the board. Value 0 clears a previously entered cell.
// The coordinate and value ranges are checked here because moves come
// straight from user input.
func (s *Session) Apply(m Move) error {
	if m.Row < 1 || m.Row > domain.Size || m.Col < 1 || m.Col > domain.Size {
		return fmt.Errorf("%w: row %d, column %d", ErrOutOfRange, m.Row, m.Col)
	}
	if m.Value > domain.Size {
		return fmt.Errorf("%w: value %d", ErrOutOfRange, m.Value)
	}
	r, c := m.Row-1, m.Col-1
	if s.board.Fixed[r][c] {
		return fmt.Errorf("%w: row %d, column %d", ErrFixedCell, m.Row, m.Col)
	}
	s.board.Values[r][c] = m.Value
	return nil
}
