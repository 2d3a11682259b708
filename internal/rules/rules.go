// Package rules implements the Sudoku constraint predicates: placement
// legality, whole-board validity, and completion. All functions are pure
// and never mutate the board.
package rules

import "tabula.dev/sudoku/internal/domain"

// CanPlace reports whether value v at (row, col) conflicts with no other
// cell in its row, column, or box. Each scan skips the target cell itself,
// so the check is also safe on a cell already holding v. Bounds are the
// caller's responsibility.
func CanPlace(b *domain.Board, row, col int, v domain.Cell) bool {
	for i := 0; i < domain.Size; i++ {
		if i != col && b.Values[row][i] == v {
			return false
		}
		if i != row && b.Values[i][col] == v {
			return false
		}
	}
	br, bc := (row/domain.BoxSize)*domain.BoxSize, (col/domain.BoxSize)*domain.BoxSize
	for r := br; r < br+domain.BoxSize; r++ {
		for c := bc; c < bc+domain.BoxSize; c++ {
			if (r != row || c != col) && b.Values[r][c] == v {
				return false
			}
		}
	}
	return true
}

// Valid reports whether every filled cell is legal in its row, column, and
// box. Empty cells are exempt, so a partially filled board with no
// conflicts is valid.
func Valid(b *domain.Board) bool {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := b.Values[r][c]
			if v.IsEmpty() {
				continue
			}
			if !CanPlace(b, r, c, v) {
				return false
			}
		}
	}
	return true
}

// Complete reports whether no cell is empty.
func Complete(b *domain.Board) bool {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Values[r][c].IsEmpty() {
				return false
			}
		}
	}
	return true
}
