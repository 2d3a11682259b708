// Package checker adapts the pure rules predicates to the Checker port,
// collecting the coordinates of every conflicting cell for display.
package checker

import (
	"context"

	"tabula.dev/sudoku/internal/domain"
	"tabula.dev/sudoku/internal/rules"
)

type GridChecker struct{}

func New() *GridChecker { return &GridChecker{} }

// Check re-tests every filled cell against its row, column, and box.
// Empty cells never conflict.
func (g *GridChecker) Check(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var conf []domain.CellCoord
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := b.Values[r][c]
			if v.IsEmpty() {
				continue
			}
			if !rules.CanPlace(b, r, c, v) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(conf) == 0, conf, nil
}
