package hint

import (
	"context"
	"fmt"

	"tabula.dev/sudoku/internal/domain"
	"tabula.dev/sudoku/internal/rules"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if !b.Values[r][c].IsEmpty() {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits at row %d, column %d", v, r+1, c+1),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (domain.Cell, bool) {
	var last domain.Cell
	count := 0
	for v := domain.Cell(1); v <= domain.Size; v++ {
		if rules.CanPlace(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
