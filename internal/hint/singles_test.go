package hint

import (
	"context"
	"testing"

	"tabula.dev/sudoku/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	b, err := domain.FromString("534678912672195348198342567859761423426853791713924856961537284287419635345286.79")
	if err != nil {
		t.Fatal(err)
	}
	h, ok, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no hint for a board one cell short of solved")
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 8, Col: 6}) {
		t.Fatalf("hint cells = %v, want the single empty cell", h.Cells)
	}
	if h.Value != 1 {
		t.Fatalf("hint value = %d, want 1", h.Value)
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	// Every cell of an empty board has nine candidates.
	_, ok, err := NewSingles().Hint(context.Background(), &domain.Board{}, domain.StrategySingles)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unexpected hint on an empty board")
	}
}

func TestHintTierTooLow(t *testing.T) {
	b := &domain.Board{}
	_, ok, err := NewSingles().Hint(context.Background(), b, domain.StrategyTier(-1))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("hint returned below the singles tier")
	}
}
