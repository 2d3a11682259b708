package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"tabula.dev/sudoku/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{ID: "p1", Name: "daily", CreatedAt: 42}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true

	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "p1" || got.Name != "daily" || got.CreatedAt != 42 {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if got.Board.Values[0][0] != 5 || !got.Board.Fixed[0][0] {
		t.Fatalf("board mismatch: %+v", got.Board)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for puzzle without ID")
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	for _, id := range []string{"a", "b"} {
		if err := s.Save(ctx, &domain.Puzzle{ID: id, CreatedAt: 1}); err != nil {
			t.Fatal(err)
		}
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 2 {
		t.Fatalf("got %d entries, want 2", len(metas))
	}
}

func TestListEmptyDirIsNotAnError(t *testing.T) {
	s := NewFS("does-not-exist")
	metas, err := s.List(context.Background())
	if err != nil || metas != nil {
		t.Fatalf("got %v, %v; want nil, nil", metas, err)
	}
}
