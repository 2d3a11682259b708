package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestFromStringRoundTrip(t *testing.T) {
	in := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	b, err := FromString(in)
	if err != nil {
		t.Fatal(err)
	}
	if b.Values[0][0] != 5 || b.Values[8][8] != 9 || !b.Values[0][2].IsEmpty() {
		t.Fatalf("decoded values wrong: %v", b.Values[0])
	}
	if got := b.String(); got != in {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, in)
	}
}

func TestFromStringZeroAsEmpty(t *testing.T) {
	b, err := FromString(strings.Repeat("0", 81))
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.Values[r][c].IsEmpty() {
				t.Fatalf("cell (%d,%d) not empty", r, c)
			}
		}
	}
}

func TestFromStringErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"too short", strings.Repeat(".", 80), ErrBadLength},
		{"too long", strings.Repeat(".", 82), ErrBadLength},
		{"bad character", strings.Repeat(".", 80) + "x", ErrBadCharacter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromString(tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMarkGivens(t *testing.T) {
	b := &Board{}
	b.Values[2][3] = 7
	b.MarkGivens()
	if !b.Fixed[2][3] {
		t.Fatal("filled cell not marked fixed")
	}
	if b.Fixed[0][0] {
		t.Fatal("empty cell marked fixed")
	}
}
