package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadLength    = errors.New("board string must be exactly 81 characters")
	ErrBadCharacter = errors.New("board string may only contain '.', '0'-'9'")
)

// FromString builds a Board from an 81-character row-major string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
func FromString(s string) (*Board, error) {
	if len(s) != Size*Size {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}
	b := &Board{}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
			// empty, already zero
		case ch >= '1' && ch <= '9':
			b.Values[i/Size][i%Size] = Cell(ch - '0')
		default:
			return nil, fmt.Errorf("%w: '%c' at position %d", ErrBadCharacter, ch, i)
		}
	}
	return b, nil
}

// String returns the board as an 81-character string, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.Values[r][c]
			if v.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
	}
	return sb.String()
}
