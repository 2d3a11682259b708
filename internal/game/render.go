package game

import (
	"strings"

	"tabula.dev/sudoku/internal/domain"
)

// Render returns a human-readable board with box separators and 1-based
// row/column labels matching the prompt's coordinates.
func Render(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString("    1 2 3   4 5 6   7 8 9\n")
	line := "  +-------+-------+-------+\n"
	sb.WriteString(line)
	for r := 0; r < domain.Size; r++ {
		sb.WriteByte('1' + byte(r))
		sb.WriteString(" | ")
		for c := 0; c < domain.Size; c++ {
			v := b.Values[r][c]
			if v.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
			sb.WriteByte(' ')
			if (c+1)%domain.BoxSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteByte('\n')
		if (r+1)%domain.BoxSize == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
