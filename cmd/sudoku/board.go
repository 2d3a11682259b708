package main

import (
	"fmt"
	"os"
	"strings"

	"tabula.dev/sudoku/internal/domain"
)

// defaultGrid is the puzzle served when `play` starts without a board.
var defaultGrid = [9][9]domain.Cell{
	{1, 0, 0, 4, 8, 9, 0, 0, 6},
	{7, 3, 0, 0, 0, 0, 0, 4, 0},
	{0, 0, 0, 0, 0, 1, 2, 9, 5},
	{0, 0, 7, 1, 2, 0, 6, 0, 0},
	{5, 0, 0, 7, 0, 3, 0, 0, 8},
	{0, 0, 6, 0, 9, 5, 7, 0, 0},
	{9, 1, 4, 6, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 3, 7},
	{8, 0, 0, 5, 1, 2, 0, 0, 4},
}

func defaultBoard() *domain.Board {
	return &domain.Board{Values: defaultGrid}
}

// boardFromFlags resolves a board from, in priority order: a positional
// argument, --puzzle, --file, or the built-in default (play only).
func boardFromFlags(args []string, puzzle, file string, allowDefault bool) (*domain.Board, error) {
	s := puzzle
	if len(args) > 0 {
		s = args[0]
	}
	if s == "" && file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		// Files may format the board across lines.
		s = strings.Join(strings.Fields(string(data)), "")
	}
	if s == "" {
		if allowDefault {
			return defaultBoard(), nil
		}
		return nil, fmt.Errorf("no board given: pass an 81-character string or --file")
	}
	return domain.FromString(s)
}
