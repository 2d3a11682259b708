package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Play, check, and solve 9x9 Sudoku puzzles",
	Long: `sudoku is a terminal Sudoku game with a built-in solver.

Boards are given as 81-character strings in row-major order, with '.'
or '0' for empty cells, e.g.
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
