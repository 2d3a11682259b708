package main

import (
	"os"

	"github.com/spf13/cobra"

	"tabula.dev/sudoku/internal/checker"
	"tabula.dev/sudoku/internal/game"
	"tabula.dev/sudoku/internal/hint"
	"tabula.dev/sudoku/internal/solver"
)

var (
	playPuzzle string
	playFile   string
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play [board]",
		Short: "Play an interactive game of Sudoku",
		Long: `Play an interactive game of Sudoku in the terminal.

Moves are entered as "row col value" with 1-based coordinates. When the
board is full it is checked; an incorrect solution is followed by the
solved board.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlay,
	}
	playCmd.Flags().StringVarP(&playPuzzle, "puzzle", "p", "", "81-character board string")
	playCmd.Flags().StringVarP(&playFile, "file", "f", "", "file containing a board string")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	b, err := boardFromFlags(args, playPuzzle, playFile, true)
	if err != nil {
		return err
	}
	loop := &game.Loop{
		Session: game.NewSession(b),
		Solver:  solver.NewBacktracking(),
		Checker: checker.New(),
		Hinter:  hint.NewSingles(),
	}
	if err := loop.Run(cmd.Context(), os.Stdin, os.Stdout); err != nil && !game.IsQuit(err) {
		return err
	}
	return nil
}
