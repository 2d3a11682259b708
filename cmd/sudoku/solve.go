package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"tabula.dev/sudoku/internal/game"
	"tabula.dev/sudoku/internal/solver"
)

var (
	solvePuzzle  string
	solveFile    string
	solveTimeout time.Duration
	solveProfile bool
	solveCompact bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [board]",
		Short: "Solve a Sudoku board",
		Long: `Solve a Sudoku board by exhaustive backtracking and print the result.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku solve --file puzzle.txt --timeout 5s
  sudoku solve --file puzzle.txt --cpuprofile`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&solvePuzzle, "puzzle", "p", "", "81-character board string")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "file containing a board string")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "abort the search after this long")
	solveCmd.Flags().BoolVar(&solveProfile, "cpuprofile", false, "write a CPU profile for the solve")
	solveCmd.Flags().BoolVar(&solveCompact, "compact", false, "print the solution as an 81-character string")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := boardFromFlags(args, solvePuzzle, solveFile, false)
	if err != nil {
		return err
	}
	if solveProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	out, st, err := solver.NewBacktracking().Solve(ctx, b)
	if err != nil {
		return fmt.Errorf("solve failed after %d nodes in %v: %w", st.Nodes, st.Duration.Round(time.Millisecond), err)
	}
	if solveCompact {
		fmt.Println(out.String())
	} else {
		fmt.Print(game.Render(out))
	}
	fmt.Printf("solved in %v, %d nodes\n", st.Duration.Round(time.Microsecond), st.Nodes)
	return nil
}
