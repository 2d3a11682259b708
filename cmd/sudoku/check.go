package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabula.dev/sudoku/internal/checker"
	"tabula.dev/sudoku/internal/rules"
)

var (
	checkPuzzle string
	checkFile   string
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [board]",
		Short: "Check a board against the Sudoku constraints",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVarP(&checkPuzzle, "puzzle", "p", "", "81-character board string")
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "file containing a board string")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := boardFromFlags(args, checkPuzzle, checkFile, false)
	if err != nil {
		return err
	}
	ok, conflicts, err := checker.New().Check(cmd.Context(), b)
	if err != nil {
		return err
	}
	switch {
	case ok && rules.Complete(b):
		fmt.Println("board is complete and valid")
	case ok:
		fmt.Println("board is valid but incomplete")
	default:
		fmt.Println("board is invalid, conflicting cells (1-based):")
		for _, cc := range conflicts {
			fmt.Printf("  row %d, col %d\n", cc.Row+1, cc.Col+1)
		}
	}
	return nil
}
