package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tabula.dev/sudoku/internal/domain"
	"tabula.dev/sudoku/internal/ports"
	"tabula.dev/sudoku/internal/rules"
)

// Loop runs the interactive game: it reads moves from in until the board
// is complete or input ends, then prints the verdict. An incorrect finish
// solves the original givens and shows the intended solution.
type Loop struct {
	Session *Session
	Solver  ports.Solver
	Checker ports.Checker
	Hinter  ports.Hinter
}

func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, Render(l.Session.Board()))
	fmt.Fprintln(out, `Enter moves as "row col value" (1-9, value 0 clears). Commands: hint, board, quit.`)

	sc := bufio.NewScanner(in)
	for !rules.Complete(l.Session.Board()) {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nBoard is incomplete, bye.")
			return nil
		}
		if err := l.handle(ctx, strings.TrimSpace(sc.Text()), out); err != nil {
			return err
		}
	}
	return l.finish(ctx, out)
}

func (l *Loop) handle(ctx context.Context, line string, out io.Writer) error {
	switch line {
	case "":
		return nil
	case "quit", "exit":
		return errQuit
	case "board":
		fmt.Fprint(out, Render(l.Session.Board()))
		return nil
	case "hint":
		h, ok, err := l.Hinter.Hint(ctx, l.Session.Board(), domain.StrategySingles)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "No hint available at the singles tier.")
			return nil
		}
		fmt.Fprintln(out, h.Message)
		return nil
	}
	m, err := parseMove(line)
	if err != nil {
		fmt.Fprintln(out, "Input not valid:", err)
		return nil
	}
	if err := l.Session.Apply(m); err != nil {
		fmt.Fprintln(out, "Input not valid:", err)
		return nil
	}
	fmt.Fprint(out, Render(l.Session.Board()))
	return nil
}

// errQuit unwinds Run without reporting a failure to the caller.
var errQuit = errors.New("quit")

func (l *Loop) finish(ctx context.Context, out io.Writer) error {
	ok, _, err := l.Checker.Check(ctx, l.Session.Board())
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(out, "Solution correct!")
		return nil
	}
	fmt.Fprintln(out, "Solution incorrect. The correct solution is:")
	solved, _, err := l.Solver.Solve(ctx, l.Session.Givens())
	if err != nil {
		return err
	}
	fmt.Fprint(out, Render(solved))
	return nil
}

// IsQuit reports whether err is the player quitting, as opposed to a
// real failure.
func IsQuit(err error) bool { return errors.Is(err, errQuit) }

func parseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Move{}, errors.New(`expected "row col value"`)
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, fmt.Errorf("%q is not a number", f)
		}
		nums[i] = n
	}
	if nums[2] < 0 || nums[2] > domain.Size {
		return Move{}, ErrOutOfRange
	}
	return Move{Row: nums[0], Col: nums[1], Value: domain.Cell(nums[2])}, nil
}
