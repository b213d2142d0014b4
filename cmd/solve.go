package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rybkr/knightstour/internal/board"
	"github.com/rybkr/knightstour/internal/render"
	"github.com/rybkr/knightstour/internal/solver"
)

var (
	solveSize    int
	solveSeed    int64
	solveStart   string
	solveTimeout time.Duration
	solvePretty  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a tour from one start cell",
		Long: `Search for a knight's tour from a single start cell.

The start is chosen uniformly at random from the interior unless --start
pins it. On success the numbered board is printed row by row; on failure
the literal line "no result" is printed and the exit status is nonzero.

Examples:
  knightstour solve
  knightstour solve --size 12 --seed 7
  knightstour solve --start 5,5 --pretty`,
		RunE: runSolve,
	}

	solveCmd.Flags().IntVarP(&solveSize, "size", "s", 0, "Board side length, margin included (default from config)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for start selection (0 = time-based)")
	solveCmd.Flags().StringVar(&solveStart, "start", "", "Fixed start cell as row,col (overrides randomness)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Search timeout (default from config)")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "Render the interior with styling instead of the plain grid")

	rootCmd.AddCommand(solveCmd)
}

// parseStart parses the --start flag, a "row,col" pair.
func parseStart(s string) (board.Pos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return board.Pos{}, fmt.Errorf("invalid start %q (use format like '5,5')", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return board.Pos{}, fmt.Errorf("invalid start row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return board.Pos{}, fmt.Errorf("invalid start col: %w", err)
	}
	return board.Pos{Row: row, Col: col}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	size := cfg.Board.Size
	if cmd.Flags().Changed("size") {
		size = solveSize
	}
	seed := cfg.Solver.Seed
	if cmd.Flags().Changed("seed") {
		seed = solveSeed
	}
	timeout, err := cfg.SolverTimeout()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		timeout = solveTimeout
	}
	pretty := cfg.Output.Pretty || solvePretty

	opts := &solver.Options{
		Seed:    seed,
		Timeout: timeout,
		Logger:  logger,
	}
	if solveStart != "" {
		start, err := parseStart(solveStart)
		if err != nil {
			return err
		}
		opts.Start = &start
	}

	b, err := board.New(size)
	if err != nil {
		return err
	}

	s := solver.New(b, opts)
	began := time.Now()
	solved, err := s.Solve()
	elapsed := time.Since(began)

	if err != nil {
		if errors.Is(err, solver.ErrNoTour) || errors.Is(err, solver.ErrTimeout) {
			logger.Info("no tour found",
				zap.Int("size", size),
				zap.Duration("elapsed", elapsed),
				zap.Int64("backtracks", s.Stats().Backtracks),
				zap.Error(err))
			fmt.Fprintln(cmd.OutOrStdout(), "no result")
			// The failure is an expected status, already reported above.
			cmd.SilenceErrors = true
		}
		return err
	}

	logger.Info("tour found",
		zap.Int("size", size),
		zap.Int("total", solved.Total()),
		zap.Duration("elapsed", elapsed),
		zap.Int64("expanded", s.Stats().Expanded),
		zap.Int64("backtracks", s.Stats().Backtracks),
		zap.Int64("pruned", s.Stats().Pruned))

	if pretty {
		fmt.Fprintln(cmd.OutOrStdout(), render.Pretty(solved))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), solved.Format())
	}
	return nil
}
