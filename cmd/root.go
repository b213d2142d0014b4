package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rybkr/knightstour/internal/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Loaded configuration, available to subcommands after PersistentPreRunE.
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "knightstour",
	Short: "Knight's tour solver with Warnsdorff ordering and orphan pruning",
	Long: `knightstour searches for a knight's tour over the interior of a square
board whose outer two-cell margin is blocked off.

The search is plain backtracking ordered by Warnsdorff's heuristic (fewest
onward moves first) with one-step-lookahead pruning: a placement that strands
another cell with no remaining moves is rejected outright. A single random
interior start is attempted per run; use 'sweep' to try every start.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
