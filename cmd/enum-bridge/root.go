package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enum-bridge/internal/analyze"
)

// app holds state shared by all commands.
type app struct {
	verbose bool
	dir     string
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "enum-bridge",
		Short: "Check and generate bidirectional enum converters",
		Long: `enum-bridge proves that a converter between two enumerations covers every
member of both sides exactly once, and generates the converter as Go code.

Rules are declared in YAML or JSON files:

  StatusPaid == StateReserved    equivalence
  StatusRefunded => StateVoided  internal to external only
  StatusPaid <= StatePicked      external to internal only
  StatusDraft => _               internal orphan
  _ <= StateLost                 external orphan`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", "Directory Go packages are resolved from")

	cmd.AddCommand(
		newAnalyzeCommand(a),
		newCheckCommand(a),
		newSuggestCommand(a),
		newGenCommand(a),
	)

	return cmd
}

// loadGraph analyzes the given package patterns. No patterns yields an
// empty graph, enough for declarations with inline domains only.
func (a *app) loadGraph(patterns []string) (*analyze.EnumGraph, error) {
	if len(patterns) == 0 {
		return analyze.NewEnumGraph(), nil
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = a.dir

	a.logger.Debug("loading packages", zap.Strings("patterns", patterns), zap.String("dir", a.dir))

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("packages loaded", zap.Int("enums", len(graph.Enums)))

	return graph, nil
}
