package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enum-bridge/internal/mapping"
	"enum-bridge/internal/plan"
)

func newSuggestCommand(a *app) *cobra.Command {
	var (
		internal string
		external string
		patterns []string
		pkg      string
		output   string
		config   = plan.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Draft a declaration between two enumerations",
		Long: `Suggest pairs the members of two enumerations by name and string value.
Only pairs that pick each other with high confidence become equivalences; every
other member is declared an orphan, so the draft always passes check. Review
the orphans before relying on the draft.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph(patterns)
			if err != nil {
				return fmt.Errorf("suggest failed: %w", err)
			}

			in := graph.Resolve(internal)
			if in == nil {
				return fmt.Errorf("internal enumeration %q not found", internal)
			}

			ext := graph.Resolve(external)
			if ext == nil {
				return fmt.Errorf("external enumeration %q not found", external)
			}

			proposal := plan.Suggest(in, ext, config)

			a.logger.Debug("proposal ready",
				zap.Int("pairs", len(proposal.Pairings)),
				zap.Int("internal_orphans", len(proposal.UnmatchedInternal)),
				zap.Int("external_orphans", len(proposal.UnmatchedExternal)))

			if err := proposal.Diagnostics.WriteText(cmd.ErrOrStderr()); err != nil {
				return err
			}

			file := proposal.File(pkg)

			if output != "" {
				return mapping.WriteFile(file, output)
			}

			data, err := mapping.Marshal(file)
			if err != nil {
				return fmt.Errorf("marshal proposal: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&internal, "internal", "", "Internal enumeration, e.g. store.OrderStatus")
	cmd.Flags().StringVar(&external, "external", "", "External enumeration, e.g. warehouse.State")
	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", nil, "Go packages declaring the enumerations")
	cmd.Flags().StringVar(&config.Name, "name", "", "Converter name (default: both type names joined)")
	cmd.Flags().StringVar(&pkg, "package", "", "Package name of the generated code")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the draft to a file (.yaml or .json)")
	cmd.Flags().Float64Var(&config.MinConfidence, "min-confidence", config.MinConfidence, "Minimum score to accept a pair")
	_ = cmd.MarkFlagRequired("internal")
	_ = cmd.MarkFlagRequired("external")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if len(patterns) == 0 {
			return errors.New("at least one package pattern (-p) is required")
		}

		return nil
	}

	return cmd
}
