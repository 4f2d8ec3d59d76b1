package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"enum-bridge/internal/analyze"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "analyze <patterns...>",
		Short: "List the enumerations declared in Go packages",
		Long: `Analyze loads Go packages and lists every exported named type with a basic
underlying type and the constants declared of it. Constants repeating the value
of an earlier one are listed as aliases.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph(args)
			if err != nil {
				return fmt.Errorf("analyze failed: %w", err)
			}

			out := cmd.OutOrStdout()

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				for _, id := range graph.SortedIDs() {
					e := *graph.GetEnum(id)
					e.GoType = nil // the go/types graph is too large to dump
					cfg.Fdump(out, e)
				}

				return nil
			}

			for _, id := range graph.SortedIDs() {
				_, _ = fmt.Fprintln(out, describeEnum(graph.GetEnum(id)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the analyzed enumerations in full")

	return cmd
}

func describeEnum(e *analyze.EnumInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s)\n", e.ID.Short(), e.Basic)

	for _, m := range e.Members {
		fmt.Fprintf(&sb, "  %s = %s", m.Name, m.Value)

		if m.IsAlias() {
			fmt.Fprintf(&sb, " (alias of %s)", m.AliasOf)
		}

		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
