package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enum-bridge/internal/gen"
	"enum-bridge/internal/mapping"
)

func newGenCommand(a *app) *cobra.Command {
	var (
		file     string
		patterns []string
		config   = gen.DefaultGeneratorConfig()
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go converters from a declaration file",
		Long: `Gen checks the declaration file and writes one Go file declaring every
converter as a package-level variable built with bidi.MustBuild, plus a
Register function for a bidi.Registry. Nothing is written when check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph(patterns)
			if err != nil {
				return fmt.Errorf("gen failed: %w", err)
			}

			mf, err := mapping.LoadFile(file)
			if err != nil {
				return fmt.Errorf("gen failed: %w", err)
			}

			compiled, res := mapping.Compile(mf, graph)
			if !res.IsValid() {
				_ = res.WriteText(cmd.ErrOrStderr())
				return fmt.Errorf("%s: %d error(s), nothing generated", file, len(res.Errors))
			}

			generated, err := gen.NewGenerator(config).
				WithLogger(a.logger).
				Generate(gen.Input{Source: file, File: mf, Compiled: compiled, Graph: graph})
			if err != nil {
				return fmt.Errorf("gen failed: %w", err)
			}

			if err := gen.WriteFiles([]gen.GeneratedFile{*generated}, config.OutputDir); err != nil {
				return fmt.Errorf("gen failed: %w", err)
			}

			a.logger.Debug("wrote bridge", zap.String("dir", config.OutputDir), zap.String("file", generated.Filename))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", generated.Filename)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "mapping", "m", "", "Declaration file")
	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", nil, "Go packages declaring the enumerations")
	cmd.Flags().StringVarP(&config.OutputDir, "output", "o", config.OutputDir, "Output directory")
	cmd.Flags().StringVar(&config.PackageName, "package", config.PackageName, "Package name when the file sets none")
	cmd.Flags().StringVar(&config.PackagePath, "package-path", "", "Import path of the output package")
	cmd.Flags().BoolVar(&config.GenerateComments, "comments", config.GenerateComments, "Generate doc comments")
	_ = cmd.MarkFlagRequired("mapping")

	return cmd
}
