package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enum-bridge/internal/analyze"
	"enum-bridge/internal/diagnostic"
	"enum-bridge/internal/mapping"
)

// Output formats of the check command.
const (
	formatText = "text"
	formatJSON = "json"
)

// fileResult is the outcome of checking one declaration file.
type fileResult struct {
	Path        string                  `json:"path"`
	Diagnostics *diagnostic.Diagnostics `json:"diagnostics"`
}

func newCheckCommand(a *app) *cobra.Command {
	var (
		files    []string
		patterns []string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check declaration files",
		Long: `Check proves that every converter of the declaration files covers each member
of both domains exactly once. Every problem is reported, not just the first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
			}

			graph, err := a.loadGraph(patterns)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			results, err := a.checkFiles(cmd.Context(), files, graph)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if err := writeResults(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}

			errCount := 0
			for _, r := range results {
				errCount += len(r.Diagnostics.Errors)
			}

			if errCount > 0 {
				return fmt.Errorf("check found %d error(s)", errCount)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "mapping", "m", nil, "Declaration files to check")
	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", nil, "Go packages declaring the enumerations")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	_ = cmd.MarkFlagRequired("mapping")

	return cmd
}

// checkFiles loads and validates the files concurrently. Results keep the
// order of files.
func (a *app) checkFiles(ctx context.Context, files []string, graph *analyze.EnumGraph) ([]fileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			mf, err := mapping.LoadFile(path)
			if err != nil {
				return err
			}

			res := mapping.Validate(mf, graph)

			a.logger.Debug("checked declaration file",
				zap.String("path", path),
				zap.Int("errors", len(res.Errors)),
				zap.Int("warnings", len(res.Warnings)))

			results[i] = fileResult{Path: path, Diagnostics: res}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func writeResults(w io.Writer, results []fileResult, format string) error {
	if format == formatJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}

		_, err = w.Write(append(data, '\n'))

		return err
	}

	for _, r := range results {
		if r.Diagnostics.IsValid() && len(r.Diagnostics.Warnings) == 0 {
			_, _ = fmt.Fprintf(w, "%s: ok\n", r.Path)
			continue
		}

		_, _ = fmt.Fprintf(w, "%s:\n", r.Path)

		if err := r.Diagnostics.WriteText(w); err != nil {
			return err
		}
	}

	return nil
}
