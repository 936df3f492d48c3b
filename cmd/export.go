package cmd

import (
	"fmt"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Draft Vue and HTML versions of every single-file block",
		Long: `Export translates each single-file React block in the catalog into rough
Vue and static HTML drafts with a handful of textual substitutions. The
drafts are starting points for a manual port, not working components.

A block whose source cannot be read or whose draft cannot be written is
reported and skipped; the remaining blocks are still exported.

Examples:
  rayui export
  rayui export --framework vue --out build/drafts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, verbose)
		},
	}

	flags := cmd.Flags()
	flags.String("framework", "all", "target framework (vue, html, all)")
	flags.String("out", "dist/exports", "output directory")
	flags.BoolVarP(&verbose, "verbose", "v", true, "print every written draft (--verbose=false for the summary only)")
	_ = root.viper.BindPFlag("export.framework", flags.Lookup("framework"))
	_ = root.viper.BindPFlag("export.output_dir", flags.Lookup("out"))

	return cmd
}

func runExport(cmd *cobra.Command, root *rootOptions, verbose bool) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	targets, err := export.ParseTargets(cfg.Export.Framework)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	headerColor.Fprintln(out, "🚀 Starting multi-framework export...")
	fmt.Fprintln(out)

	records, err := catalog.Load(cfg.Content.Catalog)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(export.Options{
		ComponentsDir: cfg.Content.ComponentsDir(),
		OutputDir:     cfg.Export.OutputDir,
		Targets:       targets,
		Verbose:       verbose,
	}, out, logger)
	report := exporter.Export(cmd.Context(), records)

	successColor.Fprintf(out, "\n✅ Exported %d components\n", len(report.Exported))
	if len(report.Failed) > 0 {
		warnColor.Fprintf(out, "⚠️  Failed to export %d components\n", len(report.Failed))
	}
	if report.Skipped > 0 {
		fmt.Fprintf(out, "   Skipped %d multi-file blocks\n", report.Skipped)
	}
	fmt.Fprintf(out, "📁 Output directory: %s\n", cfg.Export.OutputDir)

	fmt.Fprintln(out, "\nFrameworks:")
	for _, target := range targets {
		fmt.Fprintf(out, "  • %s: %s\n", targetLabel(target), exporter.TargetDir(target))
	}
	return nil
}

func targetLabel(t export.Target) string {
	switch t {
	case export.TargetVue:
		return "Vue"
	case export.TargetHTML:
		return "HTML"
	default:
		return string(t)
	}
}
