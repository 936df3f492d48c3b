package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/logging"
)

// Options configures an export run.
type Options struct {
	// ComponentsDir is where record sources are resolved from.
	ComponentsDir string
	// OutputDir receives one subdirectory per target.
	OutputDir string
	Targets   []Target
	Verbose   bool
}

// Report summarises an export run.
type Report struct {
	Exported []string
	Failed   []errors.ItemError
	// Skipped counts directory records, which have no single source file.
	Skipped int
}

// Exporter drafts every single-file record in a catalog. Items are processed
// strictly in order; a failing item is recorded and the run continues.
type Exporter struct {
	opts   Options
	out    io.Writer
	logger logging.Logger
}

// NewExporter creates an exporter. Progress lines go to out.
func NewExporter(opts Options, out io.Writer, logger logging.Logger) *Exporter {
	if len(opts.Targets) == 0 {
		opts.Targets = AllTargets()
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Exporter{opts: opts, out: out, logger: logger.WithComponent("export")}
}

// TargetDir returns the output directory for target.
func (e *Exporter) TargetDir(target Target) string {
	return filepath.Join(e.opts.OutputDir, string(target))
}

// Export drafts each file record and returns the run's report.
func (e *Exporter) Export(ctx context.Context, records []catalog.ComponentRecord) *Report {
	report := &Report{}
	failures := errors.NewErrorCollector()

	for _, rec := range records {
		if rec.Kind != catalog.KindFile {
			report.Skipped++
			continue
		}

		if err := e.ExportRecord(rec); err != nil {
			failures.Add(rec.ID, err)
			fmt.Fprintf(e.out, "✗ Failed to export %s: %v\n", rec.ID, err)
			e.logger.Warn(ctx, err, "Export failed", "block", rec.ID)
			continue
		}
		report.Exported = append(report.Exported, rec.ID)
	}

	report.Failed = failures.Items()
	return report
}

// ExportRecord drafts a single record for every configured target.
func (e *Exporter) ExportRecord(rec catalog.ComponentRecord) error {
	path := rec.SourcePath(e.opts.ComponentsDir)
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapRead(err, path)
	}

	for _, target := range e.opts.Targets {
		draft, err := Translate(target, string(src), rec.ID)
		if err != nil {
			return errors.NewInternalError(errors.ErrCodeInternalError, "translation failed", err)
		}
		if err := e.write(draft); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) write(draft Draft) error {
	dir := e.TargetDir(draft.Target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapFileSystem(err, errors.ErrCodeCreateDir, "failed to create output directory", dir)
	}

	path := filepath.Join(dir, draft.FileName())
	if err := os.WriteFile(path, []byte(draft.Body), 0644); err != nil {
		return errors.WrapFileSystem(err, errors.ErrCodeWriteFile, "failed to write draft", path)
	}

	if e.opts.Verbose {
		fmt.Fprintf(e.out, "✓ Exported %s: %s\n", draft.Target, draft.FileName())
	}
	return nil
}
