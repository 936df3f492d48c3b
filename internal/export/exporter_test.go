package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
)

func writeSource(t *testing.T, componentsDir string, rec catalog.ComponentRecord) {
	t.Helper()
	path := rec.SourcePath(componentsDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(reactSource), 0644))
}

func TestExportIsolatesUnreadableItem(t *testing.T) {
	root := t.TempDir()
	componentsDir := filepath.Join(root, "components")
	outputDir := filepath.Join(root, "dist", "exports")

	records := []catalog.ComponentRecord{
		{ID: "login-01", Category: catalog.CategoryLogin, Kind: catalog.KindFile},
		{ID: "missing-01", Category: catalog.CategoryStats, Kind: catalog.KindFile},
		{ID: "ai-01", Category: catalog.CategoryAI, Kind: catalog.KindFile},
	}
	writeSource(t, componentsDir, records[0])
	writeSource(t, componentsDir, records[2])

	var out bytes.Buffer
	exporter := NewExporter(Options{ComponentsDir: componentsDir, OutputDir: outputDir, Verbose: true}, &out, nil)
	report := exporter.Export(context.Background(), records)

	assert.Equal(t, []string{"login-01", "ai-01"}, report.Exported)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "missing-01", report.Failed[0].Item)
	assert.True(t, errors.IsRead(report.Failed[0].Err))

	for _, id := range []string{"login-01", "ai-01"} {
		assert.FileExists(t, filepath.Join(outputDir, "vue", id+".vue"))
		assert.FileExists(t, filepath.Join(outputDir, "html", id+".html"))
	}
	assert.NoFileExists(t, filepath.Join(outputDir, "vue", "missing-01.vue"))
	assert.NoFileExists(t, filepath.Join(outputDir, "html", "missing-01.html"))

	vueFiles, err := os.ReadDir(filepath.Join(outputDir, "vue"))
	require.NoError(t, err)
	assert.Len(t, vueFiles, 2)

	assert.Contains(t, out.String(), "✓ Exported vue: login-01.vue")
	assert.Contains(t, out.String(), "✗ Failed to export missing-01")
}

func TestExportSkipsDirectoryRecords(t *testing.T) {
	root := t.TempDir()
	componentsDir := filepath.Join(root, "components")
	records := []catalog.ComponentRecord{
		{ID: "table-01", Category: catalog.CategoryTables, Kind: catalog.KindDirectory},
		{ID: "login-01", Category: catalog.CategoryLogin, Kind: catalog.KindFile},
	}
	writeSource(t, componentsDir, records[1])

	report := NewExporter(Options{ComponentsDir: componentsDir, OutputDir: filepath.Join(root, "out")}, nil, nil).
		Export(context.Background(), records)

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, []string{"login-01"}, report.Exported)
	assert.Empty(t, report.Failed)
}

func TestExportSingleTarget(t *testing.T) {
	root := t.TempDir()
	componentsDir := filepath.Join(root, "components")
	outputDir := filepath.Join(root, "out")
	rec := catalog.ComponentRecord{ID: "login-01", Category: catalog.CategoryLogin, Kind: catalog.KindFile}
	writeSource(t, componentsDir, rec)

	exporter := NewExporter(Options{ComponentsDir: componentsDir, OutputDir: outputDir, Targets: []Target{TargetHTML}}, nil, nil)
	require.NoError(t, exporter.ExportRecord(rec))

	assert.FileExists(t, filepath.Join(outputDir, "html", "login-01.html"))
	assert.NoDirExists(t, filepath.Join(outputDir, "vue"))
}

func TestExportWriteFailureIsFileSystemError(t *testing.T) {
	root := t.TempDir()
	componentsDir := filepath.Join(root, "components")
	rec := catalog.ComponentRecord{ID: "login-01", Category: catalog.CategoryLogin, Kind: catalog.KindFile}
	writeSource(t, componentsDir, rec)

	// A regular file where the output directory should be.
	outputDir := filepath.Join(root, "out")
	require.NoError(t, os.WriteFile(outputDir, []byte("x"), 0644))

	report := NewExporter(Options{ComponentsDir: componentsDir, OutputDir: outputDir}, nil, nil).
		Export(context.Background(), []catalog.ComponentRecord{rec})

	assert.Empty(t, report.Exported)
	require.Len(t, report.Failed, 1)
	assert.True(t, errors.IsFileSystem(report.Failed[0].Err))
}
