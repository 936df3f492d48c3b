package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
)

const testCatalog = `blocks:
  - id: login-01
    category: login
    name: Login 01
    type: file
  - id: login-02
    category: login
    name: Login 02
    type: file
  - id: stats-01
    category: stats
    name: Stats 01
    type: directory
`

func init() {
	color.NoColor = true
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewCommand(t *testing.T) {
	content := t.TempDir()

	stdout, _, err := runCLI(t, "new", "pricing-card", "--category", "stats", "--content", content)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(content, "components", "stats", "pricing-card.tsx"))
	assert.FileExists(t, filepath.Join(content, "markdown", "stats", "pricing-card.mdx"))
	assert.NoFileExists(t, filepath.Join(content, catalog.DefaultFile))

	assert.Contains(t, stdout, "Creating new RayUI block: pricing-card")
	assert.Contains(t, stdout, "Successfully created pricing-card!")
	assert.Contains(t, stdout, "Next steps:")
	assert.Contains(t, stdout, "- id: pricing-card")
	assert.Contains(t, stdout, "name: Pricing Card")
}

func TestNewCommandRegister(t *testing.T) {
	content := t.TempDir()
	catalogPath := filepath.Join(content, catalog.DefaultFile)
	writeFile(t, catalogPath, testCatalog)

	stdout, _, err := runCLI(t, "new", "login-03", "--register", "--content", content)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Auto-registered in "+catalog.DefaultFile)
	assert.NotContains(t, stdout, "Next steps:")

	records, err := catalog.Load(catalogPath)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "login-01", records[0].ID)
	assert.Equal(t, catalog.ComponentRecord{
		ID:       "login-03",
		Category: "login",
		Name:     "Login 03",
		Kind:     catalog.KindFile,
	}, records[3])
}

func TestNewCommandFramework(t *testing.T) {
	content := t.TempDir()

	_, _, err := runCLI(t, "new", "upload-zone", "--category", "file-upload", "--framework", "vue", "--content", content)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(content, "components", "file-upload", "upload-zone.vue"))
	assert.NoFileExists(t, filepath.Join(content, "markdown", "file-upload", "upload-zone.mdx"))
}

func TestNewCommandInvalidCategoryWritesNothing(t *testing.T) {
	content := t.TempDir()

	_, _, err := runCLI(t, "new", "pricing-card", "--category", "nope", "--content", content)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	entries, err := os.ReadDir(content)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewCommandRequiresName(t *testing.T) {
	_, _, err := runCLI(t, "new", "--content", t.TempDir())
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	content := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(content, catalog.DefaultFile), testCatalog)
	writeFile(t, filepath.Join(content, "components", "login", "login-01.tsx"),
		"import { Button } from \"@/components/ui/button\";\n\nexport default function Login01() {\n  return <div className=\"p-4\">Hi</div>;\n}\n")

	stdout, _, err := runCLI(t, "export", "--content", content, "--out", out)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Starting multi-framework export")
	assert.Contains(t, stdout, "Exported 1 components")
	assert.Contains(t, stdout, "Failed to export 1 components")
	assert.Contains(t, stdout, "Vue: "+filepath.Join(out, "vue"))
	assert.Contains(t, stdout, "HTML: "+filepath.Join(out, "html"))
	assert.Contains(t, stdout, "✓ Exported vue: login-01.vue")
	assert.Contains(t, stdout, "✓ Exported html: login-01.html")

	vue, err := os.ReadFile(filepath.Join(out, "vue", "login-01.vue"))
	require.NoError(t, err)
	assert.Contains(t, string(vue), `class="p-4"`)

	html, err := os.ReadFile(filepath.Join(out, "html", "login-01.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "import")
	assert.Contains(t, string(html), "login-01 - RayUI")
}

func TestExportCommandSingleFramework(t *testing.T) {
	content := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(content, catalog.DefaultFile), testCatalog)
	writeFile(t, filepath.Join(content, "components", "login", "login-01.tsx"),
		"export default function Login01() {\n  return <div className=\"p-4\" />;\n}\n")

	_, _, err := runCLI(t, "export", "--framework", "html", "--content", content, "--out", out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "html", "login-01.html"))
	assert.NoDirExists(t, filepath.Join(out, "vue"))
}

func TestExportCommandQuiet(t *testing.T) {
	content := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(content, catalog.DefaultFile), testCatalog)
	writeFile(t, filepath.Join(content, "components", "login", "login-01.tsx"),
		"export default function Login01() {\n  return <div />;\n}\n")

	stdout, _, err := runCLI(t, "export", "--verbose=false", "--content", content, "--out", out)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "✓ Exported")
	assert.Contains(t, stdout, "Exported 1 components")
}

func TestExportCommandInvalidFramework(t *testing.T) {
	_, _, err := runCLI(t, "export", "--framework", "svelte", "--content", t.TempDir(), "--out", t.TempDir())
	require.Error(t, err)

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), "Valid options:")
	assert.Contains(t, buf.String(), "• all")
}

func TestExportCommandParentOutputDir(t *testing.T) {
	base := t.TempDir()
	content := filepath.Join(base, "site (old)", "content")
	writeFile(t, filepath.Join(content, catalog.DefaultFile), testCatalog)
	writeFile(t, filepath.Join(content, "components", "login", "login-01.tsx"),
		"export default function Login01() {\n  return <div />;\n}\n")

	out := content + string(filepath.Separator) + ".." + string(filepath.Separator) + "drafts"
	_, _, err := runCLI(t, "export", "--content", content, "--out", out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(base, "site (old)", "drafts", "html", "login-01.html"))
}

func TestNewCommandDigitLeadingPart(t *testing.T) {
	content := t.TempDir()
	catalogPath := filepath.Join(content, catalog.DefaultFile)

	_, _, err := runCLI(t, "new", "login-2fa", "--register", "--content", content)
	require.NoError(t, err)

	component, err := os.ReadFile(filepath.Join(content, "components", "login", "login-2fa.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(component), "export default function Login2fa(")

	doc, err := os.ReadFile(filepath.Join(content, "markdown", "login", "login-2fa.mdx"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), `title: "Login 2fa"`)

	records, err := catalog.Load(catalogPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Login 2fa", records[0].Name)
}

func TestExportCommandMissingCatalog(t *testing.T) {
	_, _, err := runCLI(t, "export", "--content", t.TempDir(), "--out", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsRead(err))
}

func TestCategoriesCommandJSON(t *testing.T) {
	content := t.TempDir()
	writeFile(t, filepath.Join(content, catalog.DefaultFile), testCatalog)

	stdout, _, err := runCLI(t, "categories", "--format", "json", "--content", content)
	require.NoError(t, err)

	var items []categoryJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, len(catalog.DefaultCategories()))

	counts := map[string]int{}
	total := 0
	for _, item := range items {
		counts[item.ID] = item.Count
		total += item.Count
	}
	assert.Equal(t, 2, counts["login"])
	assert.Equal(t, 1, counts["stats"])
	assert.Equal(t, 0, counts["tables"])
	assert.Equal(t, 3, total)
}

func TestCategoriesCommandTable(t *testing.T) {
	content := t.TempDir()

	stdout, _, err := runCLI(t, "categories", "--content", content)
	require.NoError(t, err)

	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "file-upload")
	assert.Contains(t, stdout, "Total")
}

func TestCategoriesCommandValidate(t *testing.T) {
	content := t.TempDir()
	writeFile(t, filepath.Join(content, catalog.DefaultFile), testCatalog+`  - id: orphan-01
    category: charts
    name: Orphan
    type: file
`)

	_, stderr, err := runCLI(t, "categories", "--validate", "--content", content)
	require.Error(t, err)
	assert.Contains(t, stderr, `orphan-01: unknown category "charts"`)
}

func TestCategoriesCommandInvalidFormat(t *testing.T) {
	_, _, err := runCLI(t, "categories", "--format", "xml", "--content", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "rayui ")

	stdout, _, err = runCLI(t, "version", "--format", "json")
	require.NoError(t, err)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["go_version"])
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.NewValidationError(errors.ErrCodeInvalidCategory, `invalid category "nope"`).
		WithSuggestions("ai", "dialogs"))

	out := buf.String()
	assert.Contains(t, out, `❌ [ERR_INVALID_CATEGORY] invalid category "nope"`)
	assert.Contains(t, out, "Valid options:")
	assert.Contains(t, out, "• dialogs")
}

func TestFlagNameNormalization(t *testing.T) {
	out := t.TempDir()
	content := t.TempDir()
	writeFile(t, filepath.Join(content, catalog.DefaultFile), "blocks: []\n")

	_, _, err := runCLI(t, "export", "--log_level", "error", "--content", content, "--out", out)
	require.NoError(t, err)
}
