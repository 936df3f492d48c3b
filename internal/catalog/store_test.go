package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayyanquantum/rayui/internal/errors"
)

const sampleCatalog = `# RayUI block catalog
blocks:
  - id: login-01
    category: login
    name: Login 01
    type: file
  # tables live in directories
  - id: table-01
    category: tables
    name: Table 01
    type: directory
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	records, err := Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, ComponentRecord{ID: "login-01", Category: "login", Name: "Login 01", Kind: KindFile}, records[0])
	assert.Equal(t, KindDirectory, records[1].Kind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.IsRead(err))
}

func TestLoadInvalidDocument(t *testing.T) {
	_, err := Load(writeCatalog(t, "blocks: [unterminated"))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestAppendPreservesExistingRecords(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	before, err := Load(path)
	require.NoError(t, err)

	rec := ComponentRecord{ID: "pricing-card", Category: CategoryStats, Name: "Pricing Card", Kind: KindFile}
	require.NoError(t, Append(path, rec))

	after, err := Load(path)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, rec, after[len(after)-1])

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# RayUI block catalog")
	assert.Contains(t, string(raw), "# tables live in directories")
}

func TestAppendCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	rec := ComponentRecord{ID: "ai-01", Category: CategoryAI, Name: "Ai 01", Kind: KindFile}

	require.NoError(t, Append(path, rec))

	records, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []ComponentRecord{rec}, records)
}

func TestAppendToEmptyAndNullLists(t *testing.T) {
	for name, content := range map[string]string{
		"flow":    "blocks: []\n",
		"null":    "blocks:\n",
		"absent":  "title: gallery\n",
		"comment": "# nothing yet\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeCatalog(t, content)
			rec := ComponentRecord{ID: "x", Category: CategoryStats, Name: "X", Kind: KindFile}
			require.NoError(t, Append(path, rec))

			records, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, []ComponentRecord{rec}, records)
		})
	}
}

func TestAppendRejectsNonListBlocks(t *testing.T) {
	path := writeCatalog(t, "blocks: nope\n")
	err := Append(path, ComponentRecord{ID: "x", Category: CategoryStats, Kind: KindFile})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	raw, _ := os.ReadFile(path)
	assert.Equal(t, "blocks: nope\n", string(raw))
}

func TestFind(t *testing.T) {
	records, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	rec, ok := Find(records, "table-01")
	assert.True(t, ok)
	assert.Equal(t, "Table 01", rec.Name)

	_, ok = Find(records, "nope")
	assert.False(t, ok)
}
