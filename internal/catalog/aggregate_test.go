package catalog

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []ComponentRecord {
	return []ComponentRecord{
		{ID: "login-01", Category: CategoryLogin, Name: "Login 01", Kind: KindFile},
		{ID: "login-02", Category: CategoryLogin, Name: "Login 02", Kind: KindFile},
		{ID: "stats-01", Category: CategoryStats, Name: "Stats 01", Kind: KindFile},
		{ID: "table-01", Category: CategoryTables, Name: "Table 01", Kind: KindDirectory},
		{ID: "ai-01", Category: CategoryAI, Name: "AI 01", Kind: KindFile},
		{ID: "ai-02", Category: CategoryAI, Name: "AI 02", Kind: KindFile},
		{ID: "ai-03", Category: CategoryAI, Name: "AI 03", Kind: KindFile},
	}
}

func TestCountByCategory(t *testing.T) {
	counts := CountByCategory(sampleRecords())

	assert.Equal(t, 2, counts[CategoryLogin])
	assert.Equal(t, 1, counts[CategoryStats])
	assert.Equal(t, 3, counts[CategoryAI])
	assert.Equal(t, 0, counts[CategoryDialogs])
	assert.Len(t, counts, 4)
}

func TestAggregateTotalsMatchRecordCount(t *testing.T) {
	records := sampleRecords()
	categories := Aggregate(records, DefaultCategories())

	assert.Equal(t, len(records), Total(categories))
	assert.Len(t, categories, len(DefaultCategories()))
}

func TestAggregateZeroCountForEmptyCategory(t *testing.T) {
	categories := Aggregate(sampleRecords(), DefaultCategories())

	byID := make(map[string]CategoryRecord)
	for _, c := range categories {
		byID[c.ID] = c
	}

	for _, id := range []string{CategoryDialogs, CategoryFileUpload, CategoryFormLayout, CategoryGridList, CategorySidebar} {
		c, ok := byID[id]
		require.True(t, ok, id)
		assert.Equal(t, 0, c.Count, id)
	}
	assert.Equal(t, 3, byID[CategoryAI].Count)
}

func TestAggregateInvariantUnderPermutation(t *testing.T) {
	records := sampleRecords()
	want := Aggregate(records, DefaultCategories())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]ComponentRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		cats := DefaultCategories()
		rng.Shuffle(len(cats), func(a, b int) { cats[a], cats[b] = cats[b], cats[a] })

		assert.Equal(t, want, Aggregate(shuffled, cats))
	}
}

func TestAggregateSortsByDisplayName(t *testing.T) {
	categories := []CategoryRecord{
		{ID: CategoryFormLayout, Name: "Form Layout"},
		{ID: CategoryAI, Name: "AI Components"},
		{ID: CategoryTables, Name: "Tables"},
	}

	got := Aggregate(nil, categories)

	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"AI Components", "Form Layout", "Tables"}, names)
}

func TestAggregateCollatesCaseInsensitively(t *testing.T) {
	categories := []CategoryRecord{
		{ID: "b", Name: "beta"},
		{ID: "a", Name: "Alpha"},
		{ID: "c", Name: "Gamma"},
	}

	got := Aggregate(nil, categories)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, "beta", got[1].Name)
	assert.Equal(t, "Gamma", got[2].Name)
}

func TestAggregateDoesNotMutateInputs(t *testing.T) {
	records := sampleRecords()
	categories := DefaultCategories()
	recordsBefore := append([]ComponentRecord(nil), records...)
	categoriesBefore := append([]CategoryRecord(nil), categories...)

	_ = Aggregate(records, categories)

	assert.Equal(t, recordsBefore, records)
	assert.Equal(t, categoriesBefore, categories)
}

func TestAggregateIgnoresDanglingCategory(t *testing.T) {
	records := append(sampleRecords(), ComponentRecord{ID: "ghost", Category: "nowhere", Kind: KindFile})
	categories := Aggregate(records, DefaultCategories())

	assert.Equal(t, len(records)-1, Total(categories))
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(sampleRecords(), DefaultCategories())
	require.Len(t, groups, len(DefaultCategories()))

	assert.Equal(t, "AI Components", groups[0].Category.Name)
	require.Len(t, groups[0].Components, 3)
	assert.Equal(t, "ai-01", groups[0].Components[0].ID)
	assert.Equal(t, "ai-03", groups[0].Components[2].ID)

	for _, g := range groups {
		assert.Equal(t, g.Category.Count, len(g.Components), g.Category.ID)
	}
}

func TestValidate(t *testing.T) {
	records := []ComponentRecord{
		{ID: "login-01", Category: CategoryLogin, Kind: KindFile},
		{ID: "login-01", Category: CategoryLogin, Kind: KindFile},
		{ID: "orphan", Category: "missing", Kind: KindFile},
		{ID: "weird", Category: CategoryStats, Kind: "zip"},
		{Category: CategoryStats, Kind: KindFile},
	}

	issues := Validate(records, DefaultCategories())
	require.Len(t, issues, 4)
	assert.Equal(t, "login-01: duplicate id", issues[0].String())
	assert.Contains(t, issues[1].String(), `unknown category "missing"`)
	assert.Contains(t, issues[2].String(), `unknown type "zip"`)
	assert.Equal(t, "record 4 has no id", issues[3].String())

	assert.Empty(t, Validate(sampleRecords(), DefaultCategories()))
}

func TestCategorySet(t *testing.T) {
	ids := CategoryIDs()
	assert.Len(t, ids, 9)
	assert.True(t, IsValidCategory(CategoryStats))
	assert.True(t, IsValidCategory(DefaultCategory))
	assert.False(t, IsValidCategory("not-a-real-category"))

	for _, id := range ids {
		assert.NotEmpty(t, Description(id), id)
		assert.NotEqual(t, "", Icon(id), id)
	}
	assert.Equal(t, "layout-grid", Icon("unknown"))
}

func TestSourcePath(t *testing.T) {
	file := ComponentRecord{ID: "login-01", Category: CategoryLogin, Kind: KindFile}
	dir := ComponentRecord{ID: "table-01", Category: CategoryTables, Kind: KindDirectory}
	explicit := ComponentRecord{ID: "x", Category: CategoryStats, Kind: KindFile, Source: "elsewhere/x.tsx"}

	assert.Equal(t, filepath.Join("content", "components", "login", "login-01.tsx"), file.SourcePath(filepath.Join("content", "components")))
	assert.Equal(t, filepath.Join("content", "components", "tables", "table-01"), dir.SourcePath(filepath.Join("content", "components")))
	assert.Equal(t, "elsewhere/x.tsx", explicit.SourcePath("content/components"))
}
