//go:build property

package catalog

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genRecords builds record lists drawing categories from the fixed set.
func genRecords() gopter.Gen {
	ids := CategoryIDs()
	return gen.SliceOf(gen.IntRange(0, len(ids)-1)).Map(func(picks []int) []ComponentRecord {
		records := make([]ComponentRecord, len(picks))
		for i, p := range picks {
			records[i] = ComponentRecord{
				ID:       ids[p] + "-" + string(rune('a'+i%26)),
				Category: ids[p],
				Kind:     KindFile,
			}
		}
		return records
	})
}

func TestAggregateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: category counts sum to the number of records
	properties.Property("total equals record count", prop.ForAll(
		func(records []ComponentRecord) bool {
			return Total(Aggregate(records, DefaultCategories())) == len(records)
		},
		genRecords(),
	))

	// Property: every category is present, and absent categories count zero
	properties.Property("all categories present with non-negative counts", prop.ForAll(
		func(records []ComponentRecord) bool {
			counts := CountByCategory(records)
			out := Aggregate(records, DefaultCategories())
			if len(out) != len(DefaultCategories()) {
				return false
			}
			for _, c := range out {
				if c.Count != counts[c.ID] {
					return false
				}
			}
			return true
		},
		genRecords(),
	))

	// Property: output does not depend on record order
	properties.Property("invariant under reversal", prop.ForAll(
		func(records []ComponentRecord) bool {
			reversed := make([]ComponentRecord, len(records))
			for i, r := range records {
				reversed[len(records)-1-i] = r
			}
			a := Aggregate(records, DefaultCategories())
			b := Aggregate(reversed, DefaultCategories())
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		genRecords(),
	))

	properties.TestingRun(t)
}
