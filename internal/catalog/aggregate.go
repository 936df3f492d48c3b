package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CountByCategory counts records per category id in a single pass.
func CountByCategory(records []ComponentRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}

// Aggregate attaches derived counts to the category descriptors and returns
// them sorted by display name under English collation. Categories with no
// records get a count of 0; records whose category has no descriptor are
// ignored. Neither input is modified.
func Aggregate(records []ComponentRecord, categories []CategoryRecord) []CategoryRecord {
	counts := CountByCategory(records)

	out := make([]CategoryRecord, len(categories))
	for i, c := range categories {
		c.Count = counts[c.ID]
		out[i] = c
	}

	SortByName(out)
	return out
}

// SortByName sorts categories in place by display name using locale-aware
// collation, breaking ties on ID so the result is deterministic.
func SortByName(categories []CategoryRecord) {
	// A Collator keeps internal buffers and is not safe to share.
	col := collate.New(language.English)
	sort.SliceStable(categories, func(i, j int) bool {
		if c := col.CompareString(categories[i].Name, categories[j].Name); c != 0 {
			return c < 0
		}
		return categories[i].ID < categories[j].ID
	})
}

// Group is a category with its records in catalog order.
type Group struct {
	Category   CategoryRecord
	Components []ComponentRecord
}

// GroupByCategory returns one group per aggregated category, in the order
// Aggregate produces, each holding that category's records in catalog order.
func GroupByCategory(records []ComponentRecord, categories []CategoryRecord) []Group {
	byCategory := make(map[string][]ComponentRecord)
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	aggregated := Aggregate(records, categories)
	groups := make([]Group, len(aggregated))
	for i, c := range aggregated {
		groups[i] = Group{Category: c, Components: byCategory[c.ID]}
	}
	return groups
}

// Total sums the counts of categories.
func Total(categories []CategoryRecord) int {
	total := 0
	for _, c := range categories {
		total += c.Count
	}
	return total
}

// Issue is a data-integrity problem found by Validate.
type Issue struct {
	RecordID string
	Message  string
}

func (i Issue) String() string {
	if i.RecordID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.RecordID, i.Message)
}

// Validate reports records with empty or duplicate ids, unknown kinds and
// dangling category references. Aggregate tolerates all of these; Validate
// exists for tooling that wants to surface them.
func Validate(records []ComponentRecord, categories []CategoryRecord) []Issue {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	var issues []Issue
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if r.ID == "" {
			issues = append(issues, Issue{Message: fmt.Sprintf("record %d has no id", i)})
			continue
		}
		if seen[r.ID] {
			issues = append(issues, Issue{RecordID: r.ID, Message: "duplicate id"})
		}
		seen[r.ID] = true
		if !known[r.Category] {
			issues = append(issues, Issue{RecordID: r.ID, Message: fmt.Sprintf("unknown category %q", r.Category)})
		}
		if !r.Kind.Valid() {
			issues = append(issues, Issue{RecordID: r.ID, Message: fmt.Sprintf("unknown type %q", r.Kind)})
		}
	}
	return issues
}
