// Package index builds the lookup structures from loaded list records:
// a flat lowercased item-name index backed by a category table, and a
// grouped structure preserving per-list item order.
//
// When the same item name appears in more than one list, the last list
// processed wins. The emitted flat index is a plain name→id mapping, so a
// single id per name is the only shape its consumers support; collisions
// collapse rather than merge, deliberately.
package index

import (
	"strings"

	"github.com/jonathan/list-bundler/internal/lists"
)

// CategoryDescriptor is the display metadata shared by every item in one
// list: the list title and the group it belongs to.
type CategoryDescriptor struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Index holds the output of one build pass. It is write-once: nothing
// mutates it after Build returns.
type Index struct {
	// CategoryTable has one entry per loaded list, in first-seen order.
	CategoryTable []CategoryDescriptor

	// Flat maps lowercased item names to CategoryTable positions.
	Flat map[string]int

	// Grouped maps group → list key → entry, preserving loader order.
	Grouped *Grouped
}

// Build consumes records in input order and produces the full index in a
// single pass. Records without items are dropped (the loader should have
// skipped them already).
func Build(records []lists.ListRecord) *Index {
	ix := &Index{
		Flat:    make(map[string]int),
		Grouped: NewGrouped(),
	}

	for _, rec := range records {
		if len(rec.Items) == 0 {
			continue
		}

		id := len(ix.CategoryTable)
		ix.CategoryTable = append(ix.CategoryTable, CategoryDescriptor{
			Title:    rec.Title,
			Category: rec.Group,
		})

		for _, item := range rec.Items {
			// Last write wins on cross-list collisions.
			ix.Flat[strings.ToLower(item)] = id
		}

		ix.Grouped.add(rec.Group, rec.Key, ListEntry{
			Title: rec.Title,
			List:  rec.Items,
		})
	}

	return ix
}

// Lookup resolves an item name, case-insensitively, to its category
// descriptor. The second return value is false when the name is unmapped.
func (ix *Index) Lookup(name string) (CategoryDescriptor, bool) {
	id, ok := ix.Flat[strings.ToLower(name)]
	if !ok {
		return CategoryDescriptor{}, false
	}
	return ix.CategoryTable[id], true
}
