// Package catalog holds the static item reference data: every known item,
// keyed by id, loaded once at process start and never mutated. All other
// packages hold read-only pointers into it.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/errors"
)

// Catalog is an immutable, indexed view over a set of items.
type Catalog struct {
	items  []*items.Item
	byID   map[string]*items.Item
	byName map[string]*items.Item
}

// New builds a catalog from the given items, validating that ids and names
// are present and unique and that variant data matches each item's category.
func New(list []*items.Item) (*Catalog, error) {
	c := &Catalog{
		items:  make([]*items.Item, 0, len(list)),
		byID:   make(map[string]*items.Item, len(list)),
		byName: make(map[string]*items.Item, len(list)),
	}

	for _, it := range list {
		if it == nil {
			return nil, errors.InvalidArgument("catalog item cannot be nil")
		}
		if it.ID == "" || it.Name == "" {
			return nil, errors.InvalidArgumentf("catalog item %q/%q missing id or name", it.ID, it.Name)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, errors.AlreadyExistsf("duplicate item id %q", it.ID)
		}
		if _, dup := c.byName[it.Name]; dup {
			return nil, errors.AlreadyExistsf("duplicate item name %q", it.Name)
		}
		if (it.Weapon != nil) != (it.Category == items.CategoryWeapon) {
			return nil, errors.InvalidArgumentf("item %q: weapon data does not match category %q", it.ID, it.Category)
		}
		if (it.Trait != nil) != (it.Category == items.CategoryTrait) {
			return nil, errors.InvalidArgumentf("item %q: trait data does not match category %q", it.ID, it.Category)
		}

		c.items = append(c.items, it)
		c.byID[it.ID] = it
		c.byName[it.Name] = it
	}

	return c, nil
}

// MustNew is New for compiled-in data; invalid data is a programming error.
func MustNew(list []*items.Item) *Catalog {
	c, err := New(list)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the compiled-in game
// data. It is initialized once and shared; no locking is needed afterwards
// because nothing writes to it.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew(gameItems)
	})
	return defaultCatalog
}

// Get looks up an item by id.
func (c *Catalog) Get(id string) (*items.Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// GetByName looks up an item by exact display name.
func (c *Catalog) GetByName(name string) (*items.Item, bool) {
	it, ok := c.byName[name]
	return it, ok
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ByCategory returns all items of one category, sorted by name.
func (c *Catalog) ByCategory(cat items.Category) []*items.Item {
	var out []*items.Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// itemSource adapts a slice of items to fuzzy.Source.
type itemSource []*items.Item

func (s itemSource) String(i int) string { return strings.ToLower(s[i].Name) }
func (s itemSource) Len() int            { return len(s) }

// Search fuzzy-matches item names against query, optionally restricted to
// one category. Results come back in relevance order, at most limit of
// them (limit <= 0 means no cap).
func (c *Catalog) Search(query string, cat items.Category, limit int) []*items.Item {
	pool := c.items
	if cat != "" {
		pool = c.ByCategory(cat)
	}

	if strings.TrimSpace(query) == "" {
		out := make([]*items.Item, len(pool))
		copy(out, pool)
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return out
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), itemSource(pool))
	out := make([]*items.Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, pool[m.Index])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
