// Package slots implements per-category slot resolution: the membership
// test, the flat-string codec used by share links, and the row codec used
// by persisted records. Every slot category except traits shares one
// resolver implementation; traits carry per-instance amounts and get their
// own codec.
package slots

import (
	"strings"

	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/errors"
)

// Delimiter separates item ids inside one encoded slot field.
const Delimiter = ","

// ErrNoValidItems signals that a whole-field decode resolved zero valid
// items from a non-empty input. Callers treat it as "slot stays empty",
// never as a fatal condition: catalog data changes across game patches
// and stale links must still load.
var ErrNoValidItems = errors.NotFound("no valid items resolved for slot")

// Resolver is the per-category contract: membership plus both codecs.
type Resolver interface {
	// Category returns the slot category this resolver serves.
	Category() items.Category

	// IsMember reports whether the item exists and belongs to the category.
	IsMember(it *items.Item) bool

	// ToParams maps each position to its item id, empty string for holes.
	// Output length always equals input length.
	ToParams(list []*items.Item) []string

	// ToDBValue joins ToParams with the delimiter.
	ToDBValue(list []*items.Item) string

	// FromParams decodes a delimited id string. Unresolvable ids and
	// category mismatches are dropped silently, their positions left nil;
	// ErrNoValidItems is returned when nothing resolved.
	FromParams(encoded string) ([]*items.Item, error)

	// FromDBValue decodes persisted rows. Rows with an explicit index are
	// assigned into that position (rows may arrive sparse and out of
	// order); rows without one are appended. Bad rows are dropped.
	FromDBValue(rows []builds.ItemRow) []*items.Item
}

type itemResolver struct {
	catalog  *catalog.Catalog
	category items.Category
}

func newItemResolver(cat *catalog.Catalog, category items.Category) *itemResolver {
	return &itemResolver{catalog: cat, category: category}
}

func (r *itemResolver) Category() items.Category {
	return r.category
}

func (r *itemResolver) IsMember(it *items.Item) bool {
	return it.Is(r.category)
}

func (r *itemResolver) ToParams(list []*items.Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		if it != nil {
			out[i] = it.ID
		}
	}
	return out
}

func (r *itemResolver) ToDBValue(list []*items.Item) string {
	return strings.Join(r.ToParams(list), Delimiter)
}

func (r *itemResolver) FromParams(encoded string) ([]*items.Item, error) {
	ids := strings.Split(encoded, Delimiter)

	out := make([]*items.Item, len(ids))
	resolved := 0
	for i, id := range ids {
		it, ok := r.catalog.Get(id)
		if !ok {
			continue
		}
		if !r.IsMember(it) {
			continue
		}
		// Sparse assignment: position i in the input stays position i in
		// the output even when earlier ids failed to resolve.
		out[i] = it
		resolved++
	}

	if resolved == 0 {
		return nil, ErrNoValidItems
	}
	// The lookup above already filtered by category, so this re-check
	// should be unreachable. Kept as a gate against catalog data errors.
	for _, it := range out {
		if it != nil && !r.IsMember(it) {
			return nil, ErrNoValidItems
		}
	}

	return out, nil
}

func (r *itemResolver) FromDBValue(rows []builds.ItemRow) []*items.Item {
	var out []*items.Item
	for _, row := range rows {
		it, ok := r.catalog.Get(row.ItemID)
		if !ok || !r.IsMember(it) {
			continue
		}
		if row.Index != nil {
			idx := int(*row.Index)
			if idx < 0 {
				continue
			}
			for len(out) <= idx {
				out = append(out, nil)
			}
			out[idx] = it
		} else {
			out = append(out, it)
		}
	}
	return out
}

// Registry maps slot categories to their resolvers. Built once per catalog
// and read-only afterwards.
type Registry struct {
	resolvers map[items.Category]Resolver
	traits    *TraitCodec
}

// NewRegistry builds the resolver table over the given catalog.
func NewRegistry(cat *catalog.Catalog) *Registry {
	r := &Registry{
		resolvers: make(map[items.Category]Resolver),
		traits:    NewTraitCodec(cat),
	}
	for _, c := range items.Categories {
		if c == items.CategoryTrait {
			continue
		}
		r.resolvers[c] = newItemResolver(cat, c)
	}
	return r
}

// For returns the resolver registered for a category. Traits are not in
// the table; use Traits.
func (r *Registry) For(c items.Category) (Resolver, bool) {
	res, ok := r.resolvers[c]
	return res, ok
}

// Traits returns the trait codec.
func (r *Registry) Traits() *TraitCodec {
	return r.traits
}
