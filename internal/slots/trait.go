package slots

import (
	"strconv"
	"strings"

	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// AmountDelimiter separates a trait id from its amount inside one encoded
// trait entry, e.g. "vigor;7".
const AmountDelimiter = ";"

// TraitCodec handles the trait slot. Traits are the one category whose
// slot entries carry per-instance state (the amount), so the encoded form
// is id+amount pairs rather than a bare id list, and the decoded form is
// []builds.TraitLevel rather than []*items.Item.
type TraitCodec struct {
	catalog *catalog.Catalog
}

// NewTraitCodec returns a trait codec over the given catalog.
func NewTraitCodec(cat *catalog.Catalog) *TraitCodec {
	return &TraitCodec{catalog: cat}
}

// Category returns the trait category tag.
func (c *TraitCodec) Category() items.Category {
	return items.CategoryTrait
}

// IsMember reports whether the item exists and is a trait.
func (c *TraitCodec) IsMember(it *items.Item) bool {
	return it.Is(items.CategoryTrait)
}

// ToParams maps each equipped trait to "id;amount".
func (c *TraitCodec) ToParams(list []builds.TraitLevel) []string {
	out := make([]string, len(list))
	for i, tl := range list {
		if tl.Item == nil {
			continue
		}
		out[i] = tl.Item.ID + AmountDelimiter + strconv.FormatInt(int64(tl.Amount), 10)
	}
	return out
}

// ToDBValue joins ToParams with the slot delimiter.
func (c *TraitCodec) ToDBValue(list []builds.TraitLevel) string {
	return strings.Join(c.ToParams(list), Delimiter)
}

// FromParams decodes a delimited list of "id;amount" entries. Entries with
// unknown ids or the wrong category are dropped; a missing or unparseable
// amount falls back to the default and out-of-range amounts are clamped.
// Unlike the indexed slots, the trait list is dense: drops compact.
func (c *TraitCodec) FromParams(encoded string) ([]builds.TraitLevel, error) {
	entries := strings.Split(encoded, Delimiter)

	var out []builds.TraitLevel
	for _, entry := range entries {
		id, rawAmount, _ := strings.Cut(entry, AmountDelimiter)
		it, ok := c.catalog.Get(id)
		if !ok || !c.IsMember(it) {
			continue
		}
		out = append(out, builds.TraitLevel{Item: it, Amount: parseAmount(rawAmount)})
	}

	if len(out) == 0 {
		return nil, ErrNoValidItems
	}
	return out, nil
}

// FromRows decodes persisted trait rows. Explicit indices order the list
// (rows arrive in no guaranteed order); holes left by dropped rows are
// compacted away afterwards.
func (c *TraitCodec) FromRows(rows []builds.ItemRow) []builds.TraitLevel {
	var sparse []builds.TraitLevel
	for _, row := range rows {
		it, ok := c.catalog.Get(row.ItemID)
		if !ok || !c.IsMember(it) {
			continue
		}
		amount := row.Amount
		if amount == 0 {
			// Old rows written before amounts were stored.
			amount = builds.DefaultTraitAmount
		}
		tl := builds.TraitLevel{Item: it, Amount: clampAmount(amount)}
		if row.Index != nil {
			idx := int(*row.Index)
			if idx < 0 {
				continue
			}
			for len(sparse) <= idx {
				sparse = append(sparse, builds.TraitLevel{})
			}
			sparse[idx] = tl
		} else {
			sparse = append(sparse, tl)
		}
	}

	var out []builds.TraitLevel
	for _, tl := range sparse {
		if tl.Item != nil {
			out = append(out, tl)
		}
	}
	return out
}

func parseAmount(raw string) int32 {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return builds.DefaultTraitAmount
	}
	return clampAmount(int32(n))
}

func clampAmount(n int32) int32 {
	if n < builds.MinTraitAmount {
		return builds.MinTraitAmount
	}
	if n > builds.MaxTraitAmount {
		return builds.MaxTraitAmount
	}
	return n
}
