package builder

import (
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// EncodeToRecord converts a build state into its persisted shape:
// metadata columns, one nullable item-id per single-valued slot, and one
// {itemId, index} row per occupied position of the indexed slots. Holes
// produce no row; their absence plus the explicit indices of their
// neighbours preserves positions across the round-trip.
func (e *Engine) EncodeToRecord(state *builds.BuildState) *builds.BuildRecord {
	rec := &builds.BuildRecord{
		ID:                   state.ID,
		Name:                 state.Name,
		Description:          state.Description,
		BuildLink:            state.BuildLink,
		IsPublic:             state.IsPublic,
		CreatedByID:          state.CreatedByID,
		CreatedByDisplayName: state.CreatedByDisplayName,
		CreatedAt:            state.CreatedAt,
		UpdatedAt:            state.UpdatedAt,
		TotalUpvotes:         state.TotalUpvotes,
		IsFeaturedBuild:      state.IsFeaturedBuild,
		IsPatchAffected:      state.IsPatchAffected,
		Reported:             state.Reported,

		HelmItemID:   itemID(state.Items.Helm),
		TorsoItemID:  itemID(state.Items.Torso),
		LegsItemID:   itemID(state.Items.Legs),
		GlovesItemID: itemID(state.Items.Gloves),
		RelicItemID:  itemID(state.Items.Relic),
		AmuletItemID: itemID(state.Items.Amulet),
	}

	for _, c := range items.Categories {
		list := indexedSlotRef(state, c)
		if list == nil {
			continue
		}
		for i, it := range *list {
			if it == nil {
				continue
			}
			rec.Items = append(rec.Items, builds.ItemRow{
				Category: c,
				ItemID:   it.ID,
				Index:    builds.Index(int32(i)),
			})
		}
	}

	for i, tl := range state.Items.Trait {
		if tl.Item == nil {
			continue
		}
		rec.Items = append(rec.Items, builds.ItemRow{
			Category: items.CategoryTrait,
			ItemID:   tl.Item.ID,
			Index:    builds.Index(int32(i)),
			Amount:   tl.Amount,
		})
	}

	return rec
}

// DecodeFromRecord reconstructs a build state from its persisted shape.
// Indexed slots are rebuilt by initializing every position empty and
// assigning rows by their explicit index; row order carries no meaning.
// Ids the catalog no longer resolves decode to empty positions; a stale
// record loads as a degraded build, never as an error.
func (e *Engine) DecodeFromRecord(rec *builds.BuildRecord) *builds.BuildState {
	out := builds.NewBuildState()
	out.ID = rec.ID
	out.Name = rec.Name
	out.Description = rec.Description
	out.BuildLink = rec.BuildLink
	out.IsPublic = rec.IsPublic
	out.CreatedByID = rec.CreatedByID
	out.CreatedByDisplayName = rec.CreatedByDisplayName
	out.CreatedAt = rec.CreatedAt
	out.UpdatedAt = rec.UpdatedAt
	out.TotalUpvotes = rec.TotalUpvotes
	out.IsFeaturedBuild = rec.IsFeaturedBuild
	out.IsPatchAffected = rec.IsPatchAffected
	out.Reported = rec.Reported

	out.Items.Helm = e.resolveSingle(rec.HelmItemID, items.CategoryHelm)
	out.Items.Torso = e.resolveSingle(rec.TorsoItemID, items.CategoryTorso)
	out.Items.Legs = e.resolveSingle(rec.LegsItemID, items.CategoryLegs)
	out.Items.Gloves = e.resolveSingle(rec.GlovesItemID, items.CategoryGloves)
	out.Items.Relic = e.resolveSingle(rec.RelicItemID, items.CategoryRelic)
	out.Items.Amulet = e.resolveSingle(rec.AmuletItemID, items.CategoryAmulet)

	for _, c := range items.Categories {
		list := indexedSlotRef(out, c)
		if list == nil {
			continue
		}
		resolver, _ := e.registry.For(c)
		fitItems(*list, resolver.FromDBValue(rec.RowsFor(c)))
	}

	out.Items.Trait = e.registry.Traits().FromRows(rec.RowsFor(items.CategoryTrait))

	return out
}

func (e *Engine) resolveSingle(id string, c items.Category) *items.Item {
	if id == "" {
		return nil
	}
	it, ok := e.catalog.Get(id)
	if !ok || !it.Is(c) {
		return nil
	}
	return it
}

func itemID(it *items.Item) string {
	if it == nil {
		return ""
	}
	return it.ID
}
