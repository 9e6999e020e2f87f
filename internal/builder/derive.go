package builder

import (
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// alchemistName is the archetype that grants the bonus concoction slots.
const alchemistName = "Alchemist"

// ConcoctionSlotCount returns how many concoction slots the build can
// currently use: one base slot, plus the bonus slots when an Alchemist
// archetype is equipped in either position.
func (e *Engine) ConcoctionSlotCount(state *builds.BuildState) int {
	count := builds.SlotCountConcoctionBase
	for _, arch := range state.Items.Archetype {
		if arch != nil && arch.Name == alchemistName {
			count += builds.SlotCountConcoctionBonus
			break
		}
	}
	return count
}

// TotalTraitAmount returns the trait points the build has spent.
func (e *Engine) TotalTraitAmount(state *builds.BuildState) int32 {
	var total int32
	for _, tl := range state.Items.Trait {
		total += tl.Amount
	}
	return total
}

// IsPopular reports whether the build has crossed the popular-vote
// threshold.
func IsPopular(state *builds.BuildState) bool {
	return state.TotalUpvotes >= PopularVoteThreshold
}

// ItemListForSlot returns the catalog items eligible for one slot, sorted
// by name. This is what an item picker shows:
//
//   - weapon slots filter by the slot's weapon type (0 long gun, 1 melee,
//     2 hand gun) when an index is given;
//   - a mod slot is locked (empty list) while its paired weapon carries a
//     built-in mod, and built-in mods never appear as free picks;
//   - skill slots list only the skills linked by the archetype at the
//     same index;
//   - multi-valued slots exclude items already equipped in that slot.
func (e *Engine) ItemListForSlot(state *builds.BuildState, c items.Category, index *int) []*items.Item {
	switch c {
	case items.CategoryWeapon:
		return e.weaponListForSlot(index)
	case items.CategoryMod:
		return e.modListForSlot(state, index)
	case items.CategorySkill:
		return e.skillListForSlot(state, index)
	case items.CategoryTrait:
		return e.traitList(state)
	}

	pool := e.catalog.ByCategory(c)
	if indexedSlotRef(state, c) == nil {
		// Single-valued slot: the whole category is eligible.
		return pool
	}
	return excludeEquipped(pool, *indexedSlotRef(state, c))
}

func (e *Engine) weaponListForSlot(index *int) []*items.Item {
	pool := e.catalog.ByCategory(items.CategoryWeapon)
	if index == nil {
		return pool
	}

	var want items.WeaponType
	switch *index {
	case 0:
		want = items.WeaponTypeLongGun
	case 1:
		want = items.WeaponTypeMelee
	case 2:
		want = items.WeaponTypeHandGun
	default:
		return nil
	}

	var out []*items.Item
	for _, it := range pool {
		if it.Weapon != nil && it.Weapon.Type == want {
			out = append(out, it)
		}
	}
	return out
}

func (e *Engine) modListForSlot(state *builds.BuildState, index *int) []*items.Item {
	if index != nil {
		if *index < 0 || *index >= len(state.Items.Weapon) {
			return nil
		}
		if state.Items.Weapon[*index].LinkedMod() != "" {
			// Built-in mod; the slot is not editable.
			return nil
		}
	}

	// Built-in mods only ever ride their weapon.
	linked := make(map[string]bool)
	for _, w := range e.catalog.ByCategory(items.CategoryWeapon) {
		if name := w.LinkedMod(); name != "" {
			linked[name] = true
		}
	}

	var pool []*items.Item
	for _, it := range e.catalog.ByCategory(items.CategoryMod) {
		if !linked[it.Name] {
			pool = append(pool, it)
		}
	}
	return excludeEquipped(pool, state.Items.Mod)
}

func (e *Engine) skillListForSlot(state *builds.BuildState, index *int) []*items.Item {
	if index == nil || *index < 0 || *index >= len(state.Items.Archetype) {
		return nil
	}
	arch := state.Items.Archetype[*index]
	if arch == nil {
		return nil
	}

	var out []*items.Item
	for _, name := range arch.LinkedSkills() {
		if it, ok := e.catalog.GetByName(name); ok && it.Is(items.CategorySkill) {
			out = append(out, it)
		}
	}
	return out
}

func (e *Engine) traitList(state *builds.BuildState) []*items.Item {
	equipped := make(map[string]bool, len(state.Items.Trait))
	for _, tl := range state.Items.Trait {
		if tl.Item != nil {
			equipped[tl.Item.ID] = true
		}
	}

	var out []*items.Item
	for _, it := range e.catalog.ByCategory(items.CategoryTrait) {
		if !equipped[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

func excludeEquipped(pool, equipped []*items.Item) []*items.Item {
	inUse := make(map[string]bool, len(equipped))
	for _, it := range equipped {
		if it != nil {
			inUse[it.ID] = true
		}
	}

	var out []*items.Item
	for _, it := range pool {
		if !inUse[it.ID] {
			out = append(out, it)
		}
	}
	return out
}
