// Package builder implements the build rules engine: slot mutation with
// cross-slot invariant repair, derived state (concoction slot counts,
// eligible item lists, trait point totals), and the query-string and
// record codecs. All operations are pure: they clone the input state and
// never block, since catalog lookups are in-memory map reads over
// immutable data.
package builder

import (
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/slots"
)

// PopularVoteThreshold is the community vote count at which a build gets
// the popular badge.
const PopularVoteThreshold int32 = 100

// Engine owns the resolver table over one catalog and applies every
// mutation and codec operation. Safe for concurrent use: it carries no
// mutable state of its own.
type Engine struct {
	catalog  *catalog.Catalog
	registry *slots.Registry
}

// New creates an engine over the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog:  cat,
		registry: slots.NewRegistry(cat),
	}
}

// Catalog returns the catalog the engine resolves against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// singleSlotRef returns a pointer to the field backing a single-valued
// slot, or nil when the category is not single-valued. Callers pass a
// clone; writing through the pointer mutates only that clone.
func singleSlotRef(s *builds.BuildState, c items.Category) **items.Item {
	switch c {
	case items.CategoryHelm:
		return &s.Items.Helm
	case items.CategoryTorso:
		return &s.Items.Torso
	case items.CategoryLegs:
		return &s.Items.Legs
	case items.CategoryGloves:
		return &s.Items.Gloves
	case items.CategoryRelic:
		return &s.Items.Relic
	case items.CategoryAmulet:
		return &s.Items.Amulet
	default:
		return nil
	}
}

// indexedSlotRef returns a pointer to the slice backing an indexed slot,
// or nil when the category is not indexed. Traits are not indexed in this
// sense; they have their own path.
func indexedSlotRef(s *builds.BuildState, c items.Category) *[]*items.Item {
	switch c {
	case items.CategoryArchetype:
		return &s.Items.Archetype
	case items.CategorySkill:
		return &s.Items.Skill
	case items.CategoryWeapon:
		return &s.Items.Weapon
	case items.CategoryMod:
		return &s.Items.Mod
	case items.CategoryMutator:
		return &s.Items.Mutator
	case items.CategoryRing:
		return &s.Items.Ring
	case items.CategoryRelicFragment:
		return &s.Items.RelicFragment
	case items.CategoryConsumable:
		return &s.Items.Consumable
	case items.CategoryConcoction:
		return &s.Items.Concoction
	default:
		return nil
	}
}
