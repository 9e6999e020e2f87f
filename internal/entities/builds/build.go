// Package builds defines the build aggregate: the per-edit-session state
// the mutation engine works on, and the record shape it persists to.
// NOTE: These are data-only structs. All slot semantics live in the
// builder and slots packages.
package builds

import (
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// Fixed capacities for the indexed slot categories. Positions are
// semantically meaningful: removing an item leaves a hole, it never
// shifts its neighbours.
const (
	SlotCountArchetype     = 2
	SlotCountSkill         = 2
	SlotCountWeapon        = 3
	SlotCountMod           = 3
	SlotCountMutator       = 3
	SlotCountRing          = 4
	SlotCountRelicFragment = 3
	SlotCountConsumable    = 4

	// Concoction capacity is dynamic: one base slot, up to three bonus
	// slots granted by an equipped Alchemist archetype.
	SlotCountConcoctionBase  = 1
	SlotCountConcoctionBonus = 3
	SlotCountConcoctionMax   = SlotCountConcoctionBase + SlotCountConcoctionBonus
)

// DefaultBuildName is the name a fresh, unsaved build carries.
const DefaultBuildName = "My Build"

// Trait amount bounds. A freshly equipped trait starts at the default;
// every stored amount stays inside [MinTraitAmount, MaxTraitAmount], and
// the build as a whole cannot spend more than MaxTraitPoints.
const (
	MinTraitAmount     int32 = 1
	MaxTraitAmount     int32 = 10
	DefaultTraitAmount int32 = 10
	MaxTraitPoints     int32 = 110
)

// TraitLevel is one equipped trait together with its per-instance amount.
// Unlike every other slot, traits carry mutable state of their own, so the
// slot value is not a bare item pointer.
type TraitLevel struct {
	Item   *items.Item
	Amount int32
}

// ItemSlots holds one field per equipment slot category. Single-valued
// slots are nil when empty; indexed slots keep their full fixed length
// with nil holes; traits and concoctions are variable-length.
type ItemSlots struct {
	Helm   *items.Item
	Torso  *items.Item
	Legs   *items.Item
	Gloves *items.Item
	Relic  *items.Item
	Amulet *items.Item

	Archetype     []*items.Item
	Skill         []*items.Item
	Weapon        []*items.Item
	Mod           []*items.Item
	Mutator       []*items.Item
	Ring          []*items.Item
	RelicFragment []*items.Item
	Consumable    []*items.Item
	Concoction    []*items.Item

	Trait []TraitLevel
}

// BuildState is a complete build under edit: one field per slot category
// plus the metadata the community surface shows. It is mutated exclusively
// through the builder engine, which clones before writing.
type BuildState struct {
	ID                   string
	Name                 string
	Description          string
	BuildLink            string
	IsPublic             bool
	CreatedByID          string
	CreatedByDisplayName string
	CreatedAt            int64
	UpdatedAt            int64
	TotalUpvotes         int32
	IsFeaturedBuild      bool
	IsPatchAffected      bool
	Reported             bool

	Items ItemSlots
}

// NewBuildState returns a fresh build with every slot empty and indexed
// slots preallocated to their fixed capacity.
func NewBuildState() *BuildState {
	return &BuildState{
		Name:     DefaultBuildName,
		IsPublic: true,
		Items: ItemSlots{
			Archetype:     make([]*items.Item, SlotCountArchetype),
			Skill:         make([]*items.Item, SlotCountSkill),
			Weapon:        make([]*items.Item, SlotCountWeapon),
			Mod:           make([]*items.Item, SlotCountMod),
			Mutator:       make([]*items.Item, SlotCountMutator),
			Ring:          make([]*items.Item, SlotCountRing),
			RelicFragment: make([]*items.Item, SlotCountRelicFragment),
			Consumable:    make([]*items.Item, SlotCountConsumable),
			Concoction:    make([]*items.Item, SlotCountConcoctionMax),
		},
	}
}

// Clone returns a deep copy of the build state. Item pointers are shared
// on purpose: they reference the immutable catalog.
func (s *BuildState) Clone() *BuildState {
	if s == nil {
		return nil
	}
	out := *s
	out.Items.Archetype = cloneItems(s.Items.Archetype)
	out.Items.Skill = cloneItems(s.Items.Skill)
	out.Items.Weapon = cloneItems(s.Items.Weapon)
	out.Items.Mod = cloneItems(s.Items.Mod)
	out.Items.Mutator = cloneItems(s.Items.Mutator)
	out.Items.Ring = cloneItems(s.Items.Ring)
	out.Items.RelicFragment = cloneItems(s.Items.RelicFragment)
	out.Items.Consumable = cloneItems(s.Items.Consumable)
	out.Items.Concoction = cloneItems(s.Items.Concoction)
	if s.Items.Trait != nil {
		out.Items.Trait = make([]TraitLevel, len(s.Items.Trait))
		copy(out.Items.Trait, s.Items.Trait)
	}
	return &out
}

func cloneItems(src []*items.Item) []*items.Item {
	if src == nil {
		return nil
	}
	out := make([]*items.Item, len(src))
	copy(out, src)
	return out
}
