// Package items defines the item reference model shared by the catalog,
// the slot resolvers, and the build engine.
// NOTE: These are data-only structs. Items are owned by the catalog and
// treated as immutable everywhere else; builds hold read-only pointers
// into the catalog.
package items

// Category tags the single equipment category an item belongs to.
// An item keeps its category for its lifetime; slot membership checks
// compare this tag.
type Category string

// Slot categories
const (
	CategoryHelm          Category = "helm"
	CategoryTorso         Category = "torso"
	CategoryLegs          Category = "legs"
	CategoryGloves        Category = "gloves"
	CategoryRelic         Category = "relic"
	CategoryAmulet        Category = "amulet"
	CategoryWeapon        Category = "weapon"
	CategoryMod           Category = "mod"
	CategoryMutator       Category = "mutator"
	CategoryRing          Category = "ring"
	CategoryRelicFragment Category = "relicfragment"
	CategoryArchetype     Category = "archetype"
	CategorySkill         Category = "skill"
	CategoryTrait         Category = "trait"
	CategoryConcoction    Category = "concoction"
	CategoryConsumable    Category = "consumable"
)

// Categories lists every slot category in display order. The query-string
// codec iterates this to keep field order stable across encodes.
var Categories = []Category{
	CategoryHelm,
	CategoryTorso,
	CategoryLegs,
	CategoryGloves,
	CategoryRelic,
	CategoryAmulet,
	CategoryWeapon,
	CategoryMod,
	CategoryMutator,
	CategoryRing,
	CategoryRelicFragment,
	CategoryArchetype,
	CategorySkill,
	CategoryTrait,
	CategoryConcoction,
	CategoryConsumable,
}

// DLC identifies which release an item shipped with.
type DLC string

// Known releases
const (
	DLCBaseGame DLC = "basegame"
	DLCOne      DLC = "dlc1"
	DLCTwo      DLC = "dlc2"
)

// WeaponType splits weapons across the three weapon slots.
type WeaponType string

// Weapon types, in weapon-slot order: slot 0 holds a long gun,
// slot 1 a melee weapon, slot 2 a hand gun.
const (
	WeaponTypeLongGun WeaponType = "long gun"
	WeaponTypeMelee   WeaponType = "melee"
	WeaponTypeHandGun WeaponType = "hand gun"
)

// LinkedTrait names a trait granted by an archetype and the minimum
// amount the link enforces while the archetype is equipped.
type LinkedTrait struct {
	Name   string
	Amount int32
}

// LinkedItems carries the companion-item relationships declared on an item.
// All references are by name; the catalog resolves them lazily because the
// data is authored before ids are assigned.
type LinkedItems struct {
	// Traits an archetype grants, with their enforced minimum amounts.
	Traits []LinkedTrait
	// Skills an archetype unlocks for its paired skill slot.
	Skills []string
	// Mod permanently built into a weapon. A weapon with a linked mod
	// locks its paired mod slot.
	Mod string
}

// WeaponData holds the weapon-only variant fields.
type WeaponData struct {
	Type WeaponType
}

// TraitData holds the trait-only variant fields.
type TraitData struct {
	// Amount is the default amount a freshly equipped trait starts at.
	Amount int32
}

// Item is a closed tagged union over Category. Exactly one of the variant
// pointers is set, and only when the category calls for it: Weapon for
// CategoryWeapon, Trait for CategoryTrait. Everything else uses the base
// fields alone.
type Item struct {
	ID           string
	Name         string
	Category     Category
	DLC          DLC
	Description  string
	ImagePath    string
	HowToGet     string
	WikiLinks    []string
	LinkedItems  *LinkedItems
	SaveFileSlug string

	Weapon *WeaponData
	Trait  *TraitData
}

// Is reports whether the item exists and belongs to the given category.
func (i *Item) Is(c Category) bool {
	return i != nil && i.Category == c
}

// LinkedTraitAmount returns the minimum amount this item's links enforce
// for the named trait, or 0 when the item links no such trait.
func (i *Item) LinkedTraitAmount(traitName string) int32 {
	if i == nil || i.LinkedItems == nil {
		return 0
	}
	for _, lt := range i.LinkedItems.Traits {
		if lt.Name == traitName {
			return lt.Amount
		}
	}
	return 0
}

// LinkedMod returns the name of the mod built into this item, if any.
func (i *Item) LinkedMod() string {
	if i == nil || i.LinkedItems == nil {
		return ""
	}
	return i.LinkedItems.Mod
}

// LinkedSkills returns the skill names this item unlocks, if any.
func (i *Item) LinkedSkills() []string {
	if i == nil || i.LinkedItems == nil {
		return nil
	}
	return i.LinkedItems.Skills
}
