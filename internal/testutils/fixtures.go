package testutils

import (
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// Fixture item ids used across tests
const (
	TestHelmID       = "fix_helm"
	TestTorsoID      = "fix_torso"
	TestLegsID       = "fix_legs"
	TestGlovesID     = "fix_gloves"
	TestRelicID      = "fix_relic"
	TestAmuletID     = "fix_amulet"
	TestLongGunID    = "fix_long_gun"
	TestMeleeID      = "fix_melee"
	TestHandGunID    = "fix_hand_gun"
	TestHandGun2ID   = "fix_hand_gun_2"
	TestLinkedModID  = "fix_mod_stormcall"
	TestFreeModID    = "fix_mod_overdrive"
	TestMutatorID    = "fix_mutator"
	TestRing1ID      = "fix_ring_1"
	TestRing2ID      = "fix_ring_2"
	TestRing3ID      = "fix_ring_3"
	TestRing4ID      = "fix_ring_4"
	TestRing5ID      = "fix_ring_5"
	TestFragmentID   = "fix_fragment"
	TestSentinelID   = "fix_arch_sentinel"
	TestWayfarerID   = "fix_arch_wayfarer"
	TestAlchemistID  = "fix_arch_alchemist"
	TestSkillAegisID = "fix_skill_aegis"
	TestMettleID     = "fix_trait_mettle"
	TestHasteID      = "fix_trait_haste"
	TestResolveID    = "fix_trait_resolve"
	TestConcoction1  = "fix_concoction_1"
	TestConcoction2  = "fix_concoction_2"
	TestConsumableID = "fix_consumable"
)

func fixtureItem(cat items.Category, id, name string) *items.Item {
	return &items.Item{
		ID:       id,
		Name:     name,
		Category: cat,
		DLC:      items.DLCBaseGame,
	}
}

// CreateTestCatalog builds a small catalog with deliberate link amounts:
// Sentinel enforces Mettle at 5 so clamping below the default is testable,
// Wayfarer enforces Haste at 10, and the long gun carries a built-in mod
// so mod-slot locking is testable.
func CreateTestCatalog() *catalog.Catalog {
	longGun := fixtureItem(items.CategoryWeapon, TestLongGunID, "Thunderpipe")
	longGun.Weapon = &items.WeaponData{Type: items.WeaponTypeLongGun}
	longGun.LinkedItems = &items.LinkedItems{Mod: "Stormcall"}

	melee := fixtureItem(items.CategoryWeapon, TestMeleeID, "Cleaver")
	melee.Weapon = &items.WeaponData{Type: items.WeaponTypeMelee}

	handGun := fixtureItem(items.CategoryWeapon, TestHandGunID, "Sidearm")
	handGun.Weapon = &items.WeaponData{Type: items.WeaponTypeHandGun}

	handGun2 := fixtureItem(items.CategoryWeapon, TestHandGun2ID, "Peacemaker")
	handGun2.Weapon = &items.WeaponData{Type: items.WeaponTypeHandGun}

	mettle := fixtureItem(items.CategoryTrait, TestMettleID, "Mettle")
	mettle.Trait = &items.TraitData{Amount: builds.DefaultTraitAmount}

	haste := fixtureItem(items.CategoryTrait, TestHasteID, "Haste")
	haste.Trait = &items.TraitData{Amount: builds.DefaultTraitAmount}

	resolve := fixtureItem(items.CategoryTrait, TestResolveID, "Resolve")
	resolve.Trait = &items.TraitData{Amount: builds.DefaultTraitAmount}

	sentinel := fixtureItem(items.CategoryArchetype, TestSentinelID, "Sentinel")
	sentinel.LinkedItems = &items.LinkedItems{
		Traits: []items.LinkedTrait{{Name: "Mettle", Amount: 5}},
		Skills: []string{"Aegis", "Bulwark"},
	}

	wayfarer := fixtureItem(items.CategoryArchetype, TestWayfarerID, "Wayfarer")
	wayfarer.LinkedItems = &items.LinkedItems{
		Traits: []items.LinkedTrait{{Name: "Haste", Amount: 10}},
		Skills: []string{"Quickstep"},
	}

	alchemist := fixtureItem(items.CategoryArchetype, TestAlchemistID, "Alchemist")
	alchemist.LinkedItems = &items.LinkedItems{
		Traits: []items.LinkedTrait{{Name: "Resolve", Amount: 7}},
		Skills: []string{"Vial Toss"},
	}

	return catalog.MustNew([]*items.Item{
		fixtureItem(items.CategoryHelm, TestHelmID, "Iron Helm"),
		fixtureItem(items.CategoryTorso, TestTorsoID, "Iron Cuirass"),
		fixtureItem(items.CategoryLegs, TestLegsID, "Iron Greaves"),
		fixtureItem(items.CategoryGloves, TestGlovesID, "Iron Gauntlets"),
		fixtureItem(items.CategoryRelic, TestRelicID, "Heartstone"),
		fixtureItem(items.CategoryAmulet, TestAmuletID, "Lucky Coin"),
		longGun,
		melee,
		handGun,
		handGun2,
		fixtureItem(items.CategoryMod, TestLinkedModID, "Stormcall"),
		fixtureItem(items.CategoryMod, TestFreeModID, "Overdrive"),
		fixtureItem(items.CategoryMutator, TestMutatorID, "Momentum"),
		fixtureItem(items.CategoryRing, TestRing1ID, "Band of Iron"),
		fixtureItem(items.CategoryRing, TestRing2ID, "Band of Silver"),
		fixtureItem(items.CategoryRing, TestRing3ID, "Band of Gold"),
		fixtureItem(items.CategoryRing, TestRing4ID, "Band of Bone"),
		fixtureItem(items.CategoryRing, TestRing5ID, "Band of Glass"),
		fixtureItem(items.CategoryRelicFragment, TestFragmentID, "Cracked Shard"),
		sentinel,
		wayfarer,
		alchemist,
		fixtureItem(items.CategorySkill, TestSkillAegisID, "Aegis"),
		fixtureItem(items.CategorySkill, "fix_skill_bulwark", "Bulwark"),
		fixtureItem(items.CategorySkill, "fix_skill_quickstep", "Quickstep"),
		fixtureItem(items.CategorySkill, "fix_skill_vial_toss", "Vial Toss"),
		mettle,
		haste,
		resolve,
		fixtureItem(items.CategoryConcoction, TestConcoction1, "Bitter Tonic"),
		fixtureItem(items.CategoryConcoction, TestConcoction2, "Sour Draught"),
		fixtureItem(items.CategoryConsumable, TestConsumableID, "Bandage"),
	})
}

// CreateTestBuildRecord creates a stored build with sensible defaults
func CreateTestBuildRecord(id, userID string) *builds.BuildRecord {
	return &builds.BuildRecord{
		ID:          id,
		Name:        "Test Build",
		Description: "A build for testing",
		IsPublic:    true,
		CreatedByID: userID,
		CreatedAt:   1700000000,
		UpdatedAt:   1700000000,
		HelmItemID:  TestHelmID,
		Items: []builds.ItemRow{
			{Category: items.CategoryWeapon, ItemID: TestLongGunID, Index: builds.Index(0)},
			{Category: items.CategoryRing, ItemID: TestRing1ID, Index: builds.Index(0)},
			{Category: items.CategoryTrait, ItemID: TestMettleID, Amount: 10},
		},
	}
}
