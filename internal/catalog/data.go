package catalog

import (
	"strings"

	"github.com/remnantforge/builds-api/internal/entities/items"
)

// Compiled-in item data. The full game ships a few hundred items; this set
// tracks the ones the community tooling needs, and grows patch by patch.
// IDs are stable slugs; they appear in share links and stored rows, so
// renaming an id is a breaking change.

func wikiLink(name string) []string {
	return []string{"https://remnant.wiki/" + strings.ReplaceAll(name, " ", "_")}
}

func imagePath(cat items.Category, id string) string {
	return "/items/" + string(cat) + "/" + id + ".png"
}

func saveSlug(cat items.Category, name string) string {
	title := strings.ToUpper(string(cat[0])) + string(cat[1:])
	return title + "_" + strings.ReplaceAll(name, " ", "")
}

func simple(cat items.Category, id, name string, dlc items.DLC) *items.Item {
	return &items.Item{
		ID:           id,
		Name:         name,
		Category:     cat,
		DLC:          dlc,
		ImagePath:    imagePath(cat, id),
		WikiLinks:    wikiLink(name),
		SaveFileSlug: saveSlug(cat, name),
	}
}

func weapon(id, name string, dlc items.DLC, wt items.WeaponType, linkedMod string) *items.Item {
	it := simple(items.CategoryWeapon, id, name, dlc)
	it.Weapon = &items.WeaponData{Type: wt}
	if linkedMod != "" {
		it.LinkedItems = &items.LinkedItems{Mod: linkedMod}
	}
	return it
}

func trait(id, name string, dlc items.DLC, description string) *items.Item {
	it := simple(items.CategoryTrait, id, name, dlc)
	it.Trait = &items.TraitData{Amount: 10}
	it.Description = description
	return it
}

func archetype(id, name string, dlc items.DLC, coreTrait string, skills ...string) *items.Item {
	it := simple(items.CategoryArchetype, id, name, dlc)
	it.LinkedItems = &items.LinkedItems{
		Traits: []items.LinkedTrait{{Name: coreTrait, Amount: 10}},
		Skills: skills,
	}
	return it
}

var gameItems = []*items.Item{
	// Archetypes. Each links its core trait at the enforced minimum and the
	// three skills its paired skill slot can hold.
	archetype("medic", "Medic", items.DLCBaseGame, "Triage", "Wellspring", "Healing Shield", "Redemption"),
	archetype("hunter", "Hunter", items.DLCBaseGame, "Longshot", "Hunter's Mark", "Hunter's Focus", "Hunter's Shroud"),
	archetype("challenger", "Challenger", items.DLCBaseGame, "Strong Back", "War Stomp", "Juggernaut", "Rampage"),
	archetype("alchemist", "Alchemist", items.DLCBaseGame, "Potency", "Vial: Stone Mist", "Vial: Frenzy Dust", "Vial: Elixir of Life"),
	archetype("gunslinger", "Gunslinger", items.DLCBaseGame, "Ammo Reserves", "Quick Draw", "Sidewinder", "Bulletstorm"),
	archetype("handler", "Handler", items.DLCBaseGame, "Kinship", "Guard Dog", "Support Dog", "Attack Dog"),

	// Traits
	trait("vigor", "Vigor", items.DLCBaseGame, "Increases Max Health."),
	trait("endurance", "Endurance", items.DLCBaseGame, "Increases Max Stamina."),
	trait("expertise", "Expertise", items.DLCBaseGame, "Reduces Skill Cooldowns."),
	trait("spirit", "Spirit", items.DLCBaseGame, "Increases Mod Power generation."),
	trait("triage", "Triage", items.DLCBaseGame, "Increases Healing Effectiveness."),
	trait("longshot", "Longshot", items.DLCBaseGame, "Increases weapon Ideal Range."),
	trait("strong_back", "Strong Back", items.DLCBaseGame, "Reduces Encumbrance."),
	trait("potency", "Potency", items.DLCBaseGame, "Increases Consumable duration."),
	trait("ammo_reserves", "Ammo Reserves", items.DLCBaseGame, "Increases Ammo Reserves."),
	trait("kinship", "Kinship", items.DLCBaseGame, "Reduces Friendly Fire damage dealt and received."),

	// Skills
	simple(items.CategorySkill, "wellspring", "Wellspring", items.DLCBaseGame),
	simple(items.CategorySkill, "healing_shield", "Healing Shield", items.DLCBaseGame),
	simple(items.CategorySkill, "redemption", "Redemption", items.DLCBaseGame),
	simple(items.CategorySkill, "hunters_mark", "Hunter's Mark", items.DLCBaseGame),
	simple(items.CategorySkill, "hunters_focus", "Hunter's Focus", items.DLCBaseGame),
	simple(items.CategorySkill, "hunters_shroud", "Hunter's Shroud", items.DLCBaseGame),
	simple(items.CategorySkill, "war_stomp", "War Stomp", items.DLCBaseGame),
	simple(items.CategorySkill, "juggernaut", "Juggernaut", items.DLCBaseGame),
	simple(items.CategorySkill, "rampage", "Rampage", items.DLCBaseGame),
	simple(items.CategorySkill, "vial_stone_mist", "Vial: Stone Mist", items.DLCBaseGame),
	simple(items.CategorySkill, "vial_frenzy_dust", "Vial: Frenzy Dust", items.DLCBaseGame),
	simple(items.CategorySkill, "vial_elixir_of_life", "Vial: Elixir of Life", items.DLCBaseGame),
	simple(items.CategorySkill, "quick_draw", "Quick Draw", items.DLCBaseGame),
	simple(items.CategorySkill, "sidewinder", "Sidewinder", items.DLCBaseGame),
	simple(items.CategorySkill, "bulletstorm", "Bulletstorm", items.DLCBaseGame),
	simple(items.CategorySkill, "guard_dog", "Guard Dog", items.DLCBaseGame),
	simple(items.CategorySkill, "support_dog", "Support Dog", items.DLCBaseGame),
	simple(items.CategorySkill, "attack_dog", "Attack Dog", items.DLCBaseGame),

	// Long guns
	weapon("nightfall", "Nightfall", items.DLCBaseGame, items.WeaponTypeLongGun, "Dreadwalker"),
	weapon("blackmaw_ar47", "Blackmaw AR-47", items.DLCBaseGame, items.WeaponTypeLongGun, ""),
	weapon("coach_gun", "Coach Gun", items.DLCBaseGame, items.WeaponTypeLongGun, ""),
	weapon("widowmaker", "Widowmaker", items.DLCBaseGame, items.WeaponTypeLongGun, ""),
	// Melee
	weapon("stonebreaker", "Stonebreaker", items.DLCBaseGame, items.WeaponTypeMelee, "Faultline"),
	weapon("scrap_hatchet", "Scrap Hatchet", items.DLCBaseGame, items.WeaponTypeMelee, ""),
	weapon("steel_sword", "Steel Sword", items.DLCBaseGame, items.WeaponTypeMelee, ""),
	weapon("atom_smasher", "Atom Smasher", items.DLCOne, items.WeaponTypeMelee, ""),
	// Hand guns
	weapon("cube_gun", "Cube Gun", items.DLCBaseGame, items.WeaponTypeHandGun, "Cube Shield"),
	weapon("enigma", "Enigma", items.DLCBaseGame, items.WeaponTypeHandGun, "Chaos Driver"),
	weapon("mp60r", "MP60-R", items.DLCBaseGame, items.WeaponTypeHandGun, ""),
	weapon("silverback", "Silverback Model 500", items.DLCBaseGame, items.WeaponTypeHandGun, ""),

	// Mods. The linked ones are built into their weapon and never slot
	// anywhere else.
	simple(items.CategoryMod, "hot_shot", "Hot Shot", items.DLCBaseGame),
	simple(items.CategoryMod, "fargazer", "Fargazer", items.DLCBaseGame),
	simple(items.CategoryMod, "astral_burst", "Astral Burst", items.DLCBaseGame),
	simple(items.CategoryMod, "song_of_eafir", "Song of Eafir", items.DLCBaseGame),
	simple(items.CategoryMod, "dreadwalker", "Dreadwalker", items.DLCBaseGame),
	simple(items.CategoryMod, "faultline", "Faultline", items.DLCBaseGame),
	simple(items.CategoryMod, "cube_shield", "Cube Shield", items.DLCBaseGame),
	simple(items.CategoryMod, "chaos_driver", "Chaos Driver", items.DLCBaseGame),

	// Mutators
	simple(items.CategoryMutator, "momentum", "Momentum", items.DLCBaseGame),
	simple(items.CategoryMutator, "twisting_wounds", "Twisting Wounds", items.DLCBaseGame),
	simple(items.CategoryMutator, "bulletweaver", "Bulletweaver", items.DLCBaseGame),
	simple(items.CategoryMutator, "striker", "Striker", items.DLCBaseGame),
	simple(items.CategoryMutator, "shielded_strike", "Shielded Strike", items.DLCOne),
	simple(items.CategoryMutator, "harmonizer", "Harmonizer", items.DLCBaseGame),

	// Rings
	simple(items.CategoryRing, "heart_of_the_wolf", "Heart of the Wolf", items.DLCBaseGame),
	simple(items.CategoryRing, "sagestone", "Sagestone", items.DLCBaseGame),
	simple(items.CategoryRing, "black_cat_band", "Black Cat Band", items.DLCBaseGame),
	simple(items.CategoryRing, "burden_of_the_divine", "Burden of the Divine", items.DLCBaseGame),
	simple(items.CategoryRing, "dran_scavenger_ring", "Dran Scavenger Ring", items.DLCOne),
	simple(items.CategoryRing, "anastasijas_inspiration", "Anastasija's Inspiration", items.DLCBaseGame),

	// Amulets
	simple(items.CategoryAmulet, "ankh_of_power", "Ankh of Power", items.DLCBaseGame),
	simple(items.CategoryAmulet, "indignant_fetish", "Indignant Fetish", items.DLCBaseGame),
	simple(items.CategoryAmulet, "cleansing_stone", "Cleansing Stone", items.DLCBaseGame),

	// Relics
	simple(items.CategoryRelic, "dragon_heart", "Dragon Heart", items.DLCBaseGame),
	simple(items.CategoryRelic, "lifeless_heart", "Lifeless Heart", items.DLCBaseGame),
	simple(items.CategoryRelic, "tormented_heart", "Tormented Heart", items.DLCBaseGame),

	// Relic fragments
	simple(items.CategoryRelicFragment, "frag_ranged_damage", "Ranged Damage", items.DLCBaseGame),
	simple(items.CategoryRelicFragment, "frag_melee_damage", "Melee Damage", items.DLCBaseGame),
	simple(items.CategoryRelicFragment, "frag_mod_damage", "Mod Damage", items.DLCBaseGame),
	simple(items.CategoryRelicFragment, "frag_armor_percent", "Armor Percent", items.DLCBaseGame),
	simple(items.CategoryRelicFragment, "frag_health_percent", "Health Percent", items.DLCBaseGame),

	// Consumables
	simple(items.CategoryConsumable, "bandage", "Bandage", items.DLCBaseGame),
	simple(items.CategoryConsumable, "ammo_box", "Ammo Box", items.DLCBaseGame),
	simple(items.CategoryConsumable, "orb_of_undoing", "Orb of Undoing", items.DLCBaseGame),
	simple(items.CategoryConsumable, "mud_rub", "Mud Rub", items.DLCBaseGame),

	// Concoctions
	simple(items.CategoryConcoction, "bottled_shaedesh", "Bottled Shaedesh", items.DLCBaseGame),
	simple(items.CategoryConcoction, "dark_cider", "Dark Cider", items.DLCBaseGame),
	simple(items.CategoryConcoction, "root_water", "Root Water", items.DLCBaseGame),
	simple(items.CategoryConcoction, "meat_shake", "Meat Shake", items.DLCBaseGame),

	// Armor
	simple(items.CategoryHelm, "leto_mark_ii_helm", "Leto Mark II Helm", items.DLCBaseGame),
	simple(items.CategoryHelm, "academics_hat", "Academic's Hat", items.DLCBaseGame),
	simple(items.CategoryHelm, "elder_headdress", "Elder Headdress", items.DLCBaseGame),
	simple(items.CategoryTorso, "leto_mark_ii_armor", "Leto Mark II Armor", items.DLCBaseGame),
	simple(items.CategoryTorso, "academics_overcoat", "Academic's Overcoat", items.DLCBaseGame),
	simple(items.CategoryTorso, "elder_raiment", "Elder Raiment", items.DLCBaseGame),
	simple(items.CategoryLegs, "leto_mark_ii_leggings", "Leto Mark II Leggings", items.DLCBaseGame),
	simple(items.CategoryLegs, "academics_trousers", "Academic's Trousers", items.DLCBaseGame),
	simple(items.CategoryLegs, "elder_legwraps", "Elder Legwraps", items.DLCBaseGame),
	simple(items.CategoryGloves, "leto_mark_ii_gloves", "Leto Mark II Gloves", items.DLCBaseGame),
	simple(items.CategoryGloves, "academics_gloves", "Academic's Gloves", items.DLCBaseGame),
	simple(items.CategoryGloves, "elder_gloves", "Elder Gloves", items.DLCBaseGame),
}

func init() {
	// A few items carry extra flavour the helpers do not cover.
	for _, it := range gameItems {
		switch it.ID {
		case "nightfall":
			it.Description = "A hardened growth of root material, the weapon seems to almost pulse—as if it were the still-beating heart of some dark beast."
			it.HowToGet = "Crafted from the Despoiler's remains."
		case "cube_gun":
			it.Description = "Fires laser rounds refracted through the Labyrinth's cube fragments."
			it.HowToGet = "Crafted from the Conflux Prism."
		case "dragon_heart":
			it.Description = "Restores health on use. The standard-issue relic of Ward 13."
		}
	}
}
