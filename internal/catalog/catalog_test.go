package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

func TestDefaultCatalog(t *testing.T) {
	cat := catalog.Default()
	require.NotZero(t, cat.Len())

	t.Run("lookup by id and name agree", func(t *testing.T) {
		byID, ok := cat.Get("nightfall")
		require.True(t, ok)
		byName, ok := cat.GetByName("Nightfall")
		require.True(t, ok)
		assert.Same(t, byID, byName)
	})

	t.Run("every category has at least one item", func(t *testing.T) {
		for _, c := range items.Categories {
			assert.NotEmpty(t, cat.ByCategory(c), "category %s is empty", c)
		}
	})

	t.Run("weapons carry weapon data, traits carry trait data", func(t *testing.T) {
		for _, it := range cat.ByCategory(items.CategoryWeapon) {
			assert.NotNil(t, it.Weapon, "weapon %s missing weapon data", it.ID)
		}
		for _, it := range cat.ByCategory(items.CategoryTrait) {
			assert.NotNil(t, it.Trait, "trait %s missing trait data", it.ID)
		}
	})
}

func TestNewValidation(t *testing.T) {
	weapon := func(id, name string) *items.Item {
		return &items.Item{
			ID:       id,
			Name:     name,
			Category: items.CategoryWeapon,
			Weapon:   &items.WeaponData{Type: items.WeaponTypeMelee},
		}
	}

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := catalog.New([]*items.Item{weapon("w1", "Sword"), weapon("w1", "Axe")})
		assert.Error(t, err)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := catalog.New([]*items.Item{weapon("w1", "Sword"), weapon("w2", "Sword")})
		assert.Error(t, err)
	})

	t.Run("missing id rejected", func(t *testing.T) {
		_, err := catalog.New([]*items.Item{weapon("", "Sword")})
		assert.Error(t, err)
	})

	t.Run("nil item rejected", func(t *testing.T) {
		_, err := catalog.New([]*items.Item{nil})
		assert.Error(t, err)
	})

	t.Run("weapon data on a non-weapon rejected", func(t *testing.T) {
		bad := weapon("w1", "Sword")
		bad.Category = items.CategoryRing
		_, err := catalog.New([]*items.Item{bad})
		assert.Error(t, err)
	})

	t.Run("trait without trait data rejected", func(t *testing.T) {
		_, err := catalog.New([]*items.Item{{ID: "t1", Name: "Vigor", Category: items.CategoryTrait}})
		assert.Error(t, err)
	})
}

func TestByCategorySorted(t *testing.T) {
	cat := catalog.Default()

	rings := cat.ByCategory(items.CategoryRing)
	require.NotEmpty(t, rings)
	for i := 1; i < len(rings); i++ {
		assert.LessOrEqual(t, rings[i-1].Name, rings[i].Name)
	}
}

func TestSearch(t *testing.T) {
	cat := catalog.Default()

	t.Run("finds by partial name, case insensitive", func(t *testing.T) {
		found := cat.Search("NIGHTFALL", "", 0)
		require.NotEmpty(t, found)
		assert.Equal(t, "Nightfall", found[0].Name)

		fuzzed := cat.Search("nghtfll", "", 0)
		names := make([]string, len(fuzzed))
		for i, it := range fuzzed {
			names[i] = it.Name
		}
		assert.Contains(t, names, "Nightfall")
	})

	t.Run("category filter applies", func(t *testing.T) {
		found := cat.Search("dragon", items.CategoryRelic, 0)
		require.NotEmpty(t, found)
		for _, it := range found {
			assert.Equal(t, items.CategoryRelic, it.Category)
		}
	})

	t.Run("limit caps results", func(t *testing.T) {
		found := cat.Search("a", "", 3)
		assert.LessOrEqual(t, len(found), 3)
	})

	t.Run("empty query lists the pool", func(t *testing.T) {
		found := cat.Search("", items.CategoryArchetype, 0)
		assert.Len(t, found, len(cat.ByCategory(items.CategoryArchetype)))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, cat.Search("zzzzqqqq", "", 0))
	})
}
