package slots_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/slots"
	"github.com/remnantforge/builds-api/internal/testutils"
)

type ResolverTestSuite struct {
	suite.Suite
	catalog  *catalog.Catalog
	registry *slots.Registry
}

func (s *ResolverTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog()
	s.registry = slots.NewRegistry(s.catalog)
}

func (s *ResolverTestSuite) item(id string) *items.Item {
	it, ok := s.catalog.Get(id)
	s.Require().True(ok, "fixture item %s missing", id)
	return it
}

func (s *ResolverTestSuite) TestRegistryCoversEveryCategoryExceptTraits() {
	for _, c := range items.Categories {
		res, ok := s.registry.For(c)
		if c == items.CategoryTrait {
			s.False(ok, "traits must not be in the resolver table")
			continue
		}
		s.Require().True(ok, "missing resolver for %s", c)
		s.Equal(c, res.Category())
	}
	s.NotNil(s.registry.Traits())
}

func (s *ResolverTestSuite) TestIsMember() {
	res, _ := s.registry.For(items.CategoryWeapon)

	s.True(res.IsMember(s.item(testutils.TestLongGunID)))
	s.False(res.IsMember(s.item(testutils.TestRing1ID)))
	s.False(res.IsMember(nil))
}

func (s *ResolverTestSuite) TestToParamsPreservesHoles() {
	res, _ := s.registry.For(items.CategoryWeapon)
	list := []*items.Item{s.item(testutils.TestLongGunID), nil, s.item(testutils.TestHandGunID)}

	params := res.ToParams(list)
	s.Equal([]string{testutils.TestLongGunID, "", testutils.TestHandGunID}, params)

	s.Equal(testutils.TestLongGunID+",,"+testutils.TestHandGunID, res.ToDBValue(list))
}

func (s *ResolverTestSuite) TestFromParams() {
	res, _ := s.registry.For(items.CategoryWeapon)

	s.Run("positions survive a stale id in the middle", func() {
		list, err := res.FromParams(testutils.TestLongGunID + ",item_gone," + testutils.TestHandGunID)
		s.Require().NoError(err)
		s.Require().Len(list, 3)
		s.Equal(testutils.TestLongGunID, list[0].ID)
		s.Nil(list[1])
		s.Equal(testutils.TestHandGunID, list[2].ID)
	})

	s.Run("wrong category is dropped", func() {
		list, err := res.FromParams(testutils.TestRing1ID + "," + testutils.TestMeleeID)
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Nil(list[0])
		s.Equal(testutils.TestMeleeID, list[1].ID)
	})

	s.Run("nothing valid resolves to ErrNoValidItems", func() {
		_, err := res.FromParams("item_gone,also_gone")
		s.ErrorIs(err, slots.ErrNoValidItems)
	})

	s.Run("empty input resolves to ErrNoValidItems", func() {
		_, err := res.FromParams("")
		s.ErrorIs(err, slots.ErrNoValidItems)
	})
}

func (s *ResolverTestSuite) TestFromDBValue() {
	res, _ := s.registry.For(items.CategoryRing)

	s.Run("explicit indices assign out of order", func() {
		list := res.FromDBValue([]builds.ItemRow{
			{Category: items.CategoryRing, ItemID: testutils.TestRing2ID, Index: builds.Index(3)},
			{Category: items.CategoryRing, ItemID: testutils.TestRing1ID, Index: builds.Index(0)},
		})
		s.Require().Len(list, 4)
		s.Equal(testutils.TestRing1ID, list[0].ID)
		s.Nil(list[1])
		s.Nil(list[2])
		s.Equal(testutils.TestRing2ID, list[3].ID)
	})

	s.Run("rows without an index append in order", func() {
		list := res.FromDBValue([]builds.ItemRow{
			{Category: items.CategoryRing, ItemID: testutils.TestRing1ID},
			{Category: items.CategoryRing, ItemID: testutils.TestRing2ID},
		})
		s.Require().Len(list, 2)
		s.Equal(testutils.TestRing1ID, list[0].ID)
		s.Equal(testutils.TestRing2ID, list[1].ID)
	})

	s.Run("unknown ids and negative indices are dropped", func() {
		list := res.FromDBValue([]builds.ItemRow{
			{Category: items.CategoryRing, ItemID: "item_gone", Index: builds.Index(0)},
			{Category: items.CategoryRing, ItemID: testutils.TestRing3ID, Index: builds.Index(-1)},
			{Category: items.CategoryRing, ItemID: testutils.TestRing4ID, Index: builds.Index(1)},
		})
		s.Require().Len(list, 2)
		s.Nil(list[0])
		s.Equal(testutils.TestRing4ID, list[1].ID)
	})

	s.Run("no rows yields nil", func() {
		s.Nil(res.FromDBValue(nil))
	})
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
