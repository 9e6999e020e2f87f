package builder_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/testutils"
)

type CodecTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	engine  *builder.Engine
}

func (s *CodecTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog()
	s.engine = builder.New(s.catalog)
}

func (s *CodecTestSuite) item(id string) *items.Item {
	it, ok := s.catalog.Get(id)
	s.Require().True(ok)
	return it
}

// populated returns a build exercising every slot shape: singles, indexed
// slots with holes, and traits with amounts.
func (s *CodecTestSuite) populated() *builds.BuildState {
	state := builds.NewBuildState()
	state.Name = "Bruiser"
	state.Description = "melee with backup"

	state.Items.Helm = s.item(testutils.TestHelmID)
	state.Items.Amulet = s.item(testutils.TestAmuletID)

	state.Items.Weapon[0] = s.item(testutils.TestLongGunID)
	state.Items.Weapon[2] = s.item(testutils.TestHandGunID)

	state.Items.Ring[1] = s.item(testutils.TestRing2ID)
	state.Items.Ring[3] = s.item(testutils.TestRing4ID)

	state.Items.Archetype[0] = s.item(testutils.TestSentinelID)

	state.Items.Trait = []builds.TraitLevel{
		{Item: s.item(testutils.TestMettleID), Amount: 5},
		{Item: s.item(testutils.TestHasteID), Amount: 10},
	}

	return state
}

func (s *CodecTestSuite) TestQueryStringEncode() {
	values := s.engine.EncodeToQueryString(s.populated())

	s.Equal("Bruiser", values.Get("name"))
	s.Equal(testutils.TestHelmID, values.Get("helm"))
	s.Equal(testutils.TestLongGunID+",,"+testutils.TestHandGunID, values.Get("weapon"))
	s.Equal(testutils.TestMettleID+";5,"+testutils.TestHasteID+";10", values.Get("trait"))

	s.Run("every category field is present even when empty", func() {
		for _, c := range items.Categories {
			s.True(values.Has(string(c)), "missing field %s", c)
		}
		s.Equal("", values.Get("torso"))
	})
}

func (s *CodecTestSuite) TestQueryStringRoundTrip() {
	original := s.populated()

	decoded := s.engine.DecodeFromQueryString(s.engine.EncodeToQueryString(original))

	s.Equal(original.Name, decoded.Name)
	s.Equal(original.Description, decoded.Description)
	s.Equal(original.Items.Helm, decoded.Items.Helm)
	s.Equal(original.Items.Amulet, decoded.Items.Amulet)
	s.Equal(original.Items.Weapon, decoded.Items.Weapon)
	s.Equal(original.Items.Ring, decoded.Items.Ring)
	s.Equal(original.Items.Archetype, decoded.Items.Archetype)
	s.Equal(original.Items.Trait, decoded.Items.Trait)
}

func (s *CodecTestSuite) TestQueryStringDecode() {
	s.Run("stale id keeps its neighbours' positions", func() {
		v := url.Values{}
		v.Set("weapon", testutils.TestLongGunID+",item_gone,"+testutils.TestHandGunID)

		out := s.engine.DecodeFromQueryString(v)
		s.Equal(testutils.TestLongGunID, out.Items.Weapon[0].ID)
		s.Nil(out.Items.Weapon[1])
		s.Equal(testutils.TestHandGunID, out.Items.Weapon[2].ID)
	})

	s.Run("field of nothing but stale ids leaves the slot empty", func() {
		v := url.Values{}
		v.Set("ring", "item_gone,also_gone")

		out := s.engine.DecodeFromQueryString(v)
		for _, it := range out.Items.Ring {
			s.Nil(it)
		}
	})

	s.Run("wrong-category ids are dropped", func() {
		v := url.Values{}
		v.Set("helm", testutils.TestRing1ID)

		out := s.engine.DecodeFromQueryString(v)
		s.Nil(out.Items.Helm)
	})

	s.Run("overlong field truncates at the slot capacity", func() {
		v := url.Values{}
		v.Set("archetype", testutils.TestSentinelID+","+testutils.TestWayfarerID+","+testutils.TestAlchemistID)

		out := s.engine.DecodeFromQueryString(v)
		s.Require().Len(out.Items.Archetype, builds.SlotCountArchetype)
		s.Equal(testutils.TestSentinelID, out.Items.Archetype[0].ID)
		s.Equal(testutils.TestWayfarerID, out.Items.Archetype[1].ID)
	})

	s.Run("missing name keeps the default", func() {
		out := s.engine.DecodeFromQueryString(url.Values{})
		s.Equal(builds.DefaultBuildName, out.Name)
	})
}

func (s *CodecTestSuite) TestQueryStringDecodeIsIdempotent() {
	v := url.Values{}
	v.Set("name", "Stale Link")
	v.Set("weapon", "item_gone,"+testutils.TestMeleeID)
	v.Set("trait", testutils.TestMettleID+";7,trait_gone;3")

	once := s.engine.DecodeFromQueryString(v)
	twice := s.engine.DecodeFromQueryString(s.engine.EncodeToQueryString(once))

	s.Equal(once.Items, twice.Items)
	s.Equal(once.Name, twice.Name)
}

func (s *CodecTestSuite) TestRecordEncode() {
	rec := s.engine.EncodeToRecord(s.populated())

	s.Equal(testutils.TestHelmID, rec.HelmItemID)
	s.Empty(rec.TorsoItemID)
	s.Equal(testutils.TestAmuletID, rec.AmuletItemID)

	s.Run("only occupied positions produce rows", func() {
		weaponRows := rec.RowsFor(items.CategoryWeapon)
		s.Require().Len(weaponRows, 2)
		s.Equal(int32(0), *weaponRows[0].Index)
		s.Equal(int32(2), *weaponRows[1].Index)
	})

	s.Run("trait rows carry their amounts", func() {
		traitRows := rec.RowsFor(items.CategoryTrait)
		s.Require().Len(traitRows, 2)
		s.Equal(testutils.TestMettleID, traitRows[0].ItemID)
		s.Equal(int32(5), traitRows[0].Amount)
	})
}

func (s *CodecTestSuite) TestRecordRoundTrip() {
	original := s.populated()
	original.ID = "build_1"
	original.CreatedByID = "user_1"
	original.TotalUpvotes = 3

	decoded := s.engine.DecodeFromRecord(s.engine.EncodeToRecord(original))

	s.Equal(original.ID, decoded.ID)
	s.Equal(original.TotalUpvotes, decoded.TotalUpvotes)
	s.Equal(original.Items, decoded.Items)
}

func (s *CodecTestSuite) TestRecordDecode() {
	s.Run("rows assign by index regardless of order", func() {
		rec := &builds.BuildRecord{
			ID: "build_1",
			Items: []builds.ItemRow{
				{Category: items.CategoryRing, ItemID: testutils.TestRing2ID, Index: builds.Index(3)},
				{Category: items.CategoryRing, ItemID: testutils.TestRing1ID, Index: builds.Index(0)},
			},
		}
		out := s.engine.DecodeFromRecord(rec)
		s.Equal(testutils.TestRing1ID, out.Items.Ring[0].ID)
		s.Equal(testutils.TestRing2ID, out.Items.Ring[3].ID)
	})

	s.Run("legacy rows without indices fill in row order", func() {
		rec := &builds.BuildRecord{
			ID: "build_1",
			Items: []builds.ItemRow{
				{Category: items.CategoryRing, ItemID: testutils.TestRing1ID},
				{Category: items.CategoryRing, ItemID: testutils.TestRing2ID},
			},
		}
		out := s.engine.DecodeFromRecord(rec)
		s.Equal(testutils.TestRing1ID, out.Items.Ring[0].ID)
		s.Equal(testutils.TestRing2ID, out.Items.Ring[1].ID)
	})

	s.Run("stale references degrade instead of failing", func() {
		rec := &builds.BuildRecord{
			ID:         "build_1",
			HelmItemID: "item_gone",
			Items: []builds.ItemRow{
				{Category: items.CategoryWeapon, ItemID: "item_gone", Index: builds.Index(0)},
				{Category: items.CategoryWeapon, ItemID: testutils.TestMeleeID, Index: builds.Index(1)},
			},
		}
		out := s.engine.DecodeFromRecord(rec)
		s.Nil(out.Items.Helm)
		s.Nil(out.Items.Weapon[0])
		s.Equal(testutils.TestMeleeID, out.Items.Weapon[1].ID)
	})

	s.Run("single slot with wrong category id decodes empty", func() {
		rec := &builds.BuildRecord{ID: "build_1", HelmItemID: testutils.TestRing1ID}
		out := s.engine.DecodeFromRecord(rec)
		s.Nil(out.Items.Helm)
	})
}

func TestCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}
