package builder_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/testutils"
)

type TraitAmountTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	engine  *builder.Engine
}

func (s *TraitAmountTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog()
	s.engine = builder.New(s.catalog)
}

func (s *TraitAmountTestSuite) item(id string) *items.Item {
	it, ok := s.catalog.Get(id)
	s.Require().True(ok)
	return it
}

// stateWith builds a state with the given traits equipped, bypassing the
// mutation path so tests can start from amounts the clamp would normally
// forbid.
func (s *TraitAmountTestSuite) stateWith(traits ...builds.TraitLevel) *builds.BuildState {
	state := builds.NewBuildState()
	state.Items.Trait = traits
	return state
}

func (s *TraitAmountTestSuite) TestSetAmount() {
	state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 10})

	out := s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "7")
	s.Equal(int32(7), out.Items.Trait[0].Amount)
	s.Equal(int32(10), state.Items.Trait[0].Amount, "input state must stay untouched")
}

func (s *TraitAmountTestSuite) TestClamping() {
	s.Run("above the cap clamps down", func() {
		state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 5})
		out := s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "42")
		s.Equal(builds.MaxTraitAmount, out.Items.Trait[0].Amount)
	})

	s.Run("zero and negatives clamp to the floor", func() {
		state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 5})
		out := s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "0")
		s.Equal(builds.MinTraitAmount, out.Items.Trait[0].Amount)

		out = s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "-3")
		s.Equal(builds.MinTraitAmount, out.Items.Trait[0].Amount)
	})

	s.Run("an archetype link raises the floor", func() {
		state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 10})
		state.Items.Archetype[0] = s.item(testutils.TestSentinelID) // links Mettle at 5

		out := s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "2")
		s.Equal(int32(5), out.Items.Trait[0].Amount)
	})

	s.Run("removing the archetype drops its floor", func() {
		state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 5})
		state.Items.Archetype[0] = s.item(testutils.TestSentinelID)

		state = s.engine.ApplyMutation(state, builder.MutationRequest{
			Category: items.CategoryArchetype,
			Value:    "",
			Index:    builder.At(0),
		})

		out := s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "1")
		s.Equal(int32(1), out.Items.Trait[0].Amount)
	})
}

func (s *TraitAmountTestSuite) TestNonNumericResetsToDefault() {
	state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 4})

	out := s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "lots")
	s.Equal(builds.DefaultTraitAmount, out.Items.Trait[0].Amount)

	out = s.engine.UpdateTraitAmount(state, testutils.TestMettleID, "")
	s.Equal(builds.DefaultTraitAmount, out.Items.Trait[0].Amount)
}

func (s *TraitAmountTestSuite) TestRevalidatesEveryTrait() {
	// Mettle sits below the minimum Sentinel enforces; editing Haste must
	// pull Mettle back up too.
	state := s.stateWith(
		builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 3},
		builds.TraitLevel{Item: s.item(testutils.TestHasteID), Amount: 8},
	)
	state.Items.Archetype[0] = s.item(testutils.TestSentinelID)

	out := s.engine.UpdateTraitAmount(state, testutils.TestHasteID, "6")
	s.Equal(int32(5), out.Items.Trait[0].Amount)
	s.Equal(int32(6), out.Items.Trait[1].Amount)
}

func (s *TraitAmountTestSuite) TestUnequippedTraitIsNoOp() {
	state := s.stateWith(builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 10})

	out := s.engine.UpdateTraitAmount(state, testutils.TestHasteID, "5")
	s.Same(state, out)
}

func (s *TraitAmountTestSuite) TestNilState() {
	s.Nil(s.engine.UpdateTraitAmount(nil, testutils.TestMettleID, "5"))
}

func (s *TraitAmountTestSuite) TestTotalTraitAmount() {
	state := s.stateWith(
		builds.TraitLevel{Item: s.item(testutils.TestMettleID), Amount: 10},
		builds.TraitLevel{Item: s.item(testutils.TestHasteID), Amount: 7},
	)
	s.Equal(int32(17), s.engine.TotalTraitAmount(state))
	s.Equal(int32(0), s.engine.TotalTraitAmount(builds.NewBuildState()))
}

func TestTraitAmountTestSuite(t *testing.T) {
	suite.Run(t, new(TraitAmountTestSuite))
}
