package loadout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remnantforge/builds-api/internal/errors"
	loadoutrepo "github.com/remnantforge/builds-api/internal/repositories/loadout"
	"github.com/remnantforge/builds-api/internal/testutils"
)

type RedisLoadoutTestSuite struct {
	suite.Suite
	repo    loadoutrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisLoadoutTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = loadoutrepo.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisLoadoutTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisLoadoutTestSuite) TestSet() {
	output, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 1, BuildID: "build_a"})
	s.Require().NoError(err)
	s.Empty(output.Previous)

	s.Run("replacing reports the previous build", func() {
		output, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 1, BuildID: "build_b"})
		s.Require().NoError(err)
		s.Equal("build_a", output.Previous)
	})

	s.Run("slot zero is out of range", func() {
		_, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 0, BuildID: "build_a"})
		s.Error(err)
		s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
	})

	s.Run("slot past the bank is out of range", func() {
		_, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: loadoutrepo.MaxSlots + 1, BuildID: "build_a"})
		s.Error(err)
		s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
	})

	s.Run("empty build id fails", func() {
		_, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 1})
		s.Error(err)
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	})
}

func (s *RedisLoadoutTestSuite) TestClear() {
	_, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 3, BuildID: "build_a"})
	s.Require().NoError(err)

	output, err := s.repo.Clear(s.ctx, loadoutrepo.ClearInput{UserID: "user_1", Slot: 3})
	s.Require().NoError(err)
	s.True(output.Cleared)

	s.Run("clearing an empty slot is a no-op", func() {
		output, err := s.repo.Clear(s.ctx, loadoutrepo.ClearInput{UserID: "user_1", Slot: 3})
		s.Require().NoError(err)
		s.False(output.Cleared)
	})
}

func (s *RedisLoadoutTestSuite) TestList() {
	_, err := s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 5, BuildID: "build_e"})
	s.Require().NoError(err)
	_, err = s.repo.Set(s.ctx, loadoutrepo.SetInput{UserID: "user_1", Slot: 2, BuildID: "build_b"})
	s.Require().NoError(err)

	output, err := s.repo.List(s.ctx, loadoutrepo.ListInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Equal(int32(2), output.Entries[0].Slot)
	s.Equal("build_b", output.Entries[0].BuildID)
	s.Equal(int32(5), output.Entries[1].Slot)
	s.Equal("build_e", output.Entries[1].BuildID)

	s.Run("user with no pins gets empty list", func() {
		output, err := s.repo.List(s.ctx, loadoutrepo.ListInput{UserID: "user_none"})
		s.Require().NoError(err)
		s.Empty(output.Entries)
	})
}

func TestRedisLoadoutTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLoadoutTestSuite))
}
