package build_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/errors"
	buildrepo "github.com/remnantforge/builds-api/internal/repositories/build"
	"github.com/remnantforge/builds-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    buildrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = buildrepo.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	record := testutils.CreateTestBuildRecord("build_1", "user_1")

	output, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: record})
	s.Require().NoError(err)
	s.Equal("build_1", output.Record.ID)

	s.Run("duplicate id fails", func() {
		_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: record})
		s.Error(err)
		s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
	})

	s.Run("nil record fails", func() {
		_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{})
		s.Error(err)
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	})

	s.Run("missing creator fails", func() {
		bad := testutils.CreateTestBuildRecord("build_2", "")
		_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: bad})
		s.Error(err)
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	record := testutils.CreateTestBuildRecord("build_1", "user_1")
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: record})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_1"})
	s.Require().NoError(err)
	s.Equal("Test Build", output.Record.Name)
	s.Len(output.Record.Items, 3)

	s.Run("missing build returns not found", func() {
		_, err := s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_nope"})
		s.Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id fails", func() {
		_, err := s.repo.Get(s.ctx, buildrepo.GetInput{})
		s.Error(err)
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	record := testutils.CreateTestBuildRecord("build_1", "user_1")
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: record})
	s.Require().NoError(err)

	record.Name = "Renamed"
	record.UpdatedAt = 1700001000
	_, err = s.repo.Update(s.ctx, buildrepo.UpdateInput{Record: record})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_1"})
	s.Require().NoError(err)
	s.Equal("Renamed", output.Record.Name)
	s.Equal(int64(1700001000), output.Record.UpdatedAt)

	s.Run("missing build returns not found", func() {
		ghost := testutils.CreateTestBuildRecord("build_ghost", "user_1")
		_, err := s.repo.Update(s.ctx, buildrepo.UpdateInput{Record: ghost})
		s.Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	record := testutils.CreateTestBuildRecord("build_1", "user_1")
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: record})
	s.Require().NoError(err)

	_, err = s.repo.AddUpvote(s.ctx, buildrepo.AddUpvoteInput{BuildID: "build_1", UserID: "voter_1"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, buildrepo.DeleteInput{ID: "build_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, buildrepo.GetInput{ID: "build_1"})
	s.True(errors.IsNotFound(err))

	listOutput, err := s.repo.ListByUser(s.ctx, buildrepo.ListByUserInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Empty(listOutput.Records)

	s.Run("deleting twice returns not found", func() {
		_, err := s.repo.Delete(s.ctx, buildrepo.DeleteInput{ID: "build_1"})
		s.Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestListByUser() {
	older := testutils.CreateTestBuildRecord("build_old", "user_1")
	older.UpdatedAt = 1700000100
	newer := testutils.CreateTestBuildRecord("build_new", "user_1")
	newer.UpdatedAt = 1700000900
	other := testutils.CreateTestBuildRecord("build_other", "user_2")

	for _, rec := range []*builds.BuildRecord{older, newer, other} {
		_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: rec})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListByUser(s.ctx, buildrepo.ListByUserInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 2)
	s.Equal("build_new", output.Records[0].ID)
	s.Equal("build_old", output.Records[1].ID)

	s.Run("user with no builds gets empty list", func() {
		output, err := s.repo.ListByUser(s.ctx, buildrepo.ListByUserInput{UserID: "user_none"})
		s.Require().NoError(err)
		s.Empty(output.Records)
	})
}

func (s *RedisRepositoryTestSuite) TestUpvotes() {
	record := testutils.CreateTestBuildRecord("build_1", "user_1")
	_, err := s.repo.Create(s.ctx, buildrepo.CreateInput{Record: record})
	s.Require().NoError(err)

	addOutput, err := s.repo.AddUpvote(s.ctx, buildrepo.AddUpvoteInput{BuildID: "build_1", UserID: "voter_1"})
	s.Require().NoError(err)
	s.True(addOutput.Added)
	s.Equal(int32(1), addOutput.TotalUpvotes)

	s.Run("same voter counts once", func() {
		output, err := s.repo.AddUpvote(s.ctx, buildrepo.AddUpvoteInput{BuildID: "build_1", UserID: "voter_1"})
		s.Require().NoError(err)
		s.False(output.Added)
		s.Equal(int32(1), output.TotalUpvotes)
	})

	s.Run("second voter increments", func() {
		output, err := s.repo.AddUpvote(s.ctx, buildrepo.AddUpvoteInput{BuildID: "build_1", UserID: "voter_2"})
		s.Require().NoError(err)
		s.True(output.Added)
		s.Equal(int32(2), output.TotalUpvotes)
	})

	s.Run("remove decrements", func() {
		output, err := s.repo.RemoveUpvote(s.ctx, buildrepo.RemoveUpvoteInput{BuildID: "build_1", UserID: "voter_1"})
		s.Require().NoError(err)
		s.True(output.Removed)
		s.Equal(int32(1), output.TotalUpvotes)
	})

	s.Run("removing a vote that was never cast is a no-op", func() {
		output, err := s.repo.RemoveUpvote(s.ctx, buildrepo.RemoveUpvoteInput{BuildID: "build_1", UserID: "voter_99"})
		s.Require().NoError(err)
		s.False(output.Removed)
		s.Equal(int32(1), output.TotalUpvotes)
	})

	s.Run("voting on a missing build fails", func() {
		_, err := s.repo.AddUpvote(s.ctx, buildrepo.AddUpvoteInput{BuildID: "build_nope", UserID: "voter_1"})
		s.Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
