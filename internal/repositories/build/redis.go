package build

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/errors"
	redisclient "github.com/remnantforge/builds-api/internal/redis"
)

const (
	buildKeyPrefix  = "build:"
	userSetPrefix   = "build:user:"
	votesSetPrefix  = "build:votes:"

	// Error messages
	errRecordNil     = "record cannot be nil"
	errBuildIDEmpty  = "build ID cannot be empty"
	errUserIDEmpty   = "user ID cannot be empty"
	errCreatorEmpty  = "created by ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed build repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if input.Record.CreatedByID == "" {
		return nil, errors.InvalidArgument(errCreatorEmpty)
	}

	key := buildKeyPrefix + input.Record.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.Record.ID)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, userSetPrefix+input.Record.CreatedByID, input.Record.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create build")
	}

	return &CreateOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	key := buildKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get build")
	}

	var record builds.BuildRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	key := buildKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("build with ID %s not found", input.Record.ID)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update build")
	}

	return &UpdateOutput{Record: input.Record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	// Fetch first to learn the creator for set cleanup
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, buildKeyPrefix+input.ID)
	pipe.Del(ctx, votesSetPrefix+input.ID)
	if getOutput.Record.CreatedByID != "" {
		pipe.SRem(ctx, userSetPrefix+getOutput.Record.CreatedByID, input.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete build")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByUser(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, userSetPrefix+input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list builds for user")
	}

	records := make([]*builds.BuildRecord, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A build deleted mid-listing leaves a dangling set member
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, userSetPrefix+input.UserID, id)
				continue
			}
			return nil, err
		}
		records = append(records, getOutput.Record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].UpdatedAt != records[j].UpdatedAt {
			return records[i].UpdatedAt > records[j].UpdatedAt
		}
		return records[i].ID < records[j].ID
	})

	return &ListByUserOutput{Records: records}, nil
}

func (r *redisRepository) AddUpvote(ctx context.Context, input AddUpvoteInput) (*AddUpvoteOutput, error) {
	if input.BuildID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.BuildID})
	if err != nil {
		return nil, err
	}
	record := getOutput.Record

	added, err := r.client.SAdd(ctx, votesSetPrefix+input.BuildID, input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record upvote")
	}
	if added == 0 {
		return &AddUpvoteOutput{Added: false, TotalUpvotes: record.TotalUpvotes}, nil
	}

	record.TotalUpvotes++
	if _, err := r.Update(ctx, UpdateInput{Record: record}); err != nil {
		return nil, err
	}

	return &AddUpvoteOutput{Added: true, TotalUpvotes: record.TotalUpvotes}, nil
}

func (r *redisRepository) RemoveUpvote(ctx context.Context, input RemoveUpvoteInput) (*RemoveUpvoteOutput, error) {
	if input.BuildID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.BuildID})
	if err != nil {
		return nil, err
	}
	record := getOutput.Record

	removed, err := r.client.SRem(ctx, votesSetPrefix+input.BuildID, input.UserID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to withdraw upvote")
	}
	if removed == 0 {
		return &RemoveUpvoteOutput{Removed: false, TotalUpvotes: record.TotalUpvotes}, nil
	}

	if record.TotalUpvotes > 0 {
		record.TotalUpvotes--
	}
	if _, err := r.Update(ctx, UpdateInput{Record: record}); err != nil {
		return nil, err
	}

	return &RemoveUpvoteOutput{Removed: true, TotalUpvotes: record.TotalUpvotes}, nil
}
