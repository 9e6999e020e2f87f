package build

import (
	"context"
	"sort"
	"sync"

	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*builds.BuildRecord
	votes map[string]map[string]struct{}
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*builds.BuildRecord),
		votes: make(map[string]map[string]struct{}),
	}
}

// Create stores a new build record
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if input.Record.CreatedByID == "" {
		return nil, errors.InvalidArgument(errCreatorEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Record.ID]; exists {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.Record.ID)
	}

	r.store[input.Record.ID] = input.Record.Clone()

	return &CreateOutput{Record: input.Record}, nil
}

// Get retrieves a build record by ID
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Record: record.Clone()}, nil
}

// Update overwrites an existing build record
func (r *InMemoryRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Record.ID]; !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.Record.ID)
	}

	r.store[input.Record.ID] = input.Record.Clone()

	return &UpdateOutput{Record: input.Record}, nil
}

// Delete removes a build record and its votes
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.ID)
	}

	delete(r.store, input.ID)
	delete(r.votes, input.ID)

	return &DeleteOutput{}, nil
}

// ListByUser returns all builds created by one user, newest first
func (r *InMemoryRepository) ListByUser(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*builds.BuildRecord, 0)
	for _, record := range r.store {
		if record.CreatedByID == input.UserID {
			records = append(records, record.Clone())
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].UpdatedAt != records[j].UpdatedAt {
			return records[i].UpdatedAt > records[j].UpdatedAt
		}
		return records[i].ID < records[j].ID
	})

	return &ListByUserOutput{Records: records}, nil
}

// AddUpvote records one user's upvote on a build
func (r *InMemoryRepository) AddUpvote(ctx context.Context, input AddUpvoteInput) (*AddUpvoteOutput, error) {
	if input.BuildID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.store[input.BuildID]
	if !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.BuildID)
	}

	voters := r.votes[input.BuildID]
	if voters == nil {
		voters = make(map[string]struct{})
		r.votes[input.BuildID] = voters
	}
	if _, voted := voters[input.UserID]; voted {
		return &AddUpvoteOutput{Added: false, TotalUpvotes: record.TotalUpvotes}, nil
	}

	voters[input.UserID] = struct{}{}
	record.TotalUpvotes++

	return &AddUpvoteOutput{Added: true, TotalUpvotes: record.TotalUpvotes}, nil
}

// RemoveUpvote withdraws one user's upvote on a build
func (r *InMemoryRepository) RemoveUpvote(ctx context.Context, input RemoveUpvoteInput) (*RemoveUpvoteOutput, error) {
	if input.BuildID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.store[input.BuildID]
	if !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.BuildID)
	}

	voters := r.votes[input.BuildID]
	if _, voted := voters[input.UserID]; !voted {
		return &RemoveUpvoteOutput{Removed: false, TotalUpvotes: record.TotalUpvotes}, nil
	}

	delete(voters, input.UserID)
	if record.TotalUpvotes > 0 {
		record.TotalUpvotes--
	}

	return &RemoveUpvoteOutput{Removed: true, TotalUpvotes: record.TotalUpvotes}, nil
}
