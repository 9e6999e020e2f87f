// Package build defines the interface for build persistence. Saves are
// whole-record overwrites: concurrent editors of the same build resolve
// last-write-wins at the record level.
package build

//go:generate mockgen -destination=mock/mock_repository.go -package=buildmock github.com/remnantforge/builds-api/internal/repositories/build Repository

import (
	"context"

	"github.com/remnantforge/builds-api/internal/entities/builds"
)

// Repository defines the interface for build persistence
type Repository interface {
	// Create stores a new build record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists when the id is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing build record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a build record, its creator listing, and its votes
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByUser returns all builds created by one user, newest first
	// Returns errors.InvalidArgument for empty user IDs
	// Returns errors.Internal for storage failures
	ListByUser(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error)

	// AddUpvote records one user's upvote on a build. Voting twice is not
	// an error; Added reports whether the vote was new
	// Returns errors.NotFound if the build doesn't exist
	AddUpvote(ctx context.Context, input AddUpvoteInput) (*AddUpvoteOutput, error)

	// RemoveUpvote withdraws one user's upvote on a build. Removed reports
	// whether a vote existed
	// Returns errors.NotFound if the build doesn't exist
	RemoveUpvote(ctx context.Context, input RemoveUpvoteInput) (*RemoveUpvoteOutput, error)
}

// CreateInput defines the input for storing a new build
type CreateInput struct {
	Record *builds.BuildRecord
}

// CreateOutput defines the output for storing a new build
type CreateOutput struct {
	Record *builds.BuildRecord
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	Record *builds.BuildRecord
}

// UpdateInput defines the input for updating a build
type UpdateInput struct {
	Record *builds.BuildRecord
}

// UpdateOutput defines the output for updating a build
type UpdateOutput struct {
	Record *builds.BuildRecord
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct{}

// ListByUserInput defines the input for listing a user's builds
type ListByUserInput struct {
	UserID string
}

// ListByUserOutput defines the output for listing a user's builds
type ListByUserOutput struct {
	Records []*builds.BuildRecord
}

// AddUpvoteInput defines the input for recording an upvote
type AddUpvoteInput struct {
	BuildID string
	UserID  string
}

// AddUpvoteOutput defines the output for recording an upvote
type AddUpvoteOutput struct {
	Added        bool
	TotalUpvotes int32
}

// RemoveUpvoteInput defines the input for withdrawing an upvote
type RemoveUpvoteInput struct {
	BuildID string
	UserID  string
}

// RemoveUpvoteOutput defines the output for withdrawing an upvote
type RemoveUpvoteOutput struct {
	Removed      bool
	TotalUpvotes int32
}
