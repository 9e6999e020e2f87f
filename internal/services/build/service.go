// Package build defines the interface for build operations
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/remnantforge/builds-api/internal/services/build Service

import (
	"context"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/repositories/loadout"
)

// Service defines the interface for build operations
type Service interface {
	// Build lifecycle
	CreateBuild(ctx context.Context, input *CreateBuildInput) (*CreateBuildOutput, error)
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)

	// Editing
	EditBuild(ctx context.Context, input *EditBuildInput) (*EditBuildOutput, error)
	UpdateTraitAmount(ctx context.Context, input *UpdateTraitAmountInput) (*UpdateTraitAmountOutput, error)

	// Voting
	UpvoteBuild(ctx context.Context, input *UpvoteBuildInput) (*UpvoteBuildOutput, error)
	RemoveUpvote(ctx context.Context, input *RemoveUpvoteInput) (*RemoveUpvoteOutput, error)

	// Loadouts
	SetLoadoutSlot(ctx context.Context, input *SetLoadoutSlotInput) (*SetLoadoutSlotOutput, error)
	ClearLoadoutSlot(ctx context.Context, input *ClearLoadoutSlotInput) (*ClearLoadoutSlotOutput, error)
	ListLoadouts(ctx context.Context, input *ListLoadoutsInput) (*ListLoadoutsOutput, error)

	// Catalog
	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)
}

// Build lifecycle types

// CreateBuildInput defines the request for creating a build. State is
// optional; a nil State creates an empty build.
type CreateBuildInput struct {
	UserID          string
	UserDisplayName string
	State           *builds.BuildState
}

// CreateBuildOutput defines the response for creating a build
type CreateBuildOutput struct {
	Record *builds.BuildRecord
	State  *builds.BuildState
}

// GetBuildInput defines the request for getting a build
type GetBuildInput struct {
	BuildID string
}

// GetBuildOutput defines the response for getting a build
type GetBuildOutput struct {
	Record *builds.BuildRecord
	State  *builds.BuildState
	// IsPopular reports whether the build's upvotes cross the popularity
	// threshold
	IsPopular bool
}

// DeleteBuildInput defines the request for deleting a build
type DeleteBuildInput struct {
	BuildID string
	UserID  string
}

// DeleteBuildOutput defines the response for deleting a build
type DeleteBuildOutput struct{}

// ListBuildsInput defines the request for listing a user's builds
type ListBuildsInput struct {
	UserID string
}

// ListBuildsOutput defines the response for listing a user's builds
type ListBuildsOutput struct {
	Records []*builds.BuildRecord
}

// Editing types

// EditBuildInput defines the request for applying slot mutations to a
// stored build. Mutations apply in order; each one changes exactly one
// slot position.
type EditBuildInput struct {
	BuildID   string
	UserID    string
	Mutations []builder.MutationRequest
}

// EditBuildOutput defines the response for editing a build
type EditBuildOutput struct {
	Record *builds.BuildRecord
	State  *builds.BuildState
}

// UpdateTraitAmountInput defines the request for setting one trait's amount
type UpdateTraitAmountInput struct {
	BuildID string
	UserID  string
	TraitID string
	// Amount is the raw user-supplied value. Non-numeric input resets the
	// trait to its default amount.
	Amount string
}

// UpdateTraitAmountOutput defines the response for setting a trait amount
type UpdateTraitAmountOutput struct {
	Record *builds.BuildRecord
	State  *builds.BuildState
}

// Voting types

// UpvoteBuildInput defines the request for upvoting a build
type UpvoteBuildInput struct {
	BuildID string
	UserID  string
}

// UpvoteBuildOutput defines the response for upvoting a build
type UpvoteBuildOutput struct {
	Added        bool
	TotalUpvotes int32
	IsPopular    bool
}

// RemoveUpvoteInput defines the request for withdrawing an upvote
type RemoveUpvoteInput struct {
	BuildID string
	UserID  string
}

// RemoveUpvoteOutput defines the response for withdrawing an upvote
type RemoveUpvoteOutput struct {
	Removed      bool
	TotalUpvotes int32
}

// Loadout types

// SetLoadoutSlotInput defines the request for pinning a build to a slot
type SetLoadoutSlotInput struct {
	UserID  string
	Slot    int32
	BuildID string
}

// SetLoadoutSlotOutput defines the response for pinning a build
type SetLoadoutSlotOutput struct {
	// Previous is the build id the slot held before, empty if none
	Previous string
}

// ClearLoadoutSlotInput defines the request for unpinning a slot
type ClearLoadoutSlotInput struct {
	UserID string
	Slot   int32
}

// ClearLoadoutSlotOutput defines the response for unpinning a slot
type ClearLoadoutSlotOutput struct {
	Cleared bool
}

// ListLoadoutsInput defines the request for listing a user's loadouts
type ListLoadoutsInput struct {
	UserID string
}

// ListLoadoutsOutput defines the response for listing a user's loadouts
type ListLoadoutsOutput struct {
	Entries []loadout.Entry
}

// Catalog types

// SearchItemsInput defines the request for fuzzy item search. Category
// is optional; empty means all categories.
type SearchItemsInput struct {
	Query    string
	Category items.Category
	Limit    int
}

// SearchItemsOutput defines the response for fuzzy item search
type SearchItemsOutput struct {
	Items []*items.Item
}
