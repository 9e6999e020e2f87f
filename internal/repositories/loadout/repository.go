// Package loadout persists each user's pinned build slots. A user has a
// fixed bank of numbered slots and may pin one build id into each.
package loadout

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutmock github.com/remnantforge/builds-api/internal/repositories/loadout Repository

import (
	"context"
)

// MaxSlots is the number of loadout slots each user has. Slots are
// numbered 1 through MaxSlots.
const MaxSlots = 8

// Repository defines the interface for loadout persistence
type Repository interface {
	// Set pins a build into one of the user's loadout slots, replacing
	// whatever was pinned there
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.OutOfRange for slot numbers outside 1..MaxSlots
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Clear unpins a loadout slot. Clearing an empty slot is a no-op
	// Returns errors.InvalidArgument for empty user IDs
	// Returns errors.OutOfRange for slot numbers outside 1..MaxSlots
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)

	// List returns every pinned slot for a user, ordered by slot number
	// Returns errors.InvalidArgument for empty user IDs
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// Entry is one pinned loadout slot
type Entry struct {
	Slot    int32
	BuildID string
}

// SetInput defines the input for pinning a build
type SetInput struct {
	UserID  string
	Slot    int32
	BuildID string
}

// SetOutput defines the output for pinning a build
type SetOutput struct {
	// Previous is the build id the slot held before, empty if none
	Previous string
}

// ClearInput defines the input for unpinning a slot
type ClearInput struct {
	UserID string
	Slot   int32
}

// ClearOutput defines the output for unpinning a slot
type ClearOutput struct {
	// Cleared reports whether the slot held a build
	Cleared bool
}

// ListInput defines the input for listing a user's loadouts
type ListInput struct {
	UserID string
}

// ListOutput defines the output for listing a user's loadouts
type ListOutput struct {
	Entries []Entry
}
