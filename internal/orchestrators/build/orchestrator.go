// Package build implements the build orchestrator
package build

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	"github.com/remnantforge/builds-api/internal/errors"
	"github.com/remnantforge/builds-api/internal/pkg/clock"
	"github.com/remnantforge/builds-api/internal/pkg/idgen"
	buildrepo "github.com/remnantforge/builds-api/internal/repositories/build"
	loadoutrepo "github.com/remnantforge/builds-api/internal/repositories/loadout"
	buildservice "github.com/remnantforge/builds-api/internal/services/build"
)

// DefaultCacheSize is the decoded-build cache capacity when the config
// does not set one.
const DefaultCacheSize = 128

// Config holds the dependencies for the build orchestrator
type Config struct {
	BuildRepo   buildrepo.Repository
	LoadoutRepo loadoutrepo.Repository
	Engine      *builder.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// CacheSize caps the decoded-build LRU cache. Zero means
	// DefaultCacheSize.
	CacheSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.LoadoutRepo == nil {
		vb.RequiredField("LoadoutRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the build.Service interface
type Orchestrator struct {
	buildRepo   buildrepo.Repository
	loadoutRepo loadoutrepo.Repository
	engine      *builder.Engine
	idGen       idgen.Generator
	clock       clock.Clock

	// stateCache holds decoded slot state keyed by id and updated-at, so
	// an edit naturally invalidates its predecessor. Metadata is never
	// served from the cache; it is re-copied from the record on every hit.
	stateCache *lru.Cache
}

// New creates a new build orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create state cache")
	}

	return &Orchestrator{
		buildRepo:   cfg.BuildRepo,
		loadoutRepo: cfg.LoadoutRepo,
		engine:      cfg.Engine,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		stateCache:  cache,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ buildservice.Service = (*Orchestrator)(nil)

// Build lifecycle methods

// CreateBuild stores a new build owned by the given user
func (o *Orchestrator) CreateBuild(ctx context.Context, input *buildservice.CreateBuildInput) (*buildservice.CreateBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("userID", input.UserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state := input.State
	if state == nil {
		state = builds.NewBuildState()
	}
	state = state.Clone()

	now := o.clock.Now().Unix()
	state.ID = o.idGen.Generate()
	state.CreatedByID = input.UserID
	state.CreatedByDisplayName = input.UserDisplayName
	state.CreatedAt = now
	state.UpdatedAt = now
	state.TotalUpvotes = 0

	record := o.engine.EncodeToRecord(state)
	if _, err := o.buildRepo.Create(ctx, buildrepo.CreateInput{Record: record}); err != nil {
		return nil, err
	}

	o.stateCache.Add(cacheKey(record), state.Clone())

	return &buildservice.CreateBuildOutput{Record: record, State: state}, nil
}

// GetBuild retrieves a build, decoding its slots against the catalog
func (o *Orchestrator) GetBuild(ctx context.Context, input *buildservice.GetBuildInput) (*buildservice.GetBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, err
	}
	record := getOutput.Record

	state := o.loadState(record)

	return &buildservice.GetBuildOutput{
		Record:    record,
		State:     state,
		IsPopular: record.TotalUpvotes >= builder.PopularVoteThreshold,
	}, nil
}

// DeleteBuild removes a build owned by the given user
func (o *Orchestrator) DeleteBuild(ctx context.Context, input *buildservice.DeleteBuildInput) (*buildservice.DeleteBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, err := o.getOwned(ctx, input.BuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := o.buildRepo.Delete(ctx, buildrepo.DeleteInput{ID: input.BuildID}); err != nil {
		return nil, err
	}

	o.stateCache.Remove(cacheKey(record))

	return &buildservice.DeleteBuildOutput{}, nil
}

// ListBuilds returns all builds created by one user, newest first
func (o *Orchestrator) ListBuilds(ctx context.Context, input *buildservice.ListBuildsInput) (*buildservice.ListBuildsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.buildRepo.ListByUser(ctx, buildrepo.ListByUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &buildservice.ListBuildsOutput{Records: listOutput.Records}, nil
}

// Editing methods

// EditBuild applies slot mutations to a stored build and persists the result
func (o *Orchestrator) EditBuild(ctx context.Context, input *buildservice.EditBuildInput) (*buildservice.EditBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Mutations) == 0 {
		return nil, errors.InvalidArgument("at least one mutation is required")
	}

	record, err := o.getOwned(ctx, input.BuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	state := o.loadState(record)
	for _, m := range input.Mutations {
		state = o.engine.ApplyMutation(state, m)
	}

	return o.saveEdited(ctx, state)
}

// UpdateTraitAmount sets one equipped trait's amount, re-clamping every
// trait against the equipped archetypes
func (o *Orchestrator) UpdateTraitAmount(ctx context.Context, input *buildservice.UpdateTraitAmountInput) (*buildservice.UpdateTraitAmountOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("traitID", input.TraitID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.getOwned(ctx, input.BuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	state := o.loadState(record)
	state = o.engine.UpdateTraitAmount(state, input.TraitID, input.Amount)

	editOutput, err := o.saveEdited(ctx, state)
	if err != nil {
		return nil, err
	}

	return &buildservice.UpdateTraitAmountOutput{Record: editOutput.Record, State: editOutput.State}, nil
}

// Voting methods

// UpvoteBuild records one user's upvote
func (o *Orchestrator) UpvoteBuild(ctx context.Context, input *buildservice.UpvoteBuildInput) (*buildservice.UpvoteBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	voteOutput, err := o.buildRepo.AddUpvote(ctx, buildrepo.AddUpvoteInput{
		BuildID: input.BuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &buildservice.UpvoteBuildOutput{
		Added:        voteOutput.Added,
		TotalUpvotes: voteOutput.TotalUpvotes,
		IsPopular:    voteOutput.TotalUpvotes >= builder.PopularVoteThreshold,
	}, nil
}

// RemoveUpvote withdraws one user's upvote
func (o *Orchestrator) RemoveUpvote(ctx context.Context, input *buildservice.RemoveUpvoteInput) (*buildservice.RemoveUpvoteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	voteOutput, err := o.buildRepo.RemoveUpvote(ctx, buildrepo.RemoveUpvoteInput{
		BuildID: input.BuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &buildservice.RemoveUpvoteOutput{
		Removed:      voteOutput.Removed,
		TotalUpvotes: voteOutput.TotalUpvotes,
	}, nil
}

// Loadout methods

// SetLoadoutSlot pins a build into one of the user's loadout slots. The
// build must exist and be visible to the user: public, or their own.
func (o *Orchestrator) SetLoadoutSlot(ctx context.Context, input *buildservice.SetLoadoutSlotInput) (*buildservice.SetLoadoutSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, err
	}
	record := getOutput.Record

	if !record.IsPublic && record.CreatedByID != input.UserID {
		return nil, errors.PermissionDenied("build is private")
	}

	setOutput, err := o.loadoutRepo.Set(ctx, loadoutrepo.SetInput{
		UserID:  input.UserID,
		Slot:    input.Slot,
		BuildID: input.BuildID,
	})
	if err != nil {
		return nil, err
	}

	return &buildservice.SetLoadoutSlotOutput{Previous: setOutput.Previous}, nil
}

// ClearLoadoutSlot unpins a loadout slot
func (o *Orchestrator) ClearLoadoutSlot(ctx context.Context, input *buildservice.ClearLoadoutSlotInput) (*buildservice.ClearLoadoutSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	clearOutput, err := o.loadoutRepo.Clear(ctx, loadoutrepo.ClearInput{
		UserID: input.UserID,
		Slot:   input.Slot,
	})
	if err != nil {
		return nil, err
	}

	return &buildservice.ClearLoadoutSlotOutput{Cleared: clearOutput.Cleared}, nil
}

// ListLoadouts returns the user's pinned slots in slot order
func (o *Orchestrator) ListLoadouts(ctx context.Context, input *buildservice.ListLoadoutsInput) (*buildservice.ListLoadoutsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.loadoutRepo.List(ctx, loadoutrepo.ListInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &buildservice.ListLoadoutsOutput{Entries: listOutput.Entries}, nil
}

// Catalog methods

// SearchItems fuzzy-matches item names, optionally within one category
func (o *Orchestrator) SearchItems(ctx context.Context, input *buildservice.SearchItemsInput) (*buildservice.SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	found := o.engine.Catalog().Search(input.Query, input.Category, input.Limit)

	return &buildservice.SearchItemsOutput{Items: found}, nil
}

// getOwned fetches a build and enforces that userID created it
func (o *Orchestrator) getOwned(ctx context.Context, buildID, userID string) (*builds.BuildRecord, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", buildID, vb)
	errors.ValidateRequired("userID", userID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: buildID})
	if err != nil {
		return nil, err
	}
	if getOutput.Record.CreatedByID != userID {
		return nil, errors.PermissionDenied("build belongs to another user")
	}

	return getOutput.Record, nil
}

// loadState returns the decoded slot state for a record, consulting the
// LRU cache first. The returned state is always a private copy with
// metadata freshly taken from the record.
func (o *Orchestrator) loadState(record *builds.BuildRecord) *builds.BuildState {
	key := cacheKey(record)

	if cached, ok := o.stateCache.Get(key); ok {
		state := cached.(*builds.BuildState).Clone()
		syncMetadata(state, record)
		return state
	}

	state := o.engine.DecodeFromRecord(record)
	if dropped := len(record.Items) + singleRefs(record) - equippedCount(state); dropped > 0 {
		slog.Warn("build references unknown items", "build_id", record.ID, "dropped", dropped)
	}

	o.stateCache.Add(key, state.Clone())
	return state
}

// saveEdited encodes an edited state, stamps the update time, persists it,
// and primes the cache for the new version
func (o *Orchestrator) saveEdited(ctx context.Context, state *builds.BuildState) (*buildservice.EditBuildOutput, error) {
	state.UpdatedAt = o.clock.Now().Unix()

	record := o.engine.EncodeToRecord(state)
	if _, err := o.buildRepo.Update(ctx, buildrepo.UpdateInput{Record: record}); err != nil {
		return nil, err
	}

	o.stateCache.Add(cacheKey(record), state.Clone())

	return &buildservice.EditBuildOutput{Record: record, State: state}, nil
}

func cacheKey(record *builds.BuildRecord) string {
	return fmt.Sprintf("%s:%d", record.ID, record.UpdatedAt)
}

// syncMetadata overwrites a cached state's metadata with the record's.
// Vote counts change without touching the slot rows, so cached slot state
// stays valid while metadata moves on.
func syncMetadata(state *builds.BuildState, record *builds.BuildRecord) {
	state.ID = record.ID
	state.Name = record.Name
	state.Description = record.Description
	state.BuildLink = record.BuildLink
	state.IsPublic = record.IsPublic
	state.CreatedByID = record.CreatedByID
	state.CreatedByDisplayName = record.CreatedByDisplayName
	state.CreatedAt = record.CreatedAt
	state.UpdatedAt = record.UpdatedAt
	state.TotalUpvotes = record.TotalUpvotes
	state.IsFeaturedBuild = record.IsFeaturedBuild
	state.IsPatchAffected = record.IsPatchAffected
	state.Reported = record.Reported
}

func singleRefs(record *builds.BuildRecord) int {
	n := 0
	for _, id := range []string{
		record.HelmItemID, record.TorsoItemID, record.LegsItemID,
		record.GlovesItemID, record.RelicItemID, record.AmuletItemID,
	} {
		if id != "" {
			n++
		}
	}
	return n
}

func equippedCount(state *builds.BuildState) int {
	n := 0
	for _, it := range []*items.Item{
		state.Items.Helm, state.Items.Torso, state.Items.Legs,
		state.Items.Gloves, state.Items.Relic, state.Items.Amulet,
	} {
		if it != nil {
			n++
		}
	}
	for _, slot := range [][]*items.Item{
		state.Items.Archetype, state.Items.Skill, state.Items.Weapon,
		state.Items.Mod, state.Items.Mutator, state.Items.Ring,
		state.Items.RelicFragment, state.Items.Consumable, state.Items.Concoction,
	} {
		for _, it := range slot {
			if it != nil {
				n++
			}
		}
	}
	return n + len(state.Items.Trait)
}
