package builder

import (
	"strconv"

	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// Metadata pseudo-categories. The editor surface funnels metadata edits
// through the same mutation channel as slot edits.
const (
	MetaName        items.Category = "name"
	MetaDescription items.Category = "description"
	MetaBuildLink   items.Category = "buildLink"
	MetaIsPublic    items.Category = "isPublic"
)

// MutationRequest is one user edit: which slot, the new item id ("" means
// clear), and optionally which position of an indexed slot.
type MutationRequest struct {
	Category items.Category
	Value    string
	Index    *int
}

// At returns a pointer to i, for requests that target a slot position.
func At(i int) *int {
	return &i
}

// ApplyMutation produces a new build state with the requested edit
// applied. Malformed requests (unknown categories, out-of-range indices,
// ids that do not resolve or do not belong in the slot) are no-ops that
// return the input state unchanged; the engine never fails on a
// UI-originated request. Duplicate insertion (same item id already in the
// slot) is likewise a silent no-op.
//
// Exactly one field of the result differs from the input, except for
// trait mutations, which rewrite the trait sequence as a whole.
func (e *Engine) ApplyMutation(state *builds.BuildState, req MutationRequest) *builds.BuildState {
	if state == nil {
		return nil
	}

	switch req.Category {
	case MetaName:
		out := state.Clone()
		out.Name = req.Value
		return out
	case MetaDescription:
		out := state.Clone()
		out.Description = req.Value
		return out
	case MetaBuildLink:
		out := state.Clone()
		out.BuildLink = req.Value
		return out
	case MetaIsPublic:
		isPublic, err := strconv.ParseBool(req.Value)
		if err != nil {
			return state
		}
		out := state.Clone()
		out.IsPublic = isPublic
		return out
	case items.CategoryTrait:
		return e.applyTraitMutation(state, req)
	}

	if ref := singleSlotRef(state, req.Category); ref != nil {
		return e.applySingleMutation(state, req)
	}
	if ref := indexedSlotRef(state, req.Category); ref != nil {
		return e.applyIndexedMutation(state, req)
	}

	// Unknown category.
	return state
}

func (e *Engine) applySingleMutation(state *builds.BuildState, req MutationRequest) *builds.BuildState {
	if req.Value == "" {
		out := state.Clone()
		*singleSlotRef(out, req.Category) = nil
		return out
	}

	resolver, ok := e.registry.For(req.Category)
	if !ok {
		return state
	}
	item, found := e.catalog.Get(req.Value)
	if !found || !resolver.IsMember(item) {
		return state
	}

	current := *singleSlotRef(state, req.Category)
	if current != nil && current.ID == item.ID {
		return state
	}

	out := state.Clone()
	*singleSlotRef(out, req.Category) = item
	return out
}

func (e *Engine) applyIndexedMutation(state *builds.BuildState, req MutationRequest) *builds.BuildState {
	list := *indexedSlotRef(state, req.Category)
	capacity := e.slotCapacity(state, req.Category)

	if req.Index != nil && (*req.Index < 0 || *req.Index >= capacity) {
		return state
	}

	if req.Value == "" {
		out := state.Clone()
		outList := *indexedSlotRef(out, req.Category)
		if req.Index != nil {
			// Clear one position only. Siblings keep their indices: a
			// removed second archetype must not slide into first place.
			outList[*req.Index] = nil
		} else {
			for i := range outList {
				outList[i] = nil
			}
		}
		return out
	}

	resolver, ok := e.registry.For(req.Category)
	if !ok {
		return state
	}
	item, found := e.catalog.Get(req.Value)
	if !found || !resolver.IsMember(item) {
		return state
	}

	for _, existing := range list {
		if existing != nil && existing.ID == item.ID {
			return state
		}
	}

	idx := -1
	if req.Index != nil {
		idx = *req.Index
	} else {
		for i := 0; i < capacity; i++ {
			if list[i] == nil {
				idx = i
				break
			}
		}
		if idx == -1 {
			// Slot full.
			return state
		}
	}

	out := state.Clone()
	(*indexedSlotRef(out, req.Category))[idx] = item
	return out
}

// slotCapacity returns how many positions of an indexed slot are currently
// usable. Every slot uses its fixed length except concoctions, whose
// usable count depends on the equipped archetypes.
func (e *Engine) slotCapacity(state *builds.BuildState, c items.Category) int {
	if c == items.CategoryConcoction {
		return e.ConcoctionSlotCount(state)
	}
	return len(*indexedSlotRef(state, c))
}

func (e *Engine) applyTraitMutation(state *builds.BuildState, req MutationRequest) *builds.BuildState {
	traits := state.Items.Trait

	if req.Value == "" {
		if req.Index != nil {
			if *req.Index < 0 || *req.Index >= len(traits) {
				return state
			}
			// The trait list is dense, not positional: removal compacts.
			out := state.Clone()
			out.Items.Trait = append(out.Items.Trait[:*req.Index], out.Items.Trait[*req.Index+1:]...)
			return out
		}
		out := state.Clone()
		out.Items.Trait = nil
		return out
	}

	item, found := e.catalog.Get(req.Value)
	if !found || !item.Is(items.CategoryTrait) {
		return state
	}
	for _, tl := range traits {
		if tl.Item != nil && tl.Item.ID == item.ID {
			return state
		}
	}

	out := state.Clone()
	out.Items.Trait = append(out.Items.Trait, builds.TraitLevel{
		Item:   item,
		Amount: builds.DefaultTraitAmount,
	})
	return out
}
