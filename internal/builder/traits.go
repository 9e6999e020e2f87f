package builder

import (
	"strconv"

	"github.com/remnantforge/builds-api/internal/entities/builds"
)

// UpdateTraitAmount applies a requested amount change to one equipped
// trait and revalidates the whole trait list. Revalidation recomputes
// every trait's minimum from scratch rather than patching the one that
// changed: an earlier archetype swap can invalidate several traits'
// minimums at once, and the list is small enough that recomputation is
// the correctness-preserving choice.
//
// The requested amount arrives raw from the editor surface; a value that
// does not parse as a number resets the trait to its governing default.
// Everything else clamps into [max(1, linked minimum), 10]. A trait id
// not currently equipped is a no-op.
func (e *Engine) UpdateTraitAmount(state *builds.BuildState, traitID string, rawAmount string) *builds.BuildState {
	if state == nil {
		return nil
	}

	target := -1
	for i, tl := range state.Items.Trait {
		if tl.Item != nil && tl.Item.ID == traitID {
			target = i
			break
		}
	}
	if target == -1 {
		return state
	}

	requested, parseErr := strconv.ParseInt(rawAmount, 10, 32)

	out := state.Clone()
	for i := range out.Items.Trait {
		tl := &out.Items.Trait[i]
		minimum := e.traitMinimum(out, tl.Item.Name)

		amount := tl.Amount
		if i == target {
			if parseErr != nil {
				amount = builds.DefaultTraitAmount
			} else {
				amount = int32(requested)
			}
		}
		tl.Amount = clampTraitAmount(amount, minimum)
	}
	return out
}

// traitMinimum returns the effective minimum amount for the named trait:
// the largest amount required by a linked-trait relationship on either
// archetype slot, floored at 1.
func (e *Engine) traitMinimum(state *builds.BuildState, traitName string) int32 {
	minimum := builds.MinTraitAmount
	for _, arch := range state.Items.Archetype {
		if amt := arch.LinkedTraitAmount(traitName); amt > minimum {
			minimum = amt
		}
	}
	return minimum
}

func clampTraitAmount(amount, minimum int32) int32 {
	if amount < minimum {
		return minimum
	}
	if amount > builds.MaxTraitAmount {
		return builds.MaxTraitAmount
	}
	return amount
}
