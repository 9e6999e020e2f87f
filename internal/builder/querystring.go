package builder

import (
	"net/url"

	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// Metadata keys that ride along in a share link next to the slot fields.
const (
	queryKeyName        = "name"
	queryKeyDescription = "description"
)

// EncodeToQueryString serializes a build for sharing. Every slot category
// is always present, even when empty, so field positions stay stable
// across round-trips of the same link.
func (e *Engine) EncodeToQueryString(state *builds.BuildState) url.Values {
	v := url.Values{}
	v.Set(queryKeyName, state.Name)
	v.Set(queryKeyDescription, state.Description)

	for _, c := range items.Categories {
		switch c {
		case items.CategoryTrait:
			v.Set(string(c), e.registry.Traits().ToDBValue(state.Items.Trait))
		default:
			resolver, _ := e.registry.For(c)
			if ref := singleSlotRef(state, c); ref != nil {
				v.Set(string(c), resolver.ToDBValue([]*items.Item{*ref}))
			} else {
				v.Set(string(c), resolver.ToDBValue(*indexedSlotRef(state, c)))
			}
		}
	}
	return v
}

// DecodeFromQueryString rebuilds a build state from a share link. Fields
// that decode to nothing (absent, empty, or full of ids the catalog no
// longer knows) leave their slot empty; a stale link still loads, minus
// the items that no longer exist.
func (e *Engine) DecodeFromQueryString(v url.Values) *builds.BuildState {
	out := builds.NewBuildState()
	if name := v.Get(queryKeyName); name != "" {
		out.Name = name
	}
	out.Description = v.Get(queryKeyDescription)

	for _, c := range items.Categories {
		raw := v.Get(string(c))
		if raw == "" {
			continue
		}

		if c == items.CategoryTrait {
			if decoded, err := e.registry.Traits().FromParams(raw); err == nil {
				out.Items.Trait = decoded
			}
			continue
		}

		resolver, _ := e.registry.For(c)
		decoded, err := resolver.FromParams(raw)
		if err != nil {
			continue
		}

		if ref := singleSlotRef(out, c); ref != nil {
			*ref = firstItem(decoded)
		} else {
			fitItems(*indexedSlotRef(out, c), decoded)
		}
	}
	return out
}

func firstItem(list []*items.Item) *items.Item {
	for _, it := range list {
		if it != nil {
			return it
		}
	}
	return nil
}

// fitItems copies decoded items into a fixed-length slot, position by
// position, ignoring anything past the slot's capacity.
func fitItems(dst, src []*items.Item) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		dst[i] = src[i]
	}
}
