package builds

import (
	"github.com/remnantforge/builds-api/internal/entities/items"
)

// ItemRow is one persisted indexed-slot assignment: which item sits at
// which position of which slot category. Amount is meaningful for trait
// rows only. Index is a pointer because historical rows may omit it; a
// nil index means "append in row order" on decode.
type ItemRow struct {
	Category items.Category `json:"category"`
	ItemID   string         `json:"itemId"`
	Index    *int32         `json:"index,omitempty"`
	Amount   int32          `json:"amount,omitempty"`
}

// Index returns a pointer to i, for building rows with explicit positions.
func Index(i int32) *int32 {
	return &i
}

// BuildRecord is the persisted shape of a build: the metadata columns,
// one nullable item-id reference per single-valued slot, and one row set
// covering every indexed slot category. Row order carries no meaning;
// decode reconstructs positions from the explicit indices.
type BuildRecord struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	BuildLink            string `json:"buildLink"`
	IsPublic             bool   `json:"isPublic"`
	CreatedByID          string `json:"createdById"`
	CreatedByDisplayName string `json:"createdByDisplayName"`
	CreatedAt            int64  `json:"createdAt"`
	UpdatedAt            int64  `json:"updatedAt"`
	TotalUpvotes         int32  `json:"totalUpvotes"`
	IsFeaturedBuild      bool   `json:"isFeaturedBuild"`
	IsPatchAffected      bool   `json:"isPatchAffected"`
	Reported             bool   `json:"reported"`

	HelmItemID   string `json:"helmItemId,omitempty"`
	TorsoItemID  string `json:"torsoItemId,omitempty"`
	LegsItemID   string `json:"legsItemId,omitempty"`
	GlovesItemID string `json:"glovesItemId,omitempty"`
	RelicItemID  string `json:"relicItemId,omitempty"`
	AmuletItemID string `json:"amuletItemId,omitempty"`

	Items []ItemRow `json:"items,omitempty"`
}

// Clone returns a deep copy of the record.
func (r *BuildRecord) Clone() *BuildRecord {
	if r == nil {
		return nil
	}
	out := *r
	if r.Items != nil {
		out.Items = make([]ItemRow, len(r.Items))
		for i, row := range r.Items {
			out.Items[i] = row
			if row.Index != nil {
				idx := *row.Index
				out.Items[i].Index = &idx
			}
		}
	}
	return &out
}

// RowsFor returns the rows belonging to one slot category, in stored order.
func (r *BuildRecord) RowsFor(c items.Category) []ItemRow {
	var rows []ItemRow
	for _, row := range r.Items {
		if row.Category == c {
			rows = append(rows, row)
		}
	}
	return rows
}
