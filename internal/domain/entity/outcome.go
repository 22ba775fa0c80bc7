package entity

// Outcome tags what an insert-or-merge did.
type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// CascadeResult reports a committed delete and the rows it took with it,
// keyed by entity kind. The parent itself is counted under its own kind.
type CascadeResult struct {
	Entity  EntityKind           `json:"entity"`
	Key     string               `json:"key"`
	Removed map[EntityKind]int64 `json:"removed"`
	Order   []EntityKind         `json:"order"`
}

func NewCascadeResult(kind EntityKind, key string) *CascadeResult {
	return &CascadeResult{
		Entity:  kind,
		Key:     key,
		Removed: make(map[EntityKind]int64),
	}
}

// Record appends a removal step. Steps are kept in the order they ran.
func (r *CascadeResult) Record(kind EntityKind, rows int64) {
	if _, seen := r.Removed[kind]; !seen {
		r.Order = append(r.Order, kind)
	}
	r.Removed[kind] += rows
}
