package entities

// Material is a purchasable catalog entry available for selection into
// quotes. Quotes copy materials by value; the catalog and a persisted quote
// have independent lifecycles after the copy.
//
// Ids are assigned as max(existing ids)+1 over the current catalog. Deleting
// the entry with the highest id and adding a new one reissues that id; this
// mirrors the original product behavior and is accepted, not defended
// against.
type Material struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
}
