package repo

// DefaultPageSize is the page increment used when the caller does not
// supply one.
const DefaultPageSize = 12

// PageRequest describes one page of the catalog: an optional category
// filter, a sort order, and an offset/limit range over the filtered set.
type PageRequest struct {
	Category string // "" means all categories
	Sort     SortOption
	Limit    int
	Offset   int
}

// normalized clamps the range back onto the contract: limit > 0, offset >= 0.
func (pr PageRequest) normalized() PageRequest {
	if pr.Limit <= 0 {
		pr.Limit = DefaultPageSize
	}
	if pr.Offset < 0 {
		pr.Offset = 0
	}
	return pr
}
