package repo

// SortOption is the closed set of orderings the catalog supports.
// Anything outside the set behaves as SortNewest.
type SortOption int

const (
	SortNewest SortOption = iota
	SortOldest
	SortPriceAsc
	SortPriceDesc
	SortNameAsc
)

// ParseSortOption maps a query-string value onto a SortOption.
// Unrecognized values fall back to SortNewest rather than erroring.
func ParseSortOption(s string) SortOption {
	switch s {
	case "price_asc":
		return SortPriceAsc
	case "price_desc":
		return SortPriceDesc
	case "oldest":
		return SortOldest
	case "name_asc":
		return SortNameAsc
	case "newest":
		return SortNewest
	default:
		return SortNewest
	}
}

func (s SortOption) String() string {
	switch s {
	case SortPriceAsc:
		return "price_asc"
	case SortPriceDesc:
		return "price_desc"
	case SortOldest:
		return "oldest"
	case SortNameAsc:
		return "name_asc"
	default:
		return "newest"
	}
}

// orderClause returns the ORDER BY body for the option. Column names are
// drawn from this fixed mapping, never from user input.
func (s SortOption) orderClause() string {
	switch s {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortOldest:
		return "created_at ASC"
	case SortNameAsc:
		return "name ASC"
	default:
		return "created_at DESC"
	}
}
