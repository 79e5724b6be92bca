package models

// Category is a static reference entry for the storefront navigation.
// Path is the URL-facing slug, DBValue the value stored on products.category.
// They are equal today but kept distinct so they can diverge later.
type Category struct {
	Path    string `json:"path"`
	DBValue string `json:"db_value"`
	Label   string `json:"label"`
}

var categories = []Category{
	{Path: "electronics", DBValue: "electronics", Label: "Electronics"},
	{Path: "clothing", DBValue: "clothing", Label: "Clothing"},
	{Path: "books", DBValue: "books", Label: "Books"},
	{Path: "home", DBValue: "home", Label: "Home & Living"},
	{Path: "beauty", DBValue: "beauty", Label: "Beauty"},
	{Path: "sports", DBValue: "sports", Label: "Sports & Outdoors"},
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByPath looks up a category by its URL slug.
func CategoryByPath(path string) (Category, bool) {
	for _, c := range categories {
		if c.Path == path {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByDBValue looks up a category by its stored column value.
func CategoryByDBValue(v string) (Category, bool) {
	for _, c := range categories {
		if c.DBValue == v {
			return c, true
		}
	}
	return Category{}, false
}
