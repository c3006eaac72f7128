package domain

// Listing Categories (closed set)
const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
	CategoryHome        Category = "home"
	CategoryToys        Category = "toys"
	CategoryOther       Category = "other"
)

// CategoryAll is the filter sentinel meaning "no category constraint".
// It is never a valid listing category.
const CategoryAll Category = "all"

// List Exports for API
var Categories = []Category{
	CategoryClothing,
	CategoryElectronics,
	CategoryFurniture,
	CategoryBooks,
	CategorySports,
	CategoryHome,
	CategoryToys,
	CategoryOther,
}

var CategoryLabels = map[Category]string{
	CategoryClothing:    "Clothing & Fashion",
	CategoryElectronics: "Electronics",
	CategoryFurniture:   "Furniture",
	CategoryBooks:       "Books & Media",
	CategorySports:      "Sports & Outdoors",
	CategoryHome:        "Home & Garden",
	CategoryToys:        "Toys & Games",
	CategoryOther:       "Other",
}
