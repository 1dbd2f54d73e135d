package domain

// Category is the fixed set of location category tags.
type Category string

const (
	CategoryHistory  Category = "history"
	CategoryFood     Category = "food"
	CategoryShopping Category = "shopping"
	CategoryNature   Category = "nature"
	CategoryCulture  Category = "culture"
	CategoryEvents   Category = "events"
	CategoryPopular  Category = "popular"
	CategoryHidden   Category = "hidden"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryHistory,
	CategoryFood,
	CategoryShopping,
	CategoryNature,
	CategoryCulture,
	CategoryEvents,
	CategoryPopular,
	CategoryHidden,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// CategoryInfo is the display record for a category as served by
// GET /api/categories.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// CategoryInfos holds the display names for every category.
var CategoryInfos = []CategoryInfo{
	{ID: CategoryHistory, Name: "History"},
	{ID: CategoryFood, Name: "Food Trails"},
	{ID: CategoryShopping, Name: "Shopping"},
	{ID: CategoryNature, Name: "Nature"},
	{ID: CategoryCulture, Name: "Culture & Experiences"},
	{ID: CategoryEvents, Name: "Events"},
	{ID: CategoryPopular, Name: "Popular Places"},
	{ID: CategoryHidden, Name: "Hidden Gems"},
}
