package domain

// Category is the fixed wardrobe category set.
type Category string

const (
	CategoryTop       Category = "Top"
	CategoryBottom    Category = "Bottom"
	CategoryDress     Category = "Dress"
	CategorySaree     Category = "Saree"
	CategoryShoes     Category = "Shoes"
	CategoryAccessory Category = "Accessory"
	CategoryOuterwear Category = "Outerwear"

	// CategoryUncategorized is the ingestion fallback for items added without
	// a recognizable category. It is not part of the styling category set.
	CategoryUncategorized Category = "Uncategorized"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryDress, CategorySaree,
		CategoryShoes, CategoryAccessory, CategoryOuterwear, CategoryUncategorized:
		return true
	}
	return false
}

// Categories lists the styling categories in the order they appear in
// generated narratives and prompts.
func Categories() []Category {
	return []Category{
		CategoryTop, CategoryBottom, CategoryDress, CategorySaree,
		CategoryShoes, CategoryAccessory, CategoryOuterwear,
	}
}
