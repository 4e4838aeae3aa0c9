package services

import (
	"complaint-intake-backend/db/models"

	"github.com/google/uuid"
)

type SubCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryGroup struct {
	MainCategory  string        `json:"main_category"`
	SubCategories []SubCategory `json:"sub_categories"`
}

// GroupCategories transforms the flat category rows into one group per
// distinct main category. Groups and their sub-categories keep first-seen
// order; no sorting is applied.
func GroupCategories(categories []models.ComplaintCategory) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categories))
	index := make(map[string]int, len(categories))

	for _, category := range categories {
		sub := SubCategory{ID: category.ID, Name: category.SubCategory}

		pos, seen := index[category.MainCategory]
		if !seen {
			index[category.MainCategory] = len(groups)
			groups = append(groups, CategoryGroup{
				MainCategory:  category.MainCategory,
				SubCategories: []SubCategory{sub},
			})
			continue
		}
		groups[pos].SubCategories = append(groups[pos].SubCategories, sub)
	}

	return groups
}
