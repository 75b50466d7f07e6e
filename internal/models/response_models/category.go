package response_models

import "cityguide/internal/models/db_models"

type Category struct {
	ID   uint         `json:"id"`
	Name string       `json:"name"`
	POIs []POISummary `json:"pois"`
}

type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCategory(c *db_models.Category) Category {
	return Category{ID: c.ID, Name: c.Name, POIs: newPOISummaries(c.POIs)}
}

func NewCategories(categories []db_models.Category) []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = NewCategory(&categories[i])
	}
	return out
}

func newCategorySummary(c *db_models.Category) CategorySummary {
	return CategorySummary{ID: c.ID, Name: c.Name}
}
