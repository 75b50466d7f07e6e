package response_models

import "cityguide/internal/models/db_models"

type POI struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	PostalCode  string   `json:"postalCode"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Images      []string `json:"images"`

	City     *CitySummary     `json:"city,omitempty"`
	Category *CategorySummary `json:"category,omitempty"`
	Ratings  []Rating         `json:"ratings,omitempty"`
}

// POISummary is a POI nested under its city or category.
type POISummary struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Category    *CategorySummary `json:"category,omitempty"`
}

func NewPOI(p *db_models.POI) POI {
	out := POI{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		PostalCode:  p.PostalCode,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Images:      []string(p.Images),
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if p.City != nil {
		city := newCitySummary(p.City)
		out.City = &city
	}
	if p.Category != nil {
		category := newCategorySummary(p.Category)
		out.Category = &category
	}
	if p.Ratings != nil {
		out.Ratings = NewRatings(p.Ratings)
	}
	return out
}

func NewPOIs(pois []db_models.POI) []POI {
	out := make([]POI, len(pois))
	for i := range pois {
		out[i] = NewPOI(&pois[i])
	}
	return out
}

func newPOISummaries(pois []db_models.POI) []POISummary {
	out := make([]POISummary, len(pois))
	for i := range pois {
		p := &pois[i]
		out[i] = POISummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Address:     p.Address,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
		}
		if p.Category != nil {
			category := newCategorySummary(p.Category)
			out[i].Category = &category
		}
	}
	return out
}
