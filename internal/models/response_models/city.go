package response_models

import "cityguide/internal/models/db_models"

type City struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Lat         *float64      `json:"lat"`
	Lon         *float64      `json:"lon"`
	POIs        []POISummary  `json:"pois"`
	Users       []UserSummary `json:"users,omitempty"`
}

type CitySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCity(c *db_models.City) City {
	out := City{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Lat:         c.Latitude,
		Lon:         c.Longitude,
		POIs:        newPOISummaries(c.POIs),
	}
	if len(c.Users) > 0 {
		out.Users = make([]UserSummary, len(c.Users))
		for i := range c.Users {
			out.Users[i] = newUserSummary(&c.Users[i])
		}
	}
	return out
}

func NewCities(cities []db_models.City) []City {
	out := make([]City, len(cities))
	for i := range cities {
		out[i] = NewCity(&cities[i])
	}
	return out
}

func newCitySummary(c *db_models.City) CitySummary {
	return CitySummary{ID: c.ID, Name: c.Name}
}
