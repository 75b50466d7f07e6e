package response_models

import "cityguide/internal/models/db_models"

type Rating struct {
	ID     uint         `json:"id"`
	Rating float64      `json:"rating"`
	Text   string       `json:"text"`
	POI    *POISummary  `json:"poi,omitempty"`
	User   *UserSummary `json:"user,omitempty"`
}

func NewRating(r *db_models.Rating) Rating {
	out := Rating{ID: r.ID, Rating: r.Score, Text: r.Comment}
	if r.POI != nil {
		poi := newPOISummaries([]db_models.POI{*r.POI})[0]
		out.POI = &poi
	}
	if r.User != nil {
		user := newUserSummary(r.User)
		out.User = &user
	}
	return out
}

func NewRatings(ratings []db_models.Rating) []Rating {
	out := make([]Rating, len(ratings))
	for i := range ratings {
		out[i] = NewRating(&ratings[i])
	}
	return out
}
