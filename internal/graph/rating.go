package graph

import (
	"context"

	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
)

type ratingInput struct {
	Rating float64
	Text   *string
	Poi    float64
	User   float64
}

type ratingResolver struct {
	r  *Resolver
	rt *db_models.Rating
}

func (r *Resolver) newRating(rt *db_models.Rating) *ratingResolver {
	return &ratingResolver{r: r, rt: rt}
}

func (r *Resolver) ratingList(ratings []db_models.Rating) []*ratingResolver {
	out := make([]*ratingResolver, len(ratings))
	for i := range ratings {
		out[i] = r.newRating(&ratings[i])
	}
	return out
}

func (rr *ratingResolver) ID() float64     { return fromID(rr.rt.ID) }
func (rr *ratingResolver) Rating() float64 { return rr.rt.Score }
func (rr *ratingResolver) Text() string    { return rr.rt.Comment }

func (rr *ratingResolver) Poi(ctx context.Context) (*poiResolver, error) {
	if rr.rt.POI == nil {
		poi, err := rr.r.pois.GetPOIById(ctx, rr.rt.POIID, "City", "Category")
		if err != nil {
			return nil, rr.r.fail(ctx, "rating.poi", err)
		}
		rr.rt.POI = poi
	}
	return rr.r.newPoi(rr.rt.POI), nil
}

func (rr *ratingResolver) User(ctx context.Context) (*userResolver, error) {
	if rr.rt.User == nil {
		user, err := rr.r.users.GetUserById(ctx, rr.rt.UserID, "City")
		if err != nil {
			return nil, rr.r.fail(ctx, "rating.user", err)
		}
		rr.rt.User = user
	}
	return rr.r.newUser(rr.rt.User), nil
}

func (r *Resolver) GetAllRatings(ctx context.Context) ([]*ratingResolver, error) {
	ratings, err := r.ratings.GetAllRatings(ctx)
	if err != nil {
		return nil, r.fail(ctx, "getAllRatings", err)
	}
	return r.ratingList(ratings), nil
}

func (r *Resolver) GetRatingsByPoi(ctx context.Context, args struct{ PoiID float64 }) ([]*ratingResolver, error) {
	poiID, err := toID(args.PoiID)
	if err != nil {
		return nil, r.fail(ctx, "getRatingsByPoi", err)
	}
	ratings, err := r.ratings.GetRatingsByPoi(ctx, poiID)
	if err != nil {
		return nil, r.fail(ctx, "getRatingsByPoi", err)
	}
	return r.ratingList(ratings), nil
}

func (r *Resolver) CreateRating(ctx context.Context, args struct{ RatingData ratingInput }) (*ratingResolver, error) {
	in := args.RatingData
	poiID, err := toID(in.Poi)
	if err != nil {
		return nil, r.fail(ctx, "createRating", err)
	}
	userID, err := toID(in.User)
	if err != nil {
		return nil, r.fail(ctx, "createRating", err)
	}

	req := request_models.CreateRatingRequest{
		Score:  in.Rating,
		POIID:  poiID,
		UserID: userID,
	}
	if in.Text != nil {
		req.Comment = *in.Text
	}

	rating, err := r.ratings.CreateRating(ctx, req)
	if err != nil {
		return nil, r.fail(ctx, "createRating", err)
	}
	return r.newRating(rating), nil
}

func (r *Resolver) DeleteRatingById(ctx context.Context, args struct{ ID float64 }) (string, error) {
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "deleteRatingById", err)
	}
	msg, err := r.ratings.DeleteRating(ctx, id)
	if err != nil {
		return "", r.fail(ctx, "deleteRatingById", err)
	}
	return msg, nil
}
