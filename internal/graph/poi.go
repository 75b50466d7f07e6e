package graph

import (
	"context"

	"cityguide/internal/authz"
	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
)

type poiInput struct {
	Name        string
	Description *string
	Address     string
	PostalCode  *string
	Latitude    *float64
	Longitude   *float64
	Images      *[]string
	City        float64
	Category    float64
}

type poiUpdateInput struct {
	Name        *string
	Description *string
	Address     *string
	PostalCode  *string
	Latitude    *float64
	Longitude   *float64
	Images      *[]string
	City        *float64
	Category    *float64
}

type poiResolver struct {
	r *Resolver
	p *db_models.POI
}

func (r *Resolver) newPoi(p *db_models.POI) *poiResolver {
	return &poiResolver{r: r, p: p}
}

func (r *Resolver) poiList(pois []db_models.POI) []*poiResolver {
	out := make([]*poiResolver, len(pois))
	for i := range pois {
		out[i] = r.newPoi(&pois[i])
	}
	return out
}

func (p *poiResolver) ID() float64         { return fromID(p.p.ID) }
func (p *poiResolver) Name() string        { return p.p.Name }
func (p *poiResolver) Description() string { return p.p.Description }
func (p *poiResolver) Address() string     { return p.p.Address }
func (p *poiResolver) PostalCode() string  { return p.p.PostalCode }
func (p *poiResolver) Latitude() *float64  { return p.p.Latitude }
func (p *poiResolver) Longitude() *float64 { return p.p.Longitude }

func (p *poiResolver) Images() []string {
	if p.p.Images == nil {
		return []string{}
	}
	return p.p.Images
}

func (p *poiResolver) City(ctx context.Context) (*cityResolver, error) {
	if p.p.City == nil {
		city, err := p.r.cities.GetCityById(ctx, p.p.CityID, "POIs")
		if err != nil {
			return nil, p.r.fail(ctx, "poi.city", err)
		}
		p.p.City = city
	}
	return p.r.newCity(p.p.City), nil
}

func (p *poiResolver) Category(ctx context.Context) (*categoryResolver, error) {
	if p.p.Category == nil {
		category, err := p.r.categories.GetCategoryById(ctx, p.p.CategoryID)
		if err != nil {
			return nil, p.r.fail(ctx, "poi.category", err)
		}
		p.p.Category = category
	}
	return p.r.newCategory(p.p.Category), nil
}

func (p *poiResolver) Ratings(ctx context.Context) ([]*ratingResolver, error) {
	if p.p.Ratings == nil {
		loaded, err := p.r.pois.GetPOIById(ctx, p.p.ID, "Ratings")
		if err != nil {
			return nil, p.r.fail(ctx, "poi.ratings", err)
		}
		p.p.Ratings = loaded.Ratings
	}
	return p.r.ratingList(p.p.Ratings), nil
}

func (r *Resolver) GetAllPois(ctx context.Context) ([]*poiResolver, error) {
	pois, err := r.pois.ListPois(ctx)
	if err != nil {
		return nil, r.fail(ctx, "getAllPois", err)
	}
	return r.poiList(pois), nil
}

func (r *Resolver) GetPoiById(ctx context.Context, args struct{ ID float64 }) (*poiResolver, error) {
	id, err := toID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "getPoiById", err)
	}
	poi, err := r.pois.GetPOIById(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "getPoiById", err)
	}
	return r.newPoi(poi), nil
}

func (r *Resolver) CreateNewPoi(ctx context.Context, args struct{ PoiData poiInput }) (*poiResolver, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectPOI, authz.ActionCreate); err != nil {
		return nil, r.fail(ctx, "createNewPoi", err)
	}
	in := args.PoiData
	cityID, err := toID(in.City)
	if err != nil {
		return nil, r.fail(ctx, "createNewPoi", err)
	}
	categoryID, err := toID(in.Category)
	if err != nil {
		return nil, r.fail(ctx, "createNewPoi", err)
	}

	req := request_models.CreatePoiRequest{
		Name:       in.Name,
		Address:    in.Address,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		CityID:     cityID,
		CategoryID: categoryID,
	}
	if in.Description != nil {
		req.Description = *in.Description
	}
	if in.PostalCode != nil {
		req.PostalCode = *in.PostalCode
	}
	if in.Images != nil {
		req.Images = *in.Images
	}

	poi, err := r.pois.CreatePoi(ctx, req)
	if err != nil {
		return nil, r.fail(ctx, "createNewPoi", err)
	}
	return r.newPoi(poi), nil
}

func (r *Resolver) UpdatePoiById(ctx context.Context, args struct {
	PoiData poiUpdateInput
	ID      float64
}) (string, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectPOI, authz.ActionUpdate); err != nil {
		return "", r.fail(ctx, "updatePoiById", err)
	}
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "updatePoiById", err)
	}
	in := args.PoiData
	cityID, err := optionalID(in.City)
	if err != nil {
		return "", r.fail(ctx, "updatePoiById", err)
	}
	categoryID, err := optionalID(in.Category)
	if err != nil {
		return "", r.fail(ctx, "updatePoiById", err)
	}

	msg, err := r.pois.UpdatePoi(ctx, id, request_models.UpdatePoiRequest{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		PostalCode:  in.PostalCode,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Images:      in.Images,
		CityID:      cityID,
		CategoryID:  categoryID,
	})
	if err != nil {
		return "", r.fail(ctx, "updatePoiById", err)
	}
	return msg, nil
}

func (r *Resolver) DeletePoiById(ctx context.Context, args struct{ ID float64 }) (string, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectPOI, authz.ActionDelete); err != nil {
		return "", r.fail(ctx, "deletePoiById", err)
	}
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "deletePoiById", err)
	}
	msg, err := r.pois.DeletePoi(ctx, id)
	if err != nil {
		return "", r.fail(ctx, "deletePoiById", err)
	}
	return msg, nil
}
