package graph

import (
	"context"

	"cityguide/internal/authz"
	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
)

type cityInput struct {
	Name        string
	Description string
	Lat         *float64
	Lon         *float64
}

type cityUpdateInput struct {
	Name        *string
	Description *string
	Lat         *float64
	Lon         *float64
}

type cityResolver struct {
	r *Resolver
	c *db_models.City
}

func (r *Resolver) newCity(c *db_models.City) *cityResolver {
	return &cityResolver{r: r, c: c}
}

func (c *cityResolver) ID() float64         { return fromID(c.c.ID) }
func (c *cityResolver) Name() string        { return c.c.Name }
func (c *cityResolver) Description() string { return c.c.Description }
func (c *cityResolver) Lat() *float64       { return c.c.Latitude }
func (c *cityResolver) Lon() *float64       { return c.c.Longitude }

func (c *cityResolver) Pois(ctx context.Context) ([]*poiResolver, error) {
	if c.c.POIs == nil {
		loaded, err := c.r.cities.GetCityById(ctx, c.c.ID, "POIs")
		if err != nil {
			return nil, c.r.fail(ctx, "city.pois", err)
		}
		c.c.POIs = loaded.POIs
	}
	return c.r.poiList(c.c.POIs), nil
}

func (c *cityResolver) Users(ctx context.Context) ([]*userResolver, error) {
	if c.c.Users == nil {
		loaded, err := c.r.cities.GetCityById(ctx, c.c.ID, "Users")
		if err != nil {
			return nil, c.r.fail(ctx, "city.users", err)
		}
		c.c.Users = loaded.Users
	}
	out := make([]*userResolver, len(c.c.Users))
	for i := range c.c.Users {
		out[i] = c.r.newUser(&c.c.Users[i])
	}
	return out, nil
}

func (r *Resolver) GetAllCities(ctx context.Context) ([]*cityResolver, error) {
	cities, err := r.cities.GetAllCities(ctx)
	if err != nil {
		return nil, r.fail(ctx, "getAllCities", err)
	}
	out := make([]*cityResolver, len(cities))
	for i := range cities {
		out[i] = r.newCity(&cities[i])
	}
	return out, nil
}

func (r *Resolver) GetCityById(ctx context.Context, args struct{ ID float64 }) (*cityResolver, error) {
	id, err := toID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "getCityById", err)
	}
	city, err := r.cities.GetCityById(ctx, id, "POIs", "POIs.Category", "POIs.Ratings", "Users")
	if err != nil {
		return nil, r.fail(ctx, "getCityById", err)
	}
	return r.newCity(city), nil
}

func (r *Resolver) GetCityByName(ctx context.Context, args struct{ Name string }) (*cityResolver, error) {
	city, err := r.cities.GetCityByName(ctx, args.Name)
	if err != nil {
		return nil, r.fail(ctx, "getCityByName", err)
	}
	return r.newCity(city), nil
}

func (r *Resolver) IsCityNameUnique(ctx context.Context, args struct{ Name string }) (bool, error) {
	unique, err := r.cities.IsCityNameUnique(ctx, args.Name)
	if err != nil {
		return false, r.fail(ctx, "isCityNameUnique", err)
	}
	return unique, nil
}

func (r *Resolver) CreateNewCity(ctx context.Context, args struct{ CityData cityInput }) (*cityResolver, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectCity, authz.ActionCreate); err != nil {
		return nil, r.fail(ctx, "createNewCity", err)
	}
	city, err := r.cities.CreateCity(ctx, request_models.CreateCityRequest{
		Name:        args.CityData.Name,
		Description: args.CityData.Description,
		Latitude:    args.CityData.Lat,
		Longitude:   args.CityData.Lon,
	})
	if err != nil {
		return nil, r.fail(ctx, "createNewCity", err)
	}
	return r.newCity(city), nil
}

func (r *Resolver) UpdateCityById(ctx context.Context, args struct {
	CityData cityUpdateInput
	ID       float64
}) (string, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectCity, authz.ActionUpdate); err != nil {
		return "", r.fail(ctx, "updateCityById", err)
	}
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "updateCityById", err)
	}
	msg, err := r.cities.UpdateCity(ctx, id, request_models.UpdateCityRequest{
		Name:        args.CityData.Name,
		Description: args.CityData.Description,
		Latitude:    args.CityData.Lat,
		Longitude:   args.CityData.Lon,
	})
	if err != nil {
		return "", r.fail(ctx, "updateCityById", err)
	}
	return msg, nil
}

func (r *Resolver) DeleteCityById(ctx context.Context, args struct{ ID float64 }) (string, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectCity, authz.ActionDelete); err != nil {
		return "", r.fail(ctx, "deleteCityById", err)
	}
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "deleteCityById", err)
	}
	msg, err := r.cities.DeleteCity(ctx, id)
	if err != nil {
		return "", r.fail(ctx, "deleteCityById", err)
	}
	return msg, nil
}
