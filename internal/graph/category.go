package graph

import (
	"context"

	"cityguide/internal/authz"
	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
)

type categoryInput struct {
	Name string
}

type categoryUpdateInput struct {
	Name *string
}

type categoryResolver struct {
	r *Resolver
	c *db_models.Category
}

func (r *Resolver) newCategory(c *db_models.Category) *categoryResolver {
	return &categoryResolver{r: r, c: c}
}

func (c *categoryResolver) ID() float64  { return fromID(c.c.ID) }
func (c *categoryResolver) Name() string { return c.c.Name }

func (c *categoryResolver) Pois(ctx context.Context) ([]*poiResolver, error) {
	if c.c.POIs == nil {
		loaded, err := c.r.categories.GetCategoryById(ctx, c.c.ID, "POIs")
		if err != nil {
			return nil, c.r.fail(ctx, "category.pois", err)
		}
		c.c.POIs = loaded.POIs
	}
	return c.r.poiList(c.c.POIs), nil
}

func (r *Resolver) GetAllCategories(ctx context.Context) ([]*categoryResolver, error) {
	categories, err := r.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, r.fail(ctx, "getAllCategories", err)
	}
	out := make([]*categoryResolver, len(categories))
	for i := range categories {
		out[i] = r.newCategory(&categories[i])
	}
	return out, nil
}

func (r *Resolver) GetCategoryById(ctx context.Context, args struct{ ID float64 }) (*categoryResolver, error) {
	id, err := toID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "getCategoryById", err)
	}
	category, err := r.categories.GetCategoryById(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "getCategoryById", err)
	}
	return r.newCategory(category), nil
}

func (r *Resolver) IsCategoryNameUnique(ctx context.Context, args struct{ Name string }) (bool, error) {
	unique, err := r.categories.IsCategoryNameUnique(ctx, args.Name)
	if err != nil {
		return false, r.fail(ctx, "isCategoryNameUnique", err)
	}
	return unique, nil
}

func (r *Resolver) CreateNewCategory(ctx context.Context, args struct{ CategoryData categoryInput }) (*categoryResolver, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectCategory, authz.ActionCreate); err != nil {
		return nil, r.fail(ctx, "createNewCategory", err)
	}
	category, err := r.categories.CreateCategory(ctx, request_models.CreateCategoryRequest{
		Name: args.CategoryData.Name,
	})
	if err != nil {
		return nil, r.fail(ctx, "createNewCategory", err)
	}
	return r.newCategory(category), nil
}

func (r *Resolver) UpdateCategoryById(ctx context.Context, args struct {
	CategoryData categoryUpdateInput
	ID           float64
}) (string, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectCategory, authz.ActionUpdate); err != nil {
		return "", r.fail(ctx, "updateCategoryById", err)
	}
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "updateCategoryById", err)
	}
	msg, err := r.categories.UpdateCategory(ctx, id, request_models.UpdateCategoryRequest{
		Name: args.CategoryData.Name,
	})
	if err != nil {
		return "", r.fail(ctx, "updateCategoryById", err)
	}
	return msg, nil
}

func (r *Resolver) DeleteCategoryById(ctx context.Context, args struct{ ID float64 }) (string, error) {
	if err := r.enforcer.Require(ctx, authz.ObjectCategory, authz.ActionDelete); err != nil {
		return "", r.fail(ctx, "deleteCategoryById", err)
	}
	id, err := toID(args.ID)
	if err != nil {
		return "", r.fail(ctx, "deleteCategoryById", err)
	}
	msg, err := r.categories.DeleteCategory(ctx, id)
	if err != nil {
		return "", r.fail(ctx, "deleteCategoryById", err)
	}
	return msg, nil
}
