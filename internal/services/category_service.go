package services

import (
	"context"

	"go.uber.org/zap"

	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
	"cityguide/internal/repositories"
	"cityguide/pkg/utils"
)

type CategoryServiceInterface interface {
	GetAllCategories(ctx context.Context, relations ...string) ([]db_models.Category, error)
	GetCategoryById(ctx context.Context, id uint, relations ...string) (*db_models.Category, error)
	IsCategoryNameUnique(ctx context.Context, name string) (bool, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*db_models.Category, error)
	UpdateCategory(ctx context.Context, id uint, req request_models.UpdateCategoryRequest) (string, error)
	DeleteCategory(ctx context.Context, id uint) (string, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		log:          log.Named("category"),
	}
}

func (s *CategoryService) GetAllCategories(ctx context.Context, relations ...string) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx, defaultRelations(relations, "POIs")...)
	if err != nil {
		return nil, storageError(s.log, "list categories", err, "")
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryById(ctx context.Context, id uint, relations ...string) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id, defaultRelations(relations, "POIs")...)
	if err != nil {
		return nil, storageError(s.log, "get category", err, "")
	}
	if category == nil {
		return nil, utils.NotFound("Category with ID %d not found", id)
	}
	return category, nil
}

func (s *CategoryService) IsCategoryNameUnique(ctx context.Context, name string) (bool, error) {
	taken, err := s.categoryRepo.NameExists(ctx, utils.NormalizeName(name))
	if err != nil {
		return false, storageError(s.log, "check category name", err, "")
	}
	return !taken, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*db_models.Category, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	name := utils.NormalizeName(req.Name)
	if err := s.ensureNameFree(ctx, name); err != nil {
		return nil, err
	}

	category := &db_models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, storageError(s.log, "create category", err, "Category name already exists.")
	}
	category.POIs = []db_models.POI{}

	s.log.Info("category created", zap.Uint("id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, req request_models.UpdateCategoryRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return "", storageError(s.log, "get category", err, "")
	}
	if category == nil {
		return "", utils.NotFound("Category with ID %d not found", id)
	}

	if req.Name != nil {
		name := utils.NormalizeName(*req.Name)
		if name != category.Name {
			if err := s.ensureNameFree(ctx, name); err != nil {
				return "", err
			}
			category.Name = name
		}
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return "", storageError(s.log, "update category", err, "Category name already exists.")
	}
	return "Category updated", nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) (string, error) {
	res, err := s.categoryRepo.DeleteCascade(ctx, id)
	if err != nil {
		return "", storageError(s.log, "delete category", err, "")
	}
	if res.Categories == 0 {
		return "", utils.NotFound("Category with ID %d not found", id)
	}

	s.log.Info("category deleted",
		zap.Uint("id", id),
		zap.Int64("pois", res.POIs),
		zap.Int64("ratings", res.Ratings))
	return "The Category has been deleted", nil
}

func (s *CategoryService) ensureNameFree(ctx context.Context, name string) error {
	taken, err := s.categoryRepo.NameExists(ctx, name)
	if err != nil {
		return storageError(s.log, "check category name", err, "")
	}
	if taken {
		return utils.Conflict("Category name already exists.")
	}
	return nil
}
