package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cityguide/internal/repositories"
	"cityguide/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, services.NewCategoryService,
)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}
