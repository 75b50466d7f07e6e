package controllers

import (
	"github.com/gin-gonic/gin"

	"cityguide/internal/models/request_models"
	"cityguide/internal/models/response_models"
	"cityguide/internal/services"
	"cityguide/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description Fetch every category with its POIs
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/categories [get]
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCategories(categories), "Fetched categories successfully")
}

// GetCategory godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/categories/{id} [get]
func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := cc.categoryService.GetCategoryById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCategory(category), "Category fetched successfully")
}

func (cc *CategoryController) IsNameUnique(c *gin.Context) {
	unique, err := cc.categoryService.IsCategoryNameUnique(c.Request.Context(), c.Query("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unique": unique}, "")
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewCategory(category), "Category created")
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := cc.categoryService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	msg, err := cc.categoryService.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}
