package request_models

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

// UpdateCategoryRequest merges only the non-nil fields.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitnil,notblank,max=100"`
}
