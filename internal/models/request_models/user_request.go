package request_models

import "cityguide/internal/models/db_models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a USER account.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"notblank,max=100"`
	Password  string `json:"password" validate:"min=6,max=72"`
	CityID    *uint  `json:"city" validate:"omitnil,gt=0"`
}

// UpdateUserRequest changes only the fields that are set. Changing Role
// needs the user/update_role permission.
type UpdateUserRequest struct {
	Email     *string         `json:"email" validate:"omitnil,email"`
	FirstName *string         `json:"firstName" validate:"omitnil,notblank,max=100"`
	LastName  *string         `json:"lastName" validate:"omitnil,notblank,max=100"`
	Password  *string         `json:"password" validate:"omitnil,min=6,max=72"`
	Role      *db_models.Role `json:"role" validate:"omitnil,role"`
	CityID    *uint           `json:"city" validate:"omitnil,gt=0"`
}
