package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/models/db_models"
)

type sample struct {
	Name  string          `json:"name" validate:"notblank,max=5"`
	Email string          `json:"email" validate:"omitempty,email"`
	Score float64         `json:"rating" validate:"gte=1,lte=5"`
	Role  *db_models.Role `json:"role" validate:"omitnil,role"`
	Lat   *float64        `json:"lat" validate:"omitnil,latitude"`
}

func TestValidateStruct_Valid(t *testing.T) {
	role := db_models.RoleCityAdmin
	assert.NoError(t, ValidateStruct(sample{Name: "ok", Score: 3, Role: &role}))
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	role := db_models.Role("ROOT")
	lat := 120.0
	err := ValidateStruct(sample{Name: "  ", Email: "nope", Score: 9, Role: &role, Lat: &lat})
	require.Error(t, err)

	var verr *RequestValidationError
	require.True(t, errors.As(err, &verr))

	messages := map[string]string{}
	for _, fe := range verr.Errors() {
		messages[fe.Field] = fe.Message
	}
	assert.Equal(t, map[string]string{
		"name":   "name must not be empty",
		"email":  "email must be a valid email address",
		"rating": "rating must be less than or equal to 5",
		"role":   "role must be one of ADMIN, CITYADMIN, SUPERUSER, USER",
		"lat":    "lat must be a valid latitude (-90 to 90)",
	}, messages)
	assert.Contains(t, err.Error(), "; ")
}

func TestValidateStruct_LengthMessages(t *testing.T) {
	err := ValidateStruct(sample{Name: "toolong", Score: 1})
	require.Error(t, err)
	assert.Equal(t, "name must be at most 5 characters", err.Error())
}
