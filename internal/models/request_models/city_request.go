package request_models

type CreateCityRequest struct {
	Name        string   `json:"name" validate:"notblank,max=100"`
	Description string   `json:"description" validate:"notblank"`
	Latitude    *float64 `json:"lat" validate:"omitnil,latitude"`
	Longitude   *float64 `json:"lon" validate:"omitnil,longitude"`
}

type UpdateCityRequest struct {
	Name        *string  `json:"name" validate:"omitnil,notblank,max=100"`
	Description *string  `json:"description" validate:"omitnil,notblank"`
	Latitude    *float64 `json:"lat" validate:"omitnil,latitude"`
	Longitude   *float64 `json:"lon" validate:"omitnil,longitude"`
}
