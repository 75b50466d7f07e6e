package request_models

type CreatePoiRequest struct {
	Name        string   `json:"name" validate:"notblank,max=150"`
	Description string   `json:"description"`
	Address     string   `json:"address" validate:"notblank"`
	PostalCode  string   `json:"postalCode" validate:"max=20"`
	Latitude    *float64 `json:"latitude" validate:"omitnil,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitnil,longitude"`
	Images      []string `json:"images" validate:"dive,notblank"`
	CityID      uint     `json:"city" validate:"required"`
	CategoryID  uint     `json:"category" validate:"required"`
}

type UpdatePoiRequest struct {
	Name        *string   `json:"name" validate:"omitnil,notblank,max=150"`
	Description *string   `json:"description"`
	Address     *string   `json:"address" validate:"omitnil,notblank"`
	PostalCode  *string   `json:"postalCode" validate:"omitnil,max=20"`
	Latitude    *float64  `json:"latitude" validate:"omitnil,latitude"`
	Longitude   *float64  `json:"longitude" validate:"omitnil,longitude"`
	Images      *[]string `json:"images" validate:"omitnil,dive,notblank"`
	CityID      *uint     `json:"city" validate:"omitnil,gt=0"`
	CategoryID  *uint     `json:"category" validate:"omitnil,gt=0"`
}
