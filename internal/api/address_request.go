// File: internal/api/address_request.go
package api

// swagger:model api.AddressRequest
type AddressRequest struct {
	Street          string `json:"street" form:"street" validate:"required,min=3,max=50" example:"1 Main St"`
	City            string `json:"city" form:"city" validate:"required,min=3,max=50" example:"Springfield"`
	State           string `json:"state" form:"state" validate:"required,min=3,max=50" example:"Oregon"`
	Country         string `json:"country" form:"country" validate:"required,min=3,max=50" example:"USA"`
	PostalCode      string `json:"postal_code" form:"postal_code" validate:"required,min=3,max=50" example:"97475"`
	ApartmentNumber *int   `json:"apartment_number,omitempty" form:"apartment_number" example:"12"`
}
