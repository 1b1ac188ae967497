// File: internal/api/address_response.go
package api

// swagger:model api.AddressResponse
type AddressResponse struct {
	ID              int    `json:"id" example:"1"`
	Street          string `json:"street" example:"1 Main St"`
	City            string `json:"city" example:"Springfield"`
	State           string `json:"state" example:"Oregon"`
	Country         string `json:"country" example:"USA"`
	PostalCode      string `json:"postal_code" example:"97475"`
	ApartmentNumber *int   `json:"apartment_number" example:"12"`
}
