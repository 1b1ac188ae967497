// File: internal/api/user_response.go
package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int     `json:"id" example:"1"`
	Username    string  `json:"username" example:"alice"`
	FirstName   string  `json:"first_name" example:"Alice"`
	LastName    string  `json:"last_name" example:"Smith"`
	Email       string  `json:"email" example:"alice@example.com"`
	IsActive    bool    `json:"is_active" example:"true"`
	PhoneNumber *string `json:"phone_number" example:"+15550100"`
	Role        string  `json:"role" example:"member"`
	AddressID   *int    `json:"address_id" example:"1"`
}
