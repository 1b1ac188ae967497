package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username    string  `json:"username" form:"username" validate:"required,min=3,max=50" example:"alice"`
	FirstName   string  `json:"first_name" form:"first_name" validate:"required,min=3,max=50" example:"Alice"`
	LastName    string  `json:"last_name" form:"last_name" validate:"required,min=3,max=50" example:"Smith"`
	Password    string  `json:"password" form:"password" validate:"required,min=6,max=150" example:"Secret123!"`
	PhoneNumber *string `json:"phone_number,omitempty" form:"phone_number" example:"+15550100"`
	Email       string  `json:"email" form:"email" validate:"required,min=4,max=50" example:"alice@example.com"`
	Role        string  `json:"role" form:"role" validate:"required,min=3,max=50" example:"member"`
}
