// File: internal/api/change_password_request.go
package api

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	Password    string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=5,max=50" example:"Secret456!"`
}
