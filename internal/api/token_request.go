// File: internal/api/token_request.go
package api

// swagger:model api.TokenRequest
type TokenRequest struct {
	Username string `form:"username" validate:"required" example:"alice"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}
