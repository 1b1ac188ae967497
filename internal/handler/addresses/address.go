package addresses

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

var createAddressForUser = store.CreateAddressForUser

// @Summary     Create an address
// @Description Inserts the address and links it to the authenticated user in one transaction
// @Tags        address
// @Accept      json
// @Produce     json
// @Param       request body api.AddressRequest true "address payload"
// @Success     201 {object} api.AddressResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /address/ [post]
func CreateAddressHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		var req api.AddressRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		addr, err := createAddressForUser(c.Request().Context(), db, &model.Address{
			Street:          req.Street,
			City:            req.City,
			State:           req.State,
			Country:         req.Country,
			PostalCode:      req.PostalCode,
			ApartmentNumber: req.ApartmentNumber,
		}, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.AddressResponse{
			ID:              addr.ID,
			Street:          addr.Street,
			City:            addr.City,
			State:           addr.State,
			Country:         addr.Country,
			PostalCode:      addr.PostalCode,
			ApartmentNumber: addr.ApartmentNumber,
		})
	}
}
