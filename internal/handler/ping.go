// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"taskdesk/internal/api"
	"taskdesk/internal/cache"
	"taskdesk/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse is the liveness reply.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// @Summary     Health check
// @Description Returns pong after verifying the database and Redis connections
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "redis unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
