// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/cache"
	"taskdesk/internal/config"
	"taskdesk/internal/database"
	"taskdesk/internal/handler"
	"taskdesk/internal/handler/addresses"
	"taskdesk/internal/handler/auth"
	"taskdesk/internal/handler/todos"
	"taskdesk/internal/handler/users"
	"taskdesk/internal/middleware"
)

// Setup registers every route. Paths (trailing slashes included) are part of
// the public contract and must not change.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	e.GET("/ping", handler.PingHandler(db, rdb))

	e.POST("/auth/", auth.RegisterHandler(db))
	e.POST("/auth/token", auth.TokenHandler(db, cfg))

	// GET /todo/ predates ownership scoping and stays open.
	e.GET("/todo/", todos.ListTodosHandler(db))
	e.GET("/todo/me", todos.ListMyTodosHandler(db), requireAuth)
	e.GET("/todo/:todo_id/", todos.GetTodoHandler(db), requireAuth)
	e.POST("/todo/", todos.CreateTodoHandler(db), requireAuth)
	e.PUT("/todo/:todo_id/", todos.UpdateTodoHandler(db), requireAuth)
	e.DELETE("/todo/:todo_id/", todos.DeleteTodoHandler(db), requireAuth)

	e.GET("/user/me", users.GetMeHandler(db), requireAuth)
	e.PUT("/user/change_password", users.ChangePasswordHandler(db), requireAuth)

	e.POST("/address/", addresses.CreateAddressHandler(db), requireAuth)
}
