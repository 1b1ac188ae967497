package todos

import (
	"errors"
	"net/http"
	"strconv"

	"taskdesk/internal/api"
	"taskdesk/internal/database"
	"taskdesk/internal/middleware"
	"taskdesk/internal/model"
	"taskdesk/internal/service"
	"taskdesk/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listTodos        = store.ListTodos
	listTodosByOwner = store.ListTodosByOwner
	getTodoByOwner   = store.GetTodoByOwner
	createTodo       = store.CreateTodo
	updateTodoOwner  = store.UpdateTodoByOwner
	deleteTodoOwner  = store.DeleteTodoByOwner
)

func toResponse(t model.ToDo) api.TodoResponse {
	return api.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		OwnerID:     t.OwnerID,
	}
}

func claimsFromContext(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
	return claims, ok
}

// @Summary     List every todo (legacy)
// @Description Unauthenticated listing without an owner filter, kept for backwards compatibility; superseded by /todo/me
// @Tags        todo
// @Produce     json
// @Success     200 {array} api.TodoResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /todo/ [get]
func ListTodosHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		todos, err := listTodos(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.TodoResponse, 0, len(todos))
		for _, t := range todos {
			resp = append(resp, toResponse(t))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     List my todos
// @Description Lists the todos owned by the authenticated user
// @Tags        todo
// @Produce     json
// @Success     200 {array} api.TodoResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todo/me [get]
func ListMyTodosHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		todos, err := listTodosByOwner(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.TodoResponse, 0, len(todos))
		for _, t := range todos {
			resp = append(resp, toResponse(t))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a todo by ID
// @Description Returns the todo only when the authenticated user owns it; anything else is a 404
// @Tags        todo
// @Produce     json
// @Param       todo_id path int true "todo ID"
// @Success     200 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todo/{todo_id}/ [get]
func GetTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("todo_id"))
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo ID"})
		}
		todo, err := getTodoByOwner(c.Request().Context(), db, id, claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ToDo not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(*todo))
	}
}

// @Summary     Create a todo
// @Description Creates a todo owned by the authenticated user; any owner field in the payload is ignored
// @Tags        todo
// @Accept      json
// @Produce     json
// @Param       request body api.TodoRequest true "todo payload"
// @Success     201 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todo/ [post]
func CreateTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		var req api.TodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ownerID := claims.UserID
		todo, err := createTodo(c.Request().Context(), db, &model.ToDo{
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Completed:   req.Completed,
			OwnerID:     &ownerID,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(*todo))
	}
}

// @Summary     Replace a todo
// @Description Full replacement of title/description/priority/completed; 404 when absent or owned by someone else
// @Tags        todo
// @Accept      json
// @Param       todo_id path int true "todo ID"
// @Param       request body api.TodoRequest true "todo payload"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todo/{todo_id}/ [put]
func UpdateTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("todo_id"))
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo ID"})
		}
		var req api.TodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		err = updateTodoOwner(c.Request().Context(), db, &model.ToDo{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Completed:   req.Completed,
		}, claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ToDo not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a todo
// @Description Deletes the todo; 404 when absent or owned by someone else
// @Tags        todo
// @Param       todo_id path int true "todo ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todo/{todo_id}/ [delete]
func DeleteTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("todo_id"))
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo ID"})
		}
		if err := deleteTodoOwner(c.Request().Context(), db, id, claims.UserID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ToDo not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
