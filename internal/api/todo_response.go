// File: internal/api/todo_response.go
package api

// swagger:model api.TodoResponse
type TodoResponse struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"2 liters whole"`
	Priority    int    `json:"priority" example:"3"`
	Completed   bool   `json:"completed" example:"false"`
	OwnerID     *int   `json:"owner_id" example:"1"`
}
