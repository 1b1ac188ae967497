// File: internal/api/todo_request.go
package api

// swagger:model api.TodoRequest
type TodoRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=3,max=50" example:"Buy milk"`
	Description string `json:"description" form:"description" validate:"required,min=3,max=150" example:"2 liters whole"`
	Priority    int    `json:"priority" form:"priority" validate:"gte=1,lte=5" example:"3"`
	// no validate tag: false is a legal value
	Completed bool `json:"completed" form:"completed" example:"false"`
}
