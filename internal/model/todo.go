// File: internal/model/todo.go
package model

// ToDo's owner_id is nullable at the schema level; every row created through
// the API has it set from the authenticated user.
type ToDo struct {
	ID          int    `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Priority    int    `db:"priority" json:"priority"`
	Completed   bool   `db:"complete" json:"completed"`
	OwnerID     *int   `db:"owner_id" json:"owner_id"`
}
