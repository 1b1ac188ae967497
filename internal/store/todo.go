package store

import (
	"context"
	"fmt"

	"taskdesk/internal/database"
	"taskdesk/internal/model"

	"github.com/jackc/pgx/v5"
)

const todoColumns = `id, title, description, priority, complete, owner_id`

func scanTodo(row interface{ Scan(dest ...any) error }) (*model.ToDo, error) {
	t := &model.ToDo{}
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Priority,
		&t.Completed,
		&t.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func collectTodos(rows pgx.Rows) ([]model.ToDo, error) {
	defer rows.Close()
	todos := []model.ToDo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

// ListTodos returns every row without an owner filter. Only the legacy
// unauthenticated route uses it.
func ListTodos(ctx context.Context, db database.DB) ([]model.ToDo, error) {
	rows, err := db.Query(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListTodos: %w", err)
	}
	todos, err := collectTodos(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTodos: %w", err)
	}
	return todos, nil
}

func ListTodosByOwner(ctx context.Context, db database.DB, ownerID int) ([]model.ToDo, error) {
	rows, err := db.Query(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE owner_id = $1 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTodosByOwner: %w", err)
	}
	todos, err := collectTodos(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTodosByOwner: %w", err)
	}
	return todos, nil
}

// GetTodoByOwner scopes the lookup to the owner; a row held by someone else
// scans as pgx.ErrNoRows, so the caller cannot tell it exists.
func GetTodoByOwner(ctx context.Context, db database.DB, todoID, ownerID int) (*model.ToDo, error) {
	row := db.QueryRow(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1 AND owner_id = $2`,
		todoID,
		ownerID,
	)
	t, err := scanTodo(row)
	if err != nil {
		return nil, fmt.Errorf("GetTodoByOwner: %w", err)
	}
	return t, nil
}

func CreateTodo(ctx context.Context, db database.DB, t *model.ToDo) (*model.ToDo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO todos (title, description, priority, complete, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		t.Title,
		t.Description,
		t.Priority,
		t.Completed,
		t.OwnerID,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("CreateTodo: %w", err)
	}
	return t, nil
}

func UpdateTodoByOwner(ctx context.Context, db database.DB, t *model.ToDo, ownerID int) error {
	tag, err := db.Exec(ctx,
		`UPDATE todos
		 SET title = $1, description = $2, priority = $3, complete = $4
		 WHERE id = $5 AND owner_id = $6`,
		t.Title,
		t.Description,
		t.Priority,
		t.Completed,
		t.ID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTodoByOwner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTodoByOwner: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteTodoByOwner(ctx context.Context, db database.DB, todoID, ownerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner_id = $2`,
		todoID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTodoByOwner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTodoByOwner: %w", pgx.ErrNoRows)
	}
	return nil
}
