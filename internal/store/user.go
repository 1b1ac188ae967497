package store

import (
	"context"
	"fmt"

	"taskdesk/internal/database"
	"taskdesk/internal/model"
)

const userColumns = `id, username, first_name, last_name, email, hashed_password, is_active, phone_number, role, address_id`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,
		&u.PhoneNumber,
		&u.Role,
		&u.AddressID,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, first_name, last_name, email, hashed_password, is_active, phone_number, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		u.Username,
		u.FirstName,
		u.LastName,
		u.Email,
		u.HashedPassword,
		u.IsActive,
		u.PhoneNumber,
		u.Role,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, hashedPassword string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET hashed_password = $1
		 WHERE id = $2`,
		hashedPassword,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}
