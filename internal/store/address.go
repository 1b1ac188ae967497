package store

import (
	"context"
	"fmt"

	"taskdesk/internal/database"
	"taskdesk/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateAddressForUser inserts the address row and points the user's
// address_id at it inside one transaction, so no reader ever sees the row
// without its linking user.
func CreateAddressForUser(ctx context.Context, db database.DB, a *model.Address, userID int) (*model.Address, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateAddressForUser: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO address (street, city, state, country, postal_code, apartment_number)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		a.Street,
		a.City,
		a.State,
		a.Country,
		a.PostalCode,
		a.ApartmentNumber,
	)
	if err := row.Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("CreateAddressForUser: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users SET address_id = $1 WHERE id = $2`,
		a.ID,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateAddressForUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("CreateAddressForUser: %w", pgx.ErrNoRows)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateAddressForUser: %w", err)
	}
	return a, nil
}
