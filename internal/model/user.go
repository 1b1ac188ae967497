// File: internal/model/user.go
package model

type User struct {
	ID             int     `db:"id" json:"id"`
	Username       string  `db:"username" json:"username"`
	FirstName      string  `db:"first_name" json:"first_name"`
	LastName       string  `db:"last_name" json:"last_name"`
	Email          string  `db:"email" json:"email"`
	HashedPassword string  `db:"hashed_password" json:"-"`
	IsActive       bool    `db:"is_active" json:"is_active"`
	PhoneNumber    *string `db:"phone_number" json:"phone_number"`
	Role           string  `db:"role" json:"role"`
	AddressID      *int    `db:"address_id" json:"address_id"`
}
