// File: internal/model/address.go
package model

type Address struct {
	ID              int    `db:"id" json:"id"`
	Street          string `db:"street" json:"street"`
	City            string `db:"city" json:"city"`
	State           string `db:"state" json:"state"`
	Country         string `db:"country" json:"country"`
	PostalCode      string `db:"postal_code" json:"postal_code"`
	ApartmentNumber *int   `db:"apartment_number" json:"apartment_number"`
}
