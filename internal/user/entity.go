// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	ImageURL     string    `db:"image_url"`
	ImageAlt     string    `db:"image_alt"`
	State        string    `db:"state"`
	Country      string    `db:"country"`
	City         string    `db:"city"`
	Street       string    `db:"street"`
	HouseNumber  string    `db:"house_number"`
	Zip          string    `db:"zip"`
	IsBusiness   bool      `db:"is_business"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
