package models

import "time"

type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	ConfirmedAt  *time.Time `db:"confirmed_at" json:"email_confirmed_at,omitempty"`
}

func (u User) Confirmed() bool {
	return u.ConfirmedAt != nil
}

type Credentials struct {
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required,min=6"`
}
