package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a registered account. The password column holds the raw
// credential the client sent; login compares it byte for byte.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          int64     `bun:"id,pk,autoincrement" json:"user_id"`
	Username    string    `bun:"username,unique,notnull" json:"username"`
	Email       string    `bun:"user_email,unique,notnull" json:"user_email"`
	Password    string    `bun:"password,notnull" json:"-"`
	Address     string    `bun:"address,notnull" json:"address"`
	PhoneNumber string    `bun:"phone_number,notnull" json:"phone_number"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
}
