package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// Never serialized to JSON and never returned to clients.
	Password string `json:"-"`

	// UserType is the access tier of the user. One of the closed [Role] set.
	UserType Role `json:"userType"`

	// Avatar is an optional reference to the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
