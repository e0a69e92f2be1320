package models

import "time"

// User represents an account entity used for authentication and item
// ownership. The Password field holds the encoded argon2id hash of the
// user's password, never the plaintext.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// Password is the PHC-encoded argon2id hash stored at rest.
	// This is the representation returned by registration and the
	// user listing endpoint.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
