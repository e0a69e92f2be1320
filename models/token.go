package models

import "time"

// Token is the opaque bearer credential issued by the login endpoint.
//
// Exactly one token exists per user: login returns the existing row when
// present and creates one otherwise. Tokens never expire and are resolved
// to their owning user by a table lookup on every authenticated request.
type Token struct {
	// Key is the opaque token string sent in the Authorization header.
	// It is 20 CSPRNG bytes, hex-encoded (40 characters).
	Key string `json:"token"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the token was first issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "auth_tokens"
}

// String returns the opaque key. It implements the [fmt.Stringer]
// interface.
func (t Token) String() string {
	return t.Key
}
