package models

import "time"

// User is a registered account.
type User struct {
	// ID is a UUIDv7 assigned by the user repository.
	ID string `json:"id"`

	Username string `json:"username"`

	// Email is stored lower-cased and is unique across accounts.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "users"
}

// Principal is the verified identity attached to a request once its access
// token has been validated.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	// bcrypt ignores input past 72 bytes, so longer passwords are rejected.
	Password string `json:"password" validate:"required,max=72"`
}

// SigninRequest is the body of POST /api/auth/signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
