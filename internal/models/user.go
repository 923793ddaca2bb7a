package models

// UserDB represents a stored user account.
type UserDB struct {
	ID       int64  `json:"id"`       // Assigned by the store, starts at 1
	Username string `json:"username"` // Unique username, case-sensitive
	Password string `json:"-"`        // bcrypt hash, never serialized
}
