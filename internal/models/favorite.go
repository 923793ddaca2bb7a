package models

import "time"

// Favorite links a user to a lifehack they bookmarked.
type Favorite struct {
	ID         int64     `json:"id"`         // Assigned by the store
	UserID     int64     `json:"userId"`     // User reference, not enforced as a foreign key
	LifehackID int64     `json:"lifehackId"` // Lifehack reference, not enforced as a foreign key
	CreatedAt  time.Time `json:"createdAt"`  // Server clock at creation
}
