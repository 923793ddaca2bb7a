package models

import "time"

// Lifehack represents one daily tip.
type Lifehack struct {
	ID         int64     `json:"id"`         // Assigned by the store
	Title      *string   `json:"title"`      // Optional title, null for generated content
	Content    string    `json:"content"`    // Required text body
	Date       time.Time `json:"date"`       // Calendar day the tip belongs to; time-of-day is ignored
	CategoryID *int64    `json:"categoryId"` // Nullable category reference, not enforced as a foreign key
	Tags       []string  `json:"tags"`       // Ordered tag list
	Image      string    `json:"image"`      // Illustrative image URL
}
