package models

// Category represents a lifehack category shown by the client.
type Category struct {
	ID    int64  `json:"id"`    // Assigned by the store
	Name  string `json:"name"`  // Display label, looked up case-insensitively
	Icon  string `json:"icon"`  // Icon class name for client rendering
	Color string `json:"color"` // Color token for client rendering
}
