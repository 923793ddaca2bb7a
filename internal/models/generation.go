package models

// GeneratedLifehack is the payload returned by the text-generation collaborator.
// All fields are required; an absent field is treated as a generation failure.
type GeneratedLifehack struct {
	Content     string   `json:"content"`      // Lifehack text body
	Category    string   `json:"category"`     // Category name, mapped to an id by name lookup
	Tags        []string `json:"tags"`         // Two to three tags
	ImagePrompt string   `json:"image_prompt"` // Short description used to build the image URL
}
