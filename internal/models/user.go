package models

// User represents a site author
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
