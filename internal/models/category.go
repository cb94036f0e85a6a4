package models

// Category represents a post category
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Count       int    `json:"count"`
	Parent      int    `json:"parent"` // 0 for a root category
	Description string `json:"description"`
	Link        string `json:"link"`
}

// CategoryInput is a fully populated category creation request
type CategoryInput struct {
	Name        string
	Description string
	Slug        string
	Parent      int
}

// Tag represents a post tag
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
