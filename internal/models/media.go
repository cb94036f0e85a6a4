package models

// Media represents an item of the media library
type Media struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Date     string `json:"date"`
	MimeType string `json:"mimeType"`
}

// Page represents a static page
type Page struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Slug    string `json:"slug"`
	Parent  int    `json:"parent"`
	Link    string `json:"link"`
}
