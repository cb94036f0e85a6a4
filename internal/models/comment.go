package models

// Comment represents a comment on a post
type Comment struct {
	ID          int    `json:"id"`
	Post        int    `json:"post"`
	Parent      int    `json:"parent"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email,omitempty"` // only visible to authenticated editors
	AuthorURL   string `json:"author_url"`
	Date        string `json:"date"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	Link        string `json:"link"`
}
