package wordpress

import "encoding/json"

// Rendered wraps rich-text fields: {"rendered": "<p>...</p>"}
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Post is the /wp/v2/posts resource
type Post struct {
	ID         int      `json:"id"`
	Date       string   `json:"date"`
	Slug       string   `json:"slug"`
	Status     string   `json:"status"`
	Link       string   `json:"link"`
	Title      Rendered `json:"title"`
	Content    Rendered `json:"content"`
	Excerpt    Rendered `json:"excerpt"`
	Categories []int    `json:"categories"`
	Tags       []int    `json:"tags"`
}

// Page is the /wp/v2/pages resource
type Page struct {
	ID      int      `json:"id"`
	Date    string   `json:"date"`
	Slug    string   `json:"slug"`
	Status  string   `json:"status"`
	Link    string   `json:"link"`
	Parent  int      `json:"parent"`
	Title   Rendered `json:"title"`
	Content Rendered `json:"content"`
	Excerpt Rendered `json:"excerpt"`
}

// Term is shared by /wp/v2/categories and /wp/v2/tags
type Term struct {
	ID          int             `json:"id"`
	Count       int             `json:"count"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Taxonomy    string          `json:"taxonomy"`
	Parent      int             `json:"parent"`
	Meta        json.RawMessage `json:"meta"`
}

// Media is the /wp/v2/media resource
type Media struct {
	ID           int             `json:"id"`
	Date         string          `json:"date"`
	Slug         string          `json:"slug"`
	Title        Rendered        `json:"title"`
	MimeType     string          `json:"mime_type"`
	MediaType    string          `json:"media_type"`
	SourceURL    string          `json:"source_url"`
	MediaDetails json.RawMessage `json:"media_details"`
}

// User is the /wp/v2/users resource
type User struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Slug        string          `json:"slug"`
	Meta        json.RawMessage `json:"meta"`
}

// Comment is the /wp/v2/comments resource
type Comment struct {
	ID          int             `json:"id"`
	Post        int             `json:"post"`
	Parent      int             `json:"parent"`
	AuthorName  string          `json:"author_name"`
	AuthorEmail string          `json:"author_email"`
	AuthorURL   string          `json:"author_url"`
	AuthorIP    string          `json:"author_ip"`
	Date        string          `json:"date"`
	Content     Rendered        `json:"content"`
	Link        string          `json:"link"`
	Status      string          `json:"status"`
	Type        string          `json:"type"`
	Meta        json.RawMessage `json:"meta"`
}

// PostPayload is the body of POST /wp/v2/posts
type PostPayload struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Slug       string `json:"slug,omitempty"`
	Status     string `json:"status,omitempty"`
	Categories []int  `json:"categories"`
	Tags       []int  `json:"tags"`
}

// CategoryPayload is the body of POST /wp/v2/categories
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug,omitempty"`
	Parent      int    `json:"parent"`
}
