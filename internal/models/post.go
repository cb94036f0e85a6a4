package models

// Post represents a post as returned to tool callers
type Post struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Categories []int  `json:"categories"`
	Tags       []int  `json:"tags"`
	Slug       string `json:"slug"`
}

// PostSummary is the per-post payload of fetch_posts
type PostSummary struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
	Date    string `json:"date"`
}

// PostInput is a fully populated post creation request
type PostInput struct {
	Title      string
	Content    string
	Slug       string
	Categories []int
	Tags       []int
	Status     string
}

// PostQuery selects one page of posts
type PostQuery struct {
	Page       int
	PerPage    int
	Search     string
	Categories []int
}

// Post statuses accepted on creation
const (
	PostStatusPublish = "publish"
	PostStatusDraft   = "draft"
	PostStatusPending = "pending"
)

// Post list defaults
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Summarize keeps the fields fetch_posts exposes
func Summarize(p Post) PostSummary {
	return PostSummary{
		Title:   p.Title,
		Excerpt: p.Excerpt,
		Content: p.Content,
		Slug:    p.Slug,
		Date:    p.Date,
	}
}
